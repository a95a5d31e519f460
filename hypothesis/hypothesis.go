// Package hypothesis implements the two fixed statistical tests of the
// pipeline: a one-way analysis of variance across land-use groups and a
// Welch two-sample t-test. P-values come from the F and Student's t
// distributions in gonum.
package hypothesis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/errors"
)

// TestResult is the (statistic, p-value) pair of one test, plus the degrees
// of freedom used to look the p-value up.
type TestResult struct {
	Name      string
	Statistic float64
	PValue    float64
	DF1       float64
	DF2       float64
}

// RejectAt reports whether the null hypothesis is rejected at the given
// significance level.
func (r TestResult) RejectAt(alpha float64) bool {
	return r.PValue < alpha
}

// OneWayANOVA tests equality of means across the groups. Empty groups are
// dropped; at least two non-empty groups must remain and the total
// observation count must exceed the group count.
func OneWayANOVA(groups [][]float64) (TestResult, error) {
	var kept [][]float64
	for _, g := range groups {
		if len(g) > 0 {
			kept = append(kept, g)
		}
	}
	k := len(kept)
	if k < 2 {
		return TestResult{}, errors.NewEmptyGroupError("OneWayANOVA", 2, k)
	}

	n := 0
	grandSum := 0.0
	for _, g := range kept {
		n += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	if n <= k {
		return TestResult{}, errors.NewValueError("OneWayANOVA",
			"not enough observations for within-group variance")
	}
	grandMean := grandSum / float64(n)

	var ssBetween, ssWithin float64
	for _, g := range kept {
		mean := stat.Mean(g, nil)
		ssBetween += float64(len(g)) * (mean - grandMean) * (mean - grandMean)
		for _, v := range g {
			ssWithin += (v - mean) * (v - mean)
		}
	}

	df1 := float64(k - 1)
	df2 := float64(n - k)
	msBetween := ssBetween / df1
	msWithin := ssWithin / df2

	result := TestResult{Name: "anova", DF1: df1, DF2: df2}
	if msWithin == 0 {
		// All groups internally constant: infinite evidence against H0
		// unless the group means coincide too.
		if msBetween == 0 {
			result.Statistic = math.NaN()
			result.PValue = math.NaN()
			return result, nil
		}
		result.Statistic = math.Inf(1)
		result.PValue = 0
		return result, nil
	}

	result.Statistic = msBetween / msWithin
	result.PValue = distuv.F{D1: df1, D2: df2}.Survival(result.Statistic)
	return result, nil
}

// WelchTTest tests equality of means of two samples without assuming equal
// variances. Each sample needs at least two observations.
func WelchTTest(a, b []float64) (TestResult, error) {
	got := 0
	if len(a) > 0 {
		got++
	}
	if len(b) > 0 {
		got++
	}
	if got < 2 {
		return TestResult{}, errors.NewEmptyGroupError("WelchTTest", 2, got)
	}
	if len(a) < 2 || len(b) < 2 {
		return TestResult{}, errors.NewValueError("WelchTTest",
			"each sample needs at least two observations")
	}

	meanA, meanB := stat.Mean(a, nil), stat.Mean(b, nil)
	varA, varB := stat.Variance(a, nil), stat.Variance(b, nil)
	nA, nB := float64(len(a)), float64(len(b))

	seSq := varA/nA + varB/nB
	if seSq == 0 {
		return TestResult{}, errors.NewValueError("WelchTTest", "zero variance in both samples")
	}

	// Welch–Satterthwaite degrees of freedom.
	df := seSq * seSq / ((varA/nA)*(varA/nA)/(nA-1) + (varB/nB)*(varB/nB)/(nB-1))

	t := (meanA - meanB) / math.Sqrt(seSq)
	p := 2 * distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Survival(math.Abs(t))

	return TestResult{
		Name:      "welch_ttest",
		Statistic: t,
		PValue:    p,
		DF1:       df,
	}, nil
}
