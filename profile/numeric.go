// Package profile computes per-column descriptive statistics. Both the
// numeric and the categorical profiler isolate failures per column: a bad
// column yields a typed error and the remaining columns still run.
package profile

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/DimaChesnokov/ConnectPostgreSQL/dataframe"
	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/errors"
)

// NumericSummary holds the descriptive statistics of one numeric column.
// Nulls are excluded from every statistic except Missing.
type NumericSummary struct {
	Column   string
	Missing  float64 // null fraction over all rows
	Max      float64
	Min      float64
	Mean     float64
	Median   float64
	Variance float64 // sample variance
	Q10      float64
	Q90      float64
	Q25      float64
	Q75      float64
}

// Numeric profiles the named columns. It returns a summary per succeeding
// column and a typed error per failing one; order follows the input list.
func Numeric(f *dataframe.Frame, columns []string) ([]NumericSummary, []error) {
	var summaries []NumericSummary
	var errs []error
	for _, name := range columns {
		s, err := numericColumn(f, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, errs
}

func numericColumn(f *dataframe.Frame, name string) (NumericSummary, error) {
	col, err := f.Column(name)
	if err != nil {
		return NumericSummary{}, err
	}
	values, err := col.NonNullFloats()
	if err != nil {
		return NumericSummary{}, err
	}
	if len(values) == 0 {
		return NumericSummary{}, errors.Wrapf(errors.ErrEmptyData, "profile.Numeric: column %q", name)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return NumericSummary{
		Column:   name,
		Missing:  col.MissingFraction(),
		Max:      floats.Max(sorted),
		Min:      floats.Min(sorted),
		Mean:     stat.Mean(sorted, nil),
		Median:   quantile(0.5, sorted),
		Variance: stat.Variance(sorted, nil),
		Q10:      quantile(0.1, sorted),
		Q90:      quantile(0.9, sorted),
		Q25:      quantile(0.25, sorted),
		Q75:      quantile(0.75, sorted),
	}, nil
}

// quantile returns the p-th quantile with position-based linear
// interpolation between order statistics (h = p*(n-1)), the scheme the
// report's reference values use. stat.Quantile interpolates on the weighted
// CDF instead, so it is not used here. The input must be sorted and
// non-empty.
func quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}
