// Package correlation computes the pairwise Pearson correlation of the
// frame's numeric columns and renders the matrix as a heatmap.
package correlation

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/DimaChesnokov/ConnectPostgreSQL/dataframe"
	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/errors"
)

// Result holds the correlation matrix over the numeric columns, in frame
// order. Matrix entry (i, j) is the Pearson correlation of Columns[i] and
// Columns[j] over their pairwise-complete observations.
type Result struct {
	Columns []string
	Matrix  *mat.SymDense
}

// Entry is one row of the target correlation table.
type Entry struct {
	Column string
	Corr   float64
}

// Matrix computes pairwise Pearson correlations across the frame's numeric
// columns. Null cells are excluded pairwise, so each coefficient uses every
// row where both columns are present.
func Matrix(f *dataframe.Frame) (*Result, error) {
	cols := f.NumericColumns()
	if len(cols) == 0 {
		return nil, errors.WithStack(errors.ErrNoNumericColumns)
	}

	n := len(cols)
	r := &Result{
		Columns: make([]string, n),
		Matrix:  mat.NewSymDense(n, nil),
	}
	for i, c := range cols {
		r.Columns[i] = c.Name
	}
	for i := 0; i < n; i++ {
		r.Matrix.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			r.Matrix.SetSym(i, j, pairwiseCorrelation(cols[i].Floats, cols[j].Floats))
		}
	}
	return r, nil
}

// pairwiseCorrelation drops rows where either value is NaN, then applies
// Pearson correlation. With fewer than two complete pairs or a constant
// series the coefficient is undefined and NaN is returned.
func pairwiseCorrelation(a, b []float64) float64 {
	var x, y []float64
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		x = append(x, a[i])
		y = append(y, b[i])
	}
	if len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// TargetTable extracts the target column's correlations with every numeric
// column, sorted descending. The target's self-correlation of 1.0 sorts
// first; NaN entries sort last.
func (r *Result) TargetTable(target string) ([]Entry, error) {
	ti := -1
	for i, name := range r.Columns {
		if name == target {
			ti = i
			break
		}
	}
	if ti < 0 {
		return nil, errors.NewColumnNotFoundError("correlation.TargetTable", target)
	}

	entries := make([]Entry, len(r.Columns))
	for i, name := range r.Columns {
		entries[i] = Entry{Column: name, Corr: r.Matrix.At(ti, i)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Corr, entries[j].Corr
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
	return entries, nil
}
