package dataframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/errors"
)

func TestNewRejectsLengthMismatch(t *testing.T) {
	_, err := New(
		NewFloatColumn("a", []float64{1, 2, 3}),
		NewFloatColumn("b", []float64{1, 2}),
	)
	require.Error(t, err)
}

func TestNewRejectsDuplicateName(t *testing.T) {
	_, err := New(
		NewFloatColumn("a", []float64{1}),
		NewIntColumn("a", []float64{2}),
	)
	require.Error(t, err)
}

func TestShape(t *testing.T) {
	f, err := New(
		NewFloatColumn("saleprice", []float64{100, 110, 200}),
		NewTextColumn("landuse", []string{"A", "A", "B"}, nil),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Rows())
	assert.Equal(t, 2, f.Cols())
	assert.Equal(t, []string{"saleprice", "landuse"}, f.Names())
}

func TestShapeEmptyFrame(t *testing.T) {
	// 0 rows, 3 columns must still report a valid shape.
	f, err := New(
		NewFloatColumn("a", nil),
		NewTextColumn("b", nil, nil),
		NewIntColumn("c", nil),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Rows())
	assert.Equal(t, 3, f.Cols())
}

func TestColumnNotFound(t *testing.T) {
	f, err := New(NewFloatColumn("a", []float64{1}))
	require.NoError(t, err)

	_, err = f.Column("missing")
	var colErr *errors.ColumnNotFoundError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "missing", colErr.Column)
}

func TestMissingFraction(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		col  *Column
		want float64
	}{
		{"no nulls", NewFloatColumn("x", []float64{1, 2, 3, 4}), 0},
		{"one null", NewFloatColumn("x", []float64{1, nan, 3, 4}), 0.25},
		{"text nulls", NewTextColumn("x", []string{"a", "", ""}, []bool{false, true, true}), 2.0 / 3.0},
		{"empty", NewFloatColumn("x", nil), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.col.MissingFraction(), 1e-12)
		})
	}
}

func TestNonNullFloats(t *testing.T) {
	col := NewFloatColumn("x", []float64{1, math.NaN(), 3})
	vals, err := col.NonNullFloats()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, vals)

	_, err = NewTextColumn("t", []string{"a"}, nil).NonNullFloats()
	var typeErr *errors.ColumnTypeError
	require.True(t, errors.As(err, &typeErr))
}

func TestReplaceKeepsPosition(t *testing.T) {
	f, err := New(
		NewTextColumn("landuse", []string{"A", "B"}, nil),
		NewFloatColumn("saleprice", []float64{100, 200}),
	)
	require.NoError(t, err)

	require.NoError(t, f.Replace(NewIntColumn("landuse", []float64{0, 1})))
	assert.Equal(t, []string{"landuse", "saleprice"}, f.Names())

	col, err := f.Column("landuse")
	require.NoError(t, err)
	assert.Equal(t, KindInt, col.Kind)
}

func TestGroupFloats(t *testing.T) {
	nan := math.NaN()
	f, err := New(
		NewIntColumn("landuse", []float64{1, 1, 0, 0, nan, 1}),
		NewFloatColumn("saleprice", []float64{100, 110, 200, 210, 500, nan}),
	)
	require.NoError(t, err)

	groups, err := f.GroupFloats("landuse", "saleprice")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// First-appearance order of keys, null keys skipped, null values dropped.
	assert.Equal(t, 1.0, groups[0].Key)
	assert.Equal(t, []float64{100, 110}, groups[0].Values)
	assert.Equal(t, 0.0, groups[1].Key)
	assert.Equal(t, []float64{200, 210}, groups[1].Values)
}

func TestGroupFloatsRejectsTextKey(t *testing.T) {
	f, err := New(
		NewTextColumn("landuse", []string{"A"}, nil),
		NewFloatColumn("saleprice", []float64{100}),
	)
	require.NoError(t, err)

	_, err = f.GroupFloats("landuse", "saleprice")
	var typeErr *errors.ColumnTypeError
	require.True(t, errors.As(err, &typeErr))
}

func TestFloatsWhere(t *testing.T) {
	f, err := New(
		NewIntColumn("soldasvacant", []float64{1, 0, 1, 0}),
		NewFloatColumn("acreage", []float64{1.0, 1.2, 5.0, 5.2}),
	)
	require.NoError(t, err)

	vacant, err := f.FloatsWhere("acreage", "soldasvacant", 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 5.0}, vacant)

	none, err := f.FloatsWhere("acreage", "soldasvacant", 7)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNumericColumns(t *testing.T) {
	f, err := New(
		NewFloatColumn("saleprice", []float64{1}),
		NewTextColumn("landuse", []string{"A"}, nil),
		NewIntColumn("bedrooms", []float64{3}),
	)
	require.NoError(t, err)

	var names []string
	for _, c := range f.NumericColumns() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"saleprice", "bedrooms"}, names)
}
