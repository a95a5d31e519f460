// Package dataframe holds the in-memory table shared by all pipeline stages.
//
// A Frame is an ordered set of equal-length typed columns. Numeric columns
// store values as float64 with NaN marking nulls; text and time columns
// carry an explicit null mask. The frame is mutable by design: the encoding
// stage replaces text columns with integer-code columns in place, and every
// later stage sees the encoded form.
package dataframe

import (
	"math"
	"time"

	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/errors"
)

// Kind is the storage type of a column.
type Kind int

const (
	// KindInt holds integer values (stored as float64 for the math layers).
	KindInt Kind = iota
	// KindFloat holds floating-point values.
	KindFloat
	// KindText holds free-form text, the encoder's target.
	KindText
	// KindTime holds dates and timestamps.
	KindTime
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Numeric reports whether the kind participates in numeric profiling and
// correlation.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Column is one named, typed column. Exactly one of the value slices is
// populated depending on Kind.
type Column struct {
	Name string
	Kind Kind

	// Floats backs KindInt and KindFloat; NaN marks a null.
	Floats []float64
	// Strings backs KindText, paired with Null.
	Strings []string
	// Times backs KindTime, paired with Null.
	Times []time.Time
	// Null marks nulls for KindText and KindTime.
	Null []bool
}

// NewFloatColumn builds a float column. NaN entries are nulls.
func NewFloatColumn(name string, values []float64) *Column {
	return &Column{Name: name, Kind: KindFloat, Floats: values}
}

// NewIntColumn builds an integer column backed by float64 storage.
// NaN entries are nulls.
func NewIntColumn(name string, values []float64) *Column {
	return &Column{Name: name, Kind: KindInt, Floats: values}
}

// NewTextColumn builds a text column. null may be nil when no value is null.
func NewTextColumn(name string, values []string, null []bool) *Column {
	if null == nil {
		null = make([]bool, len(values))
	}
	return &Column{Name: name, Kind: KindText, Strings: values, Null: null}
}

// NewTimeColumn builds a date/timestamp column. null may be nil.
func NewTimeColumn(name string, values []time.Time, null []bool) *Column {
	if null == nil {
		null = make([]bool, len(values))
	}
	return &Column{Name: name, Kind: KindTime, Times: values, Null: null}
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	switch c.Kind {
	case KindText:
		return len(c.Strings)
	case KindTime:
		return len(c.Times)
	default:
		return len(c.Floats)
	}
}

// IsNull reports whether row i holds a null.
func (c *Column) IsNull(i int) bool {
	switch c.Kind {
	case KindText, KindTime:
		return c.Null[i]
	default:
		return math.IsNaN(c.Floats[i])
	}
}

// NullCount returns the number of null rows.
func (c *Column) NullCount() int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			n++
		}
	}
	return n
}

// MissingFraction returns nulls / total rows, 0 for an empty column.
func (c *Column) MissingFraction() float64 {
	total := c.Len()
	if total == 0 {
		return 0
	}
	return float64(c.NullCount()) / float64(total)
}

// NonNullFloats returns the column's non-null values for a numeric column.
func (c *Column) NonNullFloats() ([]float64, error) {
	if !c.Kind.Numeric() {
		return nil, errors.NewColumnTypeError("Column.NonNullFloats", c.Name, "numeric", c.Kind.String())
	}
	out := make([]float64, 0, len(c.Floats))
	for _, v := range c.Floats {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// Frame is an ordered collection of equal-length columns.
type Frame struct {
	cols  []*Column
	index map[string]int
}

// New builds a frame from columns, validating that all lengths match.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if err := f.append(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Frame) append(c *Column) error {
	if len(f.cols) > 0 && c.Len() != f.Rows() {
		return errors.Newf("houseda: column %q has %d rows, frame has %d", c.Name, c.Len(), f.Rows())
	}
	if _, dup := f.index[c.Name]; dup {
		return errors.Newf("houseda: duplicate column %q", c.Name)
	}
	f.index[c.Name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// Rows returns the row count (0 for a frame with no columns).
func (f *Frame) Rows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// Cols returns the column count.
func (f *Frame) Cols() int {
	return len(f.cols)
}

// Column returns the named column or a ColumnNotFoundError.
func (f *Frame) Column(name string) (*Column, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, errors.NewColumnNotFoundError("Frame.Column", name)
	}
	return f.cols[i], nil
}

// Columns returns the columns in frame order.
func (f *Frame) Columns() []*Column {
	return f.cols
}

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// NumericColumns returns the columns of int or float kind, in frame order.
func (f *Frame) NumericColumns() []*Column {
	var out []*Column
	for _, c := range f.cols {
		if c.Kind.Numeric() {
			out = append(out, c)
		}
	}
	return out
}

// Replace swaps the named column for col, keeping its position.
func (f *Frame) Replace(col *Column) error {
	i, ok := f.index[col.Name]
	if !ok {
		return errors.NewColumnNotFoundError("Frame.Replace", col.Name)
	}
	if col.Len() != f.Rows() {
		return errors.Newf("houseda: replacement column %q has %d rows, frame has %d", col.Name, col.Len(), f.Rows())
	}
	f.cols[i] = col
	return nil
}

// FloatGroup is one partition produced by GroupFloats: the grouping key and
// the non-null values observed under it.
type FloatGroup struct {
	Key    float64
	Values []float64
}

// GroupFloats partitions the value column by each distinct non-null value of
// the grouping column, in first-appearance order. Rows where the value is
// null are dropped; rows where the key is null are skipped entirely. Both
// columns must be numeric.
func (f *Frame) GroupFloats(by, value string) ([]FloatGroup, error) {
	keyCol, err := f.Column(by)
	if err != nil {
		return nil, err
	}
	valCol, err := f.Column(value)
	if err != nil {
		return nil, err
	}
	if !keyCol.Kind.Numeric() {
		return nil, errors.NewColumnTypeError("Frame.GroupFloats", by, "numeric", keyCol.Kind.String())
	}
	if !valCol.Kind.Numeric() {
		return nil, errors.NewColumnTypeError("Frame.GroupFloats", value, "numeric", valCol.Kind.String())
	}

	order := make(map[float64]int)
	var groups []FloatGroup
	for i := 0; i < f.Rows(); i++ {
		if keyCol.IsNull(i) {
			continue
		}
		key := keyCol.Floats[i]
		gi, seen := order[key]
		if !seen {
			gi = len(groups)
			order[key] = gi
			groups = append(groups, FloatGroup{Key: key})
		}
		if valCol.IsNull(i) {
			continue
		}
		groups[gi].Values = append(groups[gi].Values, valCol.Floats[i])
	}
	return groups, nil
}

// FloatsWhere returns the value column's non-null values on rows where the
// condition column equals condValue.
func (f *Frame) FloatsWhere(value, cond string, condValue float64) ([]float64, error) {
	groups, err := f.GroupFloats(cond, value)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.Key == condValue {
			return g.Values, nil
		}
	}
	return nil, nil
}
