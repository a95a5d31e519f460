package profile

import (
	"strconv"

	"github.com/DimaChesnokov/ConnectPostgreSQL/dataframe"
)

// CategoricalSummary holds the profile of one categorical column.
type CategoricalSummary struct {
	Column  string
	Missing float64 // null fraction over all rows
	Unique  int     // distinct non-null values
	Mode    string  // most frequent value; ties break to the smallest
	HasMode bool    // false when the column has no non-null values
}

// Categorical profiles the named columns. Error isolation matches Numeric:
// one bad column is reported and skipped, the rest still run.
func Categorical(f *dataframe.Frame, columns []string) ([]CategoricalSummary, []error) {
	var summaries []CategoricalSummary
	var errs []error
	for _, name := range columns {
		s, err := categoricalColumn(f, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, errs
}

func categoricalColumn(f *dataframe.Frame, name string) (CategoricalSummary, error) {
	col, err := f.Column(name)
	if err != nil {
		return CategoricalSummary{}, err
	}

	counts := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		counts[valueString(col, i)]++
	}

	s := CategoricalSummary{
		Column:  name,
		Missing: col.MissingFraction(),
		Unique:  len(counts),
	}
	best := 0
	for v, n := range counts {
		if n > best || (n == best && v < s.Mode) {
			best = n
			s.Mode = v
			s.HasMode = true
		}
	}
	return s, nil
}

// valueString renders a cell for counting and display, independent of the
// column's storage kind. The profiler runs before encoding, so ordinal
// columns may still be dates or numbers here.
func valueString(col *dataframe.Column, i int) string {
	switch col.Kind {
	case dataframe.KindText:
		return col.Strings[i]
	case dataframe.KindTime:
		return col.Times[i].Format("2006-01-02")
	default:
		return strconv.FormatFloat(col.Floats[i], 'g', -1, 64)
	}
}
