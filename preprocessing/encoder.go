// Package preprocessing provides the categorical encoding stage.
package preprocessing

import (
	"math"

	"github.com/DimaChesnokov/ConnectPostgreSQL/dataframe"
	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/errors"
)

// NullCode is the integer code assigned to null values, matching the
// factorize convention.
const NullCode = -1

// LabelEncoder maps text values to integer codes assigned in order of first
// appearance. Nulls encode to NullCode. The mapping is a bijection between
// codes 0..len(Classes)-1 and the observed labels, so InverseTransform
// recovers the original values exactly.
type LabelEncoder struct {
	// Classes holds the observed labels in first-seen order; the code of
	// Classes[i] is i.
	Classes []string

	index  map[string]int
	fitted bool
}

// NewLabelEncoder creates an unfitted LabelEncoder.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// IsFitted reports whether Fit has run.
func (e *LabelEncoder) IsFitted() bool {
	return e.fitted
}

// Fit learns the label set from values, skipping entries where null is set.
func (e *LabelEncoder) Fit(values []string, null []bool) error {
	if null != nil && len(null) != len(values) {
		return errors.NewValueError("LabelEncoder.Fit", "null mask length mismatch")
	}
	e.Classes = e.Classes[:0]
	e.index = make(map[string]int)
	for i, v := range values {
		if null != nil && null[i] {
			continue
		}
		if _, seen := e.index[v]; !seen {
			e.index[v] = len(e.Classes)
			e.Classes = append(e.Classes, v)
		}
	}
	e.fitted = true
	return nil
}

// Transform encodes values to codes. Nulls become NullCode; a label not
// seen during Fit is an error.
func (e *LabelEncoder) Transform(values []string, null []bool) ([]float64, error) {
	if !e.fitted {
		return nil, errors.NewNotFittedError("LabelEncoder", "Transform")
	}
	if null != nil && len(null) != len(values) {
		return nil, errors.NewValueError("LabelEncoder.Transform", "null mask length mismatch")
	}
	codes := make([]float64, len(values))
	for i, v := range values {
		if null != nil && null[i] {
			codes[i] = NullCode
			continue
		}
		code, ok := e.index[v]
		if !ok {
			return nil, errors.NewValueError("LabelEncoder.Transform", "unseen label "+v)
		}
		codes[i] = float64(code)
	}
	return codes, nil
}

// FitTransform fits on values and encodes them in one pass.
func (e *LabelEncoder) FitTransform(values []string, null []bool) ([]float64, error) {
	if err := e.Fit(values, null); err != nil {
		return nil, err
	}
	return e.Transform(values, null)
}

// InverseTransform maps codes back to labels. NullCode entries come back as
// nulls in the returned mask.
func (e *LabelEncoder) InverseTransform(codes []float64) ([]string, []bool, error) {
	if !e.fitted {
		return nil, nil, errors.NewNotFittedError("LabelEncoder", "InverseTransform")
	}
	values := make([]string, len(codes))
	null := make([]bool, len(codes))
	for i, code := range codes {
		if code == NullCode || math.IsNaN(code) {
			null[i] = true
			continue
		}
		idx := int(code)
		if idx < 0 || idx >= len(e.Classes) {
			return nil, nil, errors.NewValueError("LabelEncoder.InverseTransform", "code out of range")
		}
		values[i] = e.Classes[idx]
	}
	return values, null, nil
}

// EncodingReport records what one column's encoding produced, for the
// console audit trail. It is not persisted.
type EncodingReport struct {
	Column      string
	FirstCodes  []float64 // up to the first five encoded values
	FirstLabels []string  // up to the first five distinct labels, first-seen order
	ClassCount  int
}

// EncodeTextColumns encodes every text-typed column of the frame in place,
// replacing it with an integer-code column of the same name and position.
// Column selection is storage-type driven on purpose: any column the loader
// typed as text is encoded, regardless of its configured semantic role.
// The frame is mutated and also returned as the single owner going forward.
func EncodeTextColumns(f *dataframe.Frame) (*dataframe.Frame, []EncodingReport, error) {
	var reports []EncodingReport
	for _, col := range f.Columns() {
		if col.Kind != dataframe.KindText {
			continue
		}
		enc := NewLabelEncoder()
		codes, err := enc.FitTransform(col.Strings, col.Null)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "encode column %q", col.Name)
		}
		if err := f.Replace(dataframe.NewIntColumn(col.Name, codes)); err != nil {
			return nil, nil, err
		}
		reports = append(reports, EncodingReport{
			Column:      col.Name,
			FirstCodes:  head(codes, 5),
			FirstLabels: headStrings(enc.Classes, 5),
			ClassCount:  len(enc.Classes),
		})
	}
	return f, reports, nil
}

func head(values []float64, n int) []float64 {
	if len(values) < n {
		n = len(values)
	}
	return append([]float64(nil), values[:n]...)
}

func headStrings(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	return append([]string(nil), values[:n]...)
}
