package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DimaChesnokov/ConnectPostgreSQL/correlation"
	"github.com/DimaChesnokov/ConnectPostgreSQL/hypothesis"
	"github.com/DimaChesnokov/ConnectPostgreSQL/preprocessing"
	"github.com/DimaChesnokov/ConnectPostgreSQL/profile"
)

func TestNumericSummaryFormatting(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).NumericSummary(profile.NumericSummary{
		Column:   "saleprice",
		Missing:  0.12345678,
		Max:      210,
		Min:      100,
		Mean:     155,
		Median:   155,
		Variance: 3366.6666667,
		Q10:      103,
		Q90:      207,
		Q25:      107.5,
		Q75:      202.5,
	})

	out := buf.String()
	assert.Contains(t, out, "Анализ числовой переменной: saleprice")
	// Percentage to four decimal places.
	assert.Contains(t, out, "Доля пропусков: 12.3457%")
	assert.Contains(t, out, "Среднее значение: 155.0000")
	assert.Contains(t, out, "Дисперсия: 3366.6667")
	assert.Contains(t, out, "Квантиль 0.1: 103.0000")
	assert.Contains(t, out, "Квартиль 3: 202.5000")
}

func TestCategoricalSummaryModeSentinel(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.CategoricalSummary(profile.CategoricalSummary{
		Column: "landuse", Unique: 2, Mode: "SINGLE FAMILY", HasMode: true,
	})
	assert.Contains(t, buf.String(), "Мода: SINGLE FAMILY")

	buf.Reset()
	w.CategoricalSummary(profile.CategoricalSummary{Column: "empty"})
	assert.Contains(t, buf.String(), "Мода: Нет моды")
}

func TestEncodingPreview(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Encoding(preprocessing.EncodingReport{
		Column:      "landuse",
		FirstCodes:  []float64{0, 1, 0, -1, 2},
		FirstLabels: []string{"SINGLE FAMILY", "VACANT LAND", "DUPLEX"},
		ClassCount:  3,
	})

	out := buf.String()
	assert.Contains(t, out, "Столбец 'landuse' закодирован")
	assert.Contains(t, out, "0 1 0 -1 2")
	assert.Contains(t, out, "['SINGLE FAMILY', 'VACANT LAND', 'DUPLEX'] ...")
}

func TestShape(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Shape(0, 3)
	assert.Equal(t, "Количество строк: 0, Количество столбцов: 3\n", buf.String())
}

func TestANOVADecision(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.ANOVA(hypothesis.TestResult{Statistic: 200, PValue: 4.963e-3}, 0.05)
	out := buf.String()
	// P-value in scientific notation with four digits.
	assert.Contains(t, out, "p-значение = 4.9630e-03")
	assert.Contains(t, out, "Отвергаем нулевую гипотезу")

	buf.Reset()
	w.ANOVA(hypothesis.TestResult{Statistic: 0.5, PValue: 0.62}, 0.05)
	assert.Contains(t, buf.String(), "Не удалось отвергнуть нулевую гипотезу")
}

func TestTTestDecision(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).TTest(hypothesis.TestResult{Statistic: -1, PValue: 0.3466}, 0.05)

	out := buf.String()
	assert.Contains(t, out, "Результат t-теста: статистика = -1.0000, p-значение = 3.4660e-01")
	assert.Contains(t, out, "Не удалось отвергнуть нулевую гипотезу: площадь участка")
}

func TestCorrelationTable(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).CorrelationTable([]correlation.Entry{
		{Column: "saleprice", Corr: 1.0},
		{Column: "totalvalue", Corr: 0.87},
	})

	out := buf.String()
	assert.Contains(t, out, "Таблица корреляции с целевым столбцом:")
	assert.Contains(t, out, "saleprice")
	assert.Contains(t, out, "1.000000")
}
