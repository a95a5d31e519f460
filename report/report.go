// Package report renders the human-readable analysis report. All strings
// and number formats follow the original lab report: percentages with four
// decimal places, statistics with four decimal places, p-values in
// scientific notation with four digits.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/DimaChesnokov/ConnectPostgreSQL/correlation"
	"github.com/DimaChesnokov/ConnectPostgreSQL/hypothesis"
	"github.com/DimaChesnokov/ConnectPostgreSQL/preprocessing"
	"github.com/DimaChesnokov/ConnectPostgreSQL/profile"
)

// Writer renders report sections to an output stream.
type Writer struct {
	w io.Writer
}

// NewWriter creates a report writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (r *Writer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Connected reports a successful database connection.
func (r *Writer) Connected() {
	r.printf("Подключение успешно\n")
}

// Loaded reports that the query result was materialized.
func (r *Writer) Loaded(rows int) {
	r.printf("Данные успешно загружены: %d строк\n", rows)
}

// NumericSummary prints one numeric column's profile.
func (r *Writer) NumericSummary(s profile.NumericSummary) {
	r.printf("\nАнализ числовой переменной: %s\n", s.Column)
	r.printf("Доля пропусков: %.4f%%\n", s.Missing*100)
	r.printf("Максимум: %g\n", s.Max)
	r.printf("Минимум: %g\n", s.Min)
	r.printf("Среднее значение: %.4f\n", s.Mean)
	r.printf("Медиана: %.4f\n", s.Median)
	r.printf("Дисперсия: %.4f\n", s.Variance)
	r.printf("Квантиль 0.1: %.4f\n", s.Q10)
	r.printf("Квантиль 0.9: %.4f\n", s.Q90)
	r.printf("Квартиль 1: %.4f\n", s.Q25)
	r.printf("Квартиль 3: %.4f\n", s.Q75)
}

// CategoricalSummary prints one categorical column's profile.
func (r *Writer) CategoricalSummary(s profile.CategoricalSummary) {
	r.printf("\nАнализ категориальной переменной: %s\n", s.Column)
	r.printf("Доля пропусков: %.4f%%\n", s.Missing*100)
	r.printf("Количество уникальных значений: %d\n", s.Unique)
	if s.HasMode {
		r.printf("Мода: %s\n", s.Mode)
	} else {
		r.printf("Мода: Нет моды\n")
	}
}

// ColumnError reports a skipped column in a profiling stage.
func (r *Writer) ColumnError(err error) {
	r.printf("Ошибка анализа переменной: %v\n", err)
}

// Encoding prints one column's encoding audit trail: the first five codes
// and the first five category labels in first-seen order.
func (r *Writer) Encoding(rep preprocessing.EncodingReport) {
	r.printf("\nСтолбец '%s' закодирован. Первые 5 значений после кодирования:\n", rep.Column)
	codes := make([]string, len(rep.FirstCodes))
	for i, c := range rep.FirstCodes {
		codes[i] = fmt.Sprintf("%d", int(c))
	}
	r.printf("%s\n", strings.Join(codes, " "))
	labels := make([]string, len(rep.FirstLabels))
	for i, l := range rep.FirstLabels {
		labels[i] = fmt.Sprintf("'%s'", l)
	}
	r.printf("Уникальные категории: [%s] ...\n", strings.Join(labels, ", "))
}

// Shape prints row and column counts.
func (r *Writer) Shape(rows, cols int) {
	r.printf("Количество строк: %d, Количество столбцов: %d\n", rows, cols)
}

// ANOVA prints the land-use group-mean test and its decision at alpha.
func (r *Writer) ANOVA(res hypothesis.TestResult, alpha float64) {
	r.printf("\nГипотеза 1: Различается ли средняя цена продажи (saleprice) для участков с разным типом использования земли (landuse)?\n")
	r.printf("Результат ANOVA: статистика = %.4f, p-значение = %.4e\n", res.Statistic, res.PValue)
	if res.RejectAt(alpha) {
		r.printf("Отвергаем нулевую гипотезу: средняя цена продажи различается между группами.\n")
	} else {
		r.printf("Не удалось отвергнуть нулевую гипотезу: средняя цена продажи не различается между группами.\n")
	}
}

// TTest prints the vacant-lot acreage test and its decision at alpha.
func (r *Writer) TTest(res hypothesis.TestResult, alpha float64) {
	r.printf("\nГипотеза 2: Различается ли площадь участка (acreage) между участками, проданными как пустые (soldasvacant), и участками, которые таковыми не являются?\n")
	r.printf("Результат t-теста: статистика = %.4f, p-значение = %.4e\n", res.Statistic, res.PValue)
	if res.RejectAt(alpha) {
		r.printf("Отвергаем нулевую гипотезу: площадь участка различается между группами.\n")
	} else {
		r.printf("Не удалось отвергнуть нулевую гипотезу: площадь участка не различается между группами.\n")
	}
}

// CorrelationTable prints the target column's sorted correlation table.
func (r *Writer) CorrelationTable(entries []correlation.Entry) {
	r.printf("\nТаблица корреляции с целевым столбцом:\n")
	for _, e := range entries {
		r.printf("%-20s %9.6f\n", e.Column, e.Corr)
	}
}

// HeatmapSaved reports the heatmap artifact's path.
func (r *Writer) HeatmapSaved(path string) {
	r.printf("Тепловая карта сохранена: %s\n", path)
}
