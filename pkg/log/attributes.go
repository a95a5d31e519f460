// Standard attribute keys for pipeline logging. Using fixed keys keeps the
// JSON logs filterable per stage and per column.
package log

// Run and stage context.
const (
	// RunIDKey identifies one pipeline invocation.
	RunIDKey = "run.id"

	// StageKey names the pipeline stage emitting the record.
	// Values: "connect", "load", "profile_numeric", "profile_categorical",
	// "encode", "shape", "hypothesis", "correlation".
	StageKey = "pipeline.stage"

	// DurationMsKey records a stage's wall-clock duration in milliseconds.
	DurationMsKey = "duration_ms"
)

// Data shape and column context.
const (
	// RowsKey is the number of rows in the frame under analysis.
	RowsKey = "data.rows"

	// ColumnsKey is the number of columns in the frame under analysis.
	ColumnsKey = "data.columns"

	// ColumnKey names a single column being profiled or encoded.
	ColumnKey = "data.column"

	// TableKey names the source database table.
	TableKey = "db.table"
)

// Statistical result context.
const (
	// TestNameKey names a hypothesis test ("anova", "welch_ttest").
	TestNameKey = "test.name"

	// PValueKey carries a test's p-value.
	PValueKey = "test.p_value"

	// StatisticKey carries a test's statistic.
	StatisticKey = "test.statistic"
)
