// Package log defines standard attribute keys for data analysis operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in josemltools. Using these standard keys enables
// better log analysis and debugging of exploratory data analysis workflows.
//
// The keys follow a hierarchical naming convention (e.g., "dataset.rows",
// "column.name") to enable structured log filtering.

package log

// Dataset and Column Context
// These attributes identify the dataset and column being analyzed.
const (
	// DatasetKey identifies the dataset being analyzed.
	// Examples: "titanic.csv", "sales.db"
	DatasetKey = "dataset.name"

	// RowsKey indicates the number of rows in the dataset.
	RowsKey = "dataset.rows"

	// ColumnsKey indicates the number of columns in the dataset.
	ColumnsKey = "dataset.columns"

	// ColumnKey identifies the column under study.
	ColumnKey = "column.name"

	// ColumnKindKey specifies the kind of the column.
	// Standard values: "numeric", "categorical"
	ColumnKindKey = "column.kind"

	// TargetKey identifies the target column used to group a study.
	TargetKey = "column.target"
)

// Study Context
// These attributes describe the analysis operation being performed.
const (
	// OperationKey specifies the analysis operation being performed.
	// Standard values: "study_continuous", "study_discrete",
	// "study_categorical", "count_outliers", "plot_outliers"
	OperationKey = "eda.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "eda", "dataset", "stats", "plot", "report"
	ComponentKey = "eda.component"
)

// Statistics
// These attributes carry computed statistics for a studied column.
const (
	// MeanKey is the arithmetic mean of the studied column.
	MeanKey = "stat.mean"

	// MedianKey is the median of the studied column.
	MedianKey = "stat.median"

	// StdDevKey is the sample standard deviation of the studied column.
	StdDevKey = "stat.stddev"

	// ModeKey is the most frequent value of the studied column.
	ModeKey = "stat.mode"

	// SkewnessKey is the adjusted Fisher-Pearson skewness.
	SkewnessKey = "stat.skewness"

	// OutlierCountKey is the number of Tukey-fence outliers found.
	OutlierCountKey = "stat.outliers"

	// OutlierPercentKey is the outlier share of the dataset, in percent.
	OutlierPercentKey = "stat.outliers_percent"

	// PValueKey is the p-value of a statistical test.
	PValueKey = "stat.p_value"
)

// Error Context
const (
	// ErrorKey carries an error value.
	ErrorKey = "error"

	// DurationMsKey is the elapsed time of an operation in milliseconds.
	DurationMsKey = "duration_ms"
)
