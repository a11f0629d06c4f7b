// Package report renders study results as structured log records and files.
//
// The eda package returns pure report values; this package is where the side
// effects live. A Writer logs the statistics of a study through pkg/log and,
// when bound to an output directory, writes the supporting artifacts (the
// outlier rows as CSV) next to the plots.
package report

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/Josemvg/josemltools/dataset"
	"github.com/Josemvg/josemltools/eda"
	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/pkg/log"
)

// Writer renders study reports. The zero value is not usable; use New.
type Writer struct {
	logger log.Logger
	outDir string
}

// New creates a Writer that logs through the given logger. With a non-empty
// outDir the Writer also materializes artifacts, such as the outlier rows of
// a continuous study, as files in that directory.
func New(logger log.Logger, outDir string) *Writer {
	if logger == nil {
		logger = log.GetLoggerWithName("report")
	}
	return &Writer{logger: logger, outDir: outDir}
}

// WriteContinuous logs the statistics of a continuous column study and, when
// the Writer has an output directory, writes the outlier rows to
// <column>_outliers.csv.
func (w *Writer) WriteContinuous(r *eda.ContinuousReport) error {
	w.logger.Info("continuous column study",
		log.OperationKey, "study_continuous",
		log.ColumnKey, r.Column,
		log.RowsKey, r.Rows,
		log.MeanKey, r.Mean,
		log.MedianKey, r.Median,
		log.StdDevKey, r.StdDev,
		"stat.q1", r.Quartiles.Q1,
		"stat.q3", r.Quartiles.Q3,
		"stat.iqr", r.IQR,
		"fence.lower", r.Fences.Lower,
		"fence.upper", r.Fences.Upper,
		log.OutlierCountKey, r.OutlierCount,
		log.OutlierPercentKey, r.OutlierPercent,
	)

	if r.Skewness != nil {
		w.logger.Info("skewness",
			log.ColumnKey, r.Column,
			log.SkewnessKey, r.Skewness.Skewness,
			"stat.skewness_class", r.Skewness.Class.String(),
		)
	}
	if r.Normality != nil {
		w.logger.Info("normality test",
			log.ColumnKey, r.Column,
			"stat.w", r.Normality.W,
			log.PValueKey, r.Normality.PValue,
			"test.alpha", r.Normality.Alpha,
			"test.verdict", r.Normality.Verdict,
		)
	}

	if w.outDir != "" && r.Outliers != nil && r.Outliers.NumRows() > 0 {
		path := filepath.Join(w.outDir, r.Column+"_outliers.csv")
		if err := w.writeOutlierCSV(path, r.Outliers); err != nil {
			return err
		}
		w.logger.Info("outlier rows written",
			log.ColumnKey, r.Column,
			"file.path", path,
			log.RowsKey, r.Outliers.NumRows(),
		)
	}
	return nil
}

// WriteDiscrete logs the statistics and value distribution of a discrete
// column study.
func (w *Writer) WriteDiscrete(r *eda.DiscreteReport) error {
	w.logger.Info("discrete column study",
		log.OperationKey, "study_discrete",
		log.ColumnKey, r.Column,
		log.RowsKey, r.Rows,
		log.MeanKey, r.Mean,
		log.MedianKey, r.Median,
		log.StdDevKey, r.StdDev,
		log.ModeKey, r.Mode,
		"stat.distinct", len(r.Values),
	)

	labels := r.ValueLabels()
	for i, label := range labels {
		fields := []any{
			log.ColumnKey, r.Column,
			"value", label,
			"count", r.Counts[i],
		}
		for ci, class := range r.Classes {
			fields = append(fields, "count."+class, r.GroupCounts[ci][i])
		}
		w.logger.Info("value count", fields...)
	}
	return nil
}

// WriteCategorical logs the shares of a categorical column study.
func (w *Writer) WriteCategorical(r *eda.CategoricalReport) error {
	w.logger.Info("categorical column study",
		log.OperationKey, "study_categorical",
		log.ColumnKey, r.Column,
		log.RowsKey, r.Rows,
		log.ModeKey, r.Mode,
		"stat.distinct", r.UniqueCount,
	)

	for si, share := range r.Shares {
		fields := []any{
			log.ColumnKey, r.Column,
			"category", share.Label,
			"count", share.Count,
			"percent", share.Percent,
		}
		for ci, class := range r.Classes {
			fields = append(fields, "percent."+class, r.TargetPercents[ci][si])
		}
		w.logger.Info("category share", fields...)
	}
	return nil
}

// WriteOutlierSummary logs the per-column outlier counts of a frame.
func (w *Writer) WriteOutlierSummary(s *eda.OutlierSummary) error {
	w.logger.Info("outlier summary",
		log.OperationKey, "count_outliers",
		log.RowsKey, s.Rows,
		log.ColumnsKey, len(s.Columns),
	)
	for _, c := range s.Columns {
		w.logger.Info("column outliers",
			log.ColumnKey, c.Column,
			"outliers.high", c.High,
			"outliers.low", c.Low,
			"outliers.high_percent", c.HighPercent,
			"outliers.low_percent", c.LowPercent,
			"outliers.total", c.High+c.Low,
		)
	}
	return nil
}

func (w *Writer) writeOutlierCSV(path string, f *dataset.Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "report: creating output directory %s", filepath.Dir(path))
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "report: creating %s", path)
	}
	if err := dataset.WriteCSV(file, f); err != nil {
		file.Close()
		return err
	}
	return errors.Wrapf(file.Close(), "report: closing %s", path)
}

// FormatPercent renders a percent value the way the log records do, with two
// decimals. Exposed for the CLI's human-readable output.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}
