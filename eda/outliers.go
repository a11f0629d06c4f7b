package eda

import (
	"github.com/Josemvg/josemltools/core/parallel"
	"github.com/Josemvg/josemltools/dataset"
	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/plot"
	"github.com/Josemvg/josemltools/stats"
)

// Columns below this count are summarized sequentially; the per-column work
// is too small to pay for goroutine setup.
const parallelColumnThreshold = 8

// ColumnOutliers is the outlier count of one numeric column.
type ColumnOutliers struct {
	Column      string
	High        int
	Low         int
	HighPercent float64
	LowPercent  float64
}

// OutlierSummary is the per-column outlier count of a frame.
type OutlierSummary struct {
	Rows    int
	Columns []ColumnOutliers
}

// CountOutliersPerColumn counts, for every numeric column of the frame, the
// values above and below the Tukey fences, with their share of the rows.
// Columns whose fences cannot be computed (all values missing) report zero
// outliers. Wide frames are summarized in parallel.
func CountOutliersPerColumn(f *dataset.Frame, opts ...Option) (*OutlierSummary, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	names := f.NumericNames()
	if len(names) == 0 {
		return nil, errors.NewEmptyDataError("CountOutliersPerColumn", "frame has no numeric columns")
	}

	summary := &OutlierSummary{
		Rows:    f.NumRows(),
		Columns: make([]ColumnOutliers, len(names)),
	}

	parallel.ParallelizeWithThreshold(len(names), parallelColumnThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			summary.Columns[i] = countColumn(f, names[i], cfg.fenceK)
		}
	})
	return summary, nil
}

func countColumn(f *dataset.Frame, name string, fenceK float64) ColumnOutliers {
	out := ColumnOutliers{Column: name}

	values, err := f.Numeric(name)
	if err != nil {
		return out
	}
	q, err := stats.ComputeQuartiles(values)
	if err != nil {
		// All-missing column: nothing to fence.
		return out
	}

	fences := stats.TukeyFences(q, fenceK)
	out.High, out.Low = stats.CountOutliers(values, fences)
	out.HighPercent = stats.RoundPercent(out.High, f.NumRows())
	out.LowPercent = stats.RoundPercent(out.Low, f.NumRows())
	return out
}

// PlotOutliersPerColumn writes a two-panel bar figure of the per-column
// outlier counts, high outliers on top and low outliers below. With percent
// set the panels show shares of the dataset instead of counts.
func PlotOutliersPerColumn(f *dataset.Frame, path string, percent bool, opts ...Option) error {
	summary, err := CountOutliersPerColumn(f, opts...)
	if err != nil {
		return err
	}

	labels := make([]string, len(summary.Columns))
	high := make([]float64, len(summary.Columns))
	low := make([]float64, len(summary.Columns))
	for i, c := range summary.Columns {
		labels[i] = c.Column
		if percent {
			high[i] = c.HighPercent
			low[i] = c.LowPercent
		} else {
			high[i] = float64(c.High)
			low[i] = float64(c.Low)
		}
	}

	yLabel := "count"
	if percent {
		yLabel = "share (%)"
	}
	return plot.StackedPanels(path,
		plot.Panel{Title: "High outliers", YLabel: yLabel, Labels: labels, Values: high},
		plot.Panel{Title: "Low outliers", YLabel: yLabel, Labels: labels, Values: low},
	)
}
