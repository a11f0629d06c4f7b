package eda

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/Josemvg/josemltools/dataset"
	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/plot"
	"github.com/Josemvg/josemltools/stats"
)

// DiscreteReport is the result of a discrete column study.
type DiscreteReport struct {
	Column string
	Rows   int

	Mean   float64
	Median float64
	StdDev float64
	Mode   float64

	// Values holds the distinct non-missing values in ascending order,
	// Counts their occurrence counts, aligned by index.
	Values []float64
	Counts []int

	// Target grouping, set when the study was run with WithTarget.
	Target      string
	Classes     []string
	GroupCounts [][]int // [class][value]

	Plots []string
}

// StudyDiscrete performs a complete study of a discrete quantitative column:
// mean, median, standard deviation and mode, plus the distribution of the
// distinct values. With WithTarget the distribution is additionally grouped
// by the classes of a categorical target column; with WithPlotDir the
// distribution is written as a (grouped) count bar chart.
func StudyDiscrete(f *dataset.Frame, col string, opts ...Option) (*DiscreteReport, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	values, err := f.Numeric(col)
	if err != nil {
		return nil, err
	}

	rep := &DiscreteReport{Column: col, Rows: f.NumRows()}

	if rep.Mean, err = stats.Mean(values); err != nil {
		return nil, err
	}
	if rep.Median, err = stats.Median(values); err != nil {
		return nil, err
	}
	if rep.StdDev, err = stats.StdDev(values); err != nil {
		return nil, err
	}
	if rep.Mode, err = stats.Mode(values); err != nil {
		return nil, err
	}

	counts := make(map[float64]int)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		counts[v]++
	}
	rep.Values = make([]float64, 0, len(counts))
	for v := range counts {
		rep.Values = append(rep.Values, v)
	}
	sort.Float64s(rep.Values)
	rep.Counts = make([]int, len(rep.Values))
	for i, v := range rep.Values {
		rep.Counts[i] = counts[v]
	}

	if cfg.target != "" {
		if err := rep.groupByTarget(f, values, cfg.target); err != nil {
			return nil, err
		}
	}

	if cfg.plotDir != "" {
		if err := rep.renderPlot(cfg); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// groupByTarget counts the column's values per class of the target column.
func (r *DiscreteReport) groupByTarget(f *dataset.Frame, values []float64, target string) error {
	labels, err := f.Categorical(target)
	if err != nil {
		return err
	}

	classSet := make(map[string]bool)
	byClass := make(map[string]map[float64]int)
	for i, v := range values {
		if math.IsNaN(v) || labels[i] == "" {
			continue
		}
		class := labels[i]
		classSet[class] = true
		if byClass[class] == nil {
			byClass[class] = make(map[float64]int)
		}
		byClass[class][v]++
	}

	r.Target = target
	r.Classes = make([]string, 0, len(classSet))
	for class := range classSet {
		r.Classes = append(r.Classes, class)
	}
	sort.Strings(r.Classes)

	r.GroupCounts = make([][]int, len(r.Classes))
	for ci, class := range r.Classes {
		row := make([]int, len(r.Values))
		for vi, v := range r.Values {
			row[vi] = byClass[class][v]
		}
		r.GroupCounts[ci] = row
	}
	return nil
}

// ValueLabels formats the distinct values for axis labels.
func (r *DiscreteReport) ValueLabels() []string {
	labels := make([]string, len(r.Values))
	for i, v := range r.Values {
		labels[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return labels
}

func (r *DiscreteReport) renderPlot(cfg studyConfig) error {
	if err := os.MkdirAll(cfg.plotDir, 0o755); err != nil {
		return errors.Wrapf(err, "eda: creating plot directory %s", cfg.plotDir)
	}
	path := filepath.Join(cfg.plotDir, r.Column+"_counts.png")

	if r.Target == "" {
		counts := make([]float64, len(r.Counts))
		for i, c := range r.Counts {
			counts[i] = float64(c)
		}
		if err := plot.CountBars(r.ValueLabels(), counts, r.Column, path); err != nil {
			return err
		}
	} else {
		series := make([]plot.BarSeries, len(r.Classes))
		for ci, class := range r.Classes {
			vals := make([]float64, len(r.GroupCounts[ci]))
			for i, c := range r.GroupCounts[ci] {
				vals[i] = float64(c)
			}
			series[ci] = plot.BarSeries{Name: class, Values: vals}
		}
		title := r.Column + " by " + r.Target
		if err := plot.GroupedBars(r.ValueLabels(), series, "count", title, path); err != nil {
			return err
		}
	}
	r.Plots = append(r.Plots, path)
	return nil
}
