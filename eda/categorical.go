package eda

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/Josemvg/josemltools/dataset"
	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/plot"
	"github.com/Josemvg/josemltools/stats"
)

// CategoryShare is one category of a categorical column with its share of
// the non-missing rows.
type CategoryShare struct {
	Label   string
	Count   int
	Percent float64
}

// CategoricalReport is the result of a categorical column study.
type CategoricalReport struct {
	Column string
	Rows   int

	// Mode is the most frequent label; ties resolve to the
	// lexicographically smallest, like pandas' mode()[0].
	Mode string
	// UniqueCount is the number of distinct non-missing labels.
	UniqueCount int

	// Shares lists the categories by descending count, the order of
	// pandas' value_counts. The first entry is the largest share.
	Shares []CategoryShare

	// Target grouping, set when the study was run with WithTarget and the
	// target differs from the studied column.
	Target         string
	Classes        []string
	TargetPercents [][]float64 // [class][category], percent of non-missing rows

	Plots []string
}

// StudyCategorical performs a complete study of a categorical column: mode,
// number of distinct labels, and the share of each category. With WithTarget
// (and target != column, matching the original guard) the distribution is
// additionally split per target class in percent of the rows. With
// WithPlotDir it writes a share chart with the largest category highlighted,
// plus the grouped percent chart when a target is set.
func StudyCategorical(f *dataset.Frame, col string, opts ...Option) (*CategoricalReport, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	labels, err := f.Categorical(col)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	total := 0
	for _, l := range labels {
		if l == "" {
			continue
		}
		counts[l]++
		total++
	}
	if total == 0 {
		return nil, errors.NewEmptyDataError("StudyCategorical", "column has no non-missing labels")
	}

	rep := &CategoricalReport{Column: col, Rows: f.NumRows(), UniqueCount: len(counts)}

	rep.Shares = make([]CategoryShare, 0, len(counts))
	for label, count := range counts {
		rep.Shares = append(rep.Shares, CategoryShare{
			Label:   label,
			Count:   count,
			Percent: stats.RoundPercent(count, total),
		})
	}
	// Descending count, ties in label order so the result is deterministic.
	sort.Slice(rep.Shares, func(i, j int) bool {
		if rep.Shares[i].Count != rep.Shares[j].Count {
			return rep.Shares[i].Count > rep.Shares[j].Count
		}
		return rep.Shares[i].Label < rep.Shares[j].Label
	})
	rep.Mode = rep.Shares[0].Label

	// The original skips the grouped chart when the target is the studied
	// column itself.
	if cfg.target != "" && cfg.target != col {
		if err := rep.groupByTarget(f, labels, cfg.target, total); err != nil {
			return nil, err
		}
	}

	if cfg.plotDir != "" {
		if err := rep.renderPlots(cfg); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

func (r *CategoricalReport) groupByTarget(f *dataset.Frame, labels []string, target string, total int) error {
	targetLabels, err := f.Categorical(target)
	if err != nil {
		return err
	}

	classSet := make(map[string]bool)
	byClass := make(map[string]map[string]int)
	for i, l := range labels {
		if l == "" || targetLabels[i] == "" {
			continue
		}
		class := targetLabels[i]
		classSet[class] = true
		if byClass[class] == nil {
			byClass[class] = make(map[string]int)
		}
		byClass[class][l]++
	}

	r.Target = target
	r.Classes = make([]string, 0, len(classSet))
	for class := range classSet {
		r.Classes = append(r.Classes, class)
	}
	sort.Strings(r.Classes)

	r.TargetPercents = make([][]float64, len(r.Classes))
	for ci, class := range r.Classes {
		row := make([]float64, len(r.Shares))
		for si, share := range r.Shares {
			row[si] = stats.RoundPercent(byClass[class][share.Label], total)
		}
		r.TargetPercents[ci] = row
	}
	return nil
}

func (r *CategoricalReport) labels() []string {
	out := make([]string, len(r.Shares))
	for i, s := range r.Shares {
		out[i] = s.Label
	}
	return out
}

func (r *CategoricalReport) renderPlots(cfg studyConfig) error {
	if err := os.MkdirAll(cfg.plotDir, 0o755); err != nil {
		return errors.Wrapf(err, "eda: creating plot directory %s", cfg.plotDir)
	}

	percents := make([]float64, len(r.Shares))
	for i, s := range r.Shares {
		percents[i] = s.Percent
	}
	sharePath := filepath.Join(cfg.plotDir, r.Column+"_shares.png")
	if err := plot.ShareBars(r.labels(), percents, r.Column, sharePath); err != nil {
		return err
	}
	r.Plots = append(r.Plots, sharePath)

	if r.Target != "" {
		series := make([]plot.BarSeries, len(r.Classes))
		for ci, class := range r.Classes {
			series[ci] = plot.BarSeries{Name: class, Values: r.TargetPercents[ci]}
		}
		groupedPath := filepath.Join(cfg.plotDir, r.Column+"_by_"+r.Target+".png")
		title := r.Column + " by " + r.Target
		if err := plot.GroupedBars(r.labels(), series, "share (%)", title, groupedPath); err != nil {
			return err
		}
		r.Plots = append(r.Plots, groupedPath)
	}
	return nil
}
