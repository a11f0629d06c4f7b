// Package plot renders the figures of a column study to PNG files using
// gonum.org/v1/plot. It is the file-based replacement for the seaborn and
// matplotlib figures the analyses were designed around: box-with-strip plots,
// histograms with mean/median rules, count and share bar charts, QQ plots and
// the stacked outlier panels.
//
// Renderers drop missing values, validate that something remains to draw and
// run the actual drawing under panic recovery, because gonum/plot panics on
// some degenerate inputs instead of returning errors.
package plot

import (
	"image/color"
	"math"
	"math/rand"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/stats"
)

// Canvas size for single-figure renders, adjustable via SetFigureSize.
var (
	defaultWidth  = 16 * vg.Centimeter
	defaultHeight = 10 * vg.Centimeter
)

// SetFigureSize changes the canvas size, in centimeters, of every figure
// rendered afterwards. Not safe for concurrent use with rendering; set it
// once at startup.
func SetFigureSize(widthCm, heightCm float64) error {
	if widthCm <= 0 || heightCm <= 0 {
		return errors.NewValueError("plot.SetFigureSize", "figure dimensions must be positive")
	}
	defaultWidth = vg.Length(widthCm) * vg.Centimeter
	defaultHeight = vg.Length(heightCm) * vg.Centimeter
	return nil
}

var (
	colorPrimary   = color.RGBA{R: 31, G: 119, B: 180, A: 255}  // tab:blue
	colorAccent    = color.RGBA{R: 214, G: 39, B: 40, A: 255}   // tab:red
	colorSecondary = color.RGBA{R: 44, G: 160, B: 44, A: 255}   // tab:green
	colorMuted     = color.RGBA{R: 140, G: 140, B: 140, A: 255} // gray
)

func cleanValues(op string, values []float64) (plotter.Values, error) {
	clean := stats.DropMissing(values)
	if len(clean) == 0 {
		return nil, errors.NewEmptyDataError(op, "no non-missing values to plot")
	}
	return plotter.Values(clean), nil
}

// BoxStrip renders a box plot of the values with a jittered point overlay,
// the shape of the seaborn boxplot+stripplot pair of the continuous study.
func BoxStrip(values []float64, title, label, path string) error {
	vs, err := cleanValues("plot.BoxStrip", values)
	if err != nil {
		return err
	}

	return errors.SafeExecute("plot.BoxStrip", func() error {
		p := gplot.New()
		p.Title.Text = title
		p.Y.Label.Text = label
		p.NominalX(label)

		box, err := plotter.NewBoxPlot(vg.Points(40), 0, vs)
		if err != nil {
			return errors.Wrap(err, "plot: building box plot")
		}
		box.FillColor = colorPrimary
		p.Add(box)

		// Deterministic jitter keeps renders reproducible across runs.
		rng := rand.New(rand.NewSource(1))
		pts := make(plotter.XYs, len(vs))
		for i, v := range vs {
			pts[i].X = (rng.Float64() - 0.5) * 0.25
			pts[i].Y = v
		}
		strip, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(err, "plot: building strip overlay")
		}
		strip.GlyphStyle.Color = color.RGBA{R: 214, G: 39, B: 40, A: 64}
		strip.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(strip)

		return errors.Wrap(p.Save(defaultWidth, defaultHeight, path), "plot: saving box plot")
	})
}

// HistogramWithCenterLines renders a histogram of the values with vertical
// rules at the mean and the median, matching the continuous study's
// distribution figure.
func HistogramWithCenterLines(values []float64, bins int, mean, median float64, title, label, path string) error {
	vs, err := cleanValues("plot.HistogramWithCenterLines", values)
	if err != nil {
		return err
	}
	if bins <= 0 {
		return errors.NewValueError("plot.HistogramWithCenterLines", "bins must be positive")
	}

	return errors.SafeExecute("plot.HistogramWithCenterLines", func() error {
		p := gplot.New()
		p.Title.Text = title
		p.X.Label.Text = label
		p.Y.Label.Text = "count"

		hist, err := plotter.NewHist(vs, bins)
		if err != nil {
			return errors.Wrap(err, "plot: building histogram")
		}
		hist.FillColor = colorPrimary
		p.Add(hist)

		top := maxBinCount(vs, bins)
		for _, rule := range []struct {
			x    float64
			c    color.Color
			name string
		}{
			{mean, colorAccent, "Mean"},
			{median, colorSecondary, "Median"},
		} {
			line, err := plotter.NewLine(plotter.XYs{{X: rule.x, Y: 0}, {X: rule.x, Y: top}})
			if err != nil {
				return errors.Wrap(err, "plot: building center line")
			}
			line.Color = rule.c
			line.Width = vg.Points(1.5)
			p.Add(line)
			p.Legend.Add(rule.name, line)
		}
		p.Legend.Top = true

		return errors.Wrap(p.Save(defaultWidth, defaultHeight, path), "plot: saving histogram")
	})
}

// maxBinCount reproduces the histogram binning to size the vertical rules.
func maxBinCount(vs plotter.Values, bins int) float64 {
	lo, hi := vs[0], vs[0]
	for _, v := range vs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return float64(len(vs))
	}
	counts := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range vs {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	top := 0.0
	for _, c := range counts {
		top = math.Max(top, c)
	}
	return top
}

// CountBars renders one bar per label, the countplot/barplot of the discrete
// study without a target.
func CountBars(labels []string, counts []float64, title, path string) error {
	if len(labels) == 0 || len(labels) != len(counts) {
		return errors.NewValidationError("labels", "labels and counts must be non-empty and equal length", len(labels))
	}

	return errors.SafeExecute("plot.CountBars", func() error {
		p := gplot.New()
		p.Title.Text = title
		p.Y.Label.Text = "count"

		bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(24))
		if err != nil {
			return errors.Wrap(err, "plot: building bar chart")
		}
		bars.Color = colorPrimary
		bars.LineStyle.Width = 0
		p.Add(bars)
		p.NominalX(labels...)

		return errors.Wrap(p.Save(defaultWidth, defaultHeight, path), "plot: saving bar chart")
	})
}

// BarSeries is one hue of a grouped bar chart.
type BarSeries struct {
	Name   string
	Values []float64
}

// GroupedBars renders side-by-side bars per category, one series per target
// class, the seaborn hue-split countplot of the discrete and categorical
// studies.
func GroupedBars(categories []string, series []BarSeries, yLabel, title, path string) error {
	if len(categories) == 0 || len(series) == 0 {
		return errors.NewValidationError("series", "categories and series must be non-empty", len(series))
	}
	for _, s := range series {
		if len(s.Values) != len(categories) {
			return errors.NewValidationError("series", "every series must cover every category", s.Name)
		}
	}

	return errors.SafeExecute("plot.GroupedBars", func() error {
		p := gplot.New()
		p.Title.Text = title
		p.Y.Label.Text = yLabel

		width := vg.Points(40 / float64(len(series)))
		palette := []color.RGBA{colorPrimary, colorAccent, colorSecondary, colorMuted}
		for i, s := range series {
			bars, err := plotter.NewBarChart(plotter.Values(s.Values), width)
			if err != nil {
				return errors.Wrap(err, "plot: building grouped bars")
			}
			bars.Color = palette[i%len(palette)]
			bars.LineStyle.Width = 0
			bars.Offset = width * vg.Length(i-len(series)/2)
			p.Add(bars)
			p.Legend.Add(s.Name, bars)
		}
		p.NominalX(categories...)
		p.Legend.Top = true

		return errors.Wrap(p.Save(defaultWidth, defaultHeight, path), "plot: saving grouped bars")
	})
}

// ShareBars renders category shares in percent with the largest share
// highlighted, the stand-in for the categorical study's exploded pie chart.
func ShareBars(labels []string, percents []float64, title, path string) error {
	if len(labels) == 0 || len(labels) != len(percents) {
		return errors.NewValidationError("labels", "labels and percents must be non-empty and equal length", len(labels))
	}

	maxIdx := 0
	for i, v := range percents {
		if v > percents[maxIdx] {
			maxIdx = i
		}
	}

	return errors.SafeExecute("plot.ShareBars", func() error {
		p := gplot.New()
		p.Title.Text = title
		p.Y.Label.Text = "share (%)"

		rest := make([]float64, len(percents))
		top := make([]float64, len(percents))
		copy(rest, percents)
		rest[maxIdx] = 0
		top[maxIdx] = percents[maxIdx]

		for _, part := range []struct {
			vals []float64
			c    color.RGBA
		}{
			{rest, colorPrimary},
			{top, colorAccent}, // largest share stands out
		} {
			bars, err := plotter.NewBarChart(plotter.Values(part.vals), vg.Points(24))
			if err != nil {
				return errors.Wrap(err, "plot: building share bars")
			}
			bars.Color = part.c
			bars.LineStyle.Width = 0
			p.Add(bars)
		}
		p.NominalX(labels...)

		return errors.Wrap(p.Save(defaultWidth, defaultHeight, path), "plot: saving share bars")
	})
}
