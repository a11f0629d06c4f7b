package plot

import (
	"sort"

	gstat "gonum.org/v1/gonum/stat"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/stats"
)

// QQ renders a normal quantile-quantile plot of the sample: ordered sample
// values against theoretical normal order positions, with a least-squares
// reference line, the probplot figure of the continuous study.
func QQ(sample []float64, title, path string) error {
	clean := stats.DropMissing(sample)
	if len(clean) < 3 {
		return errors.NewInsufficientSamplesError("plot.QQ", 3, len(clean))
	}

	sorted := append([]float64(nil), clean...)
	sort.Float64s(sorted)
	theoretical := stats.NormalOrderPositions(len(sorted))

	return errors.SafeExecute("plot.QQ", func() error {
		p := gplot.New()
		p.Title.Text = title
		p.X.Label.Text = "theoretical quantiles"
		p.Y.Label.Text = "ordered values"

		pts := make(plotter.XYs, len(sorted))
		for i := range sorted {
			pts[i].X = theoretical[i]
			pts[i].Y = sorted[i]
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(err, "plot: building QQ scatter")
		}
		scatter.GlyphStyle.Color = colorPrimary
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)

		// Least-squares line through the quantile pairs, like probplot's fit.
		alpha, beta := gstat.LinearRegression(theoretical, sorted, nil, false)
		lo, hi := theoretical[0], theoretical[len(theoretical)-1]
		line, err := plotter.NewLine(plotter.XYs{
			{X: lo, Y: alpha + beta*lo},
			{X: hi, Y: alpha + beta*hi},
		})
		if err != nil {
			return errors.Wrap(err, "plot: building QQ reference line")
		}
		line.Color = colorAccent
		p.Add(line)

		return errors.Wrap(p.Save(defaultWidth, defaultHeight, path), "plot: saving QQ plot")
	})
}
