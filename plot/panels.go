package plot

import (
	"os"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Josemvg/josemltools/pkg/errors"
)

// Panel is one bar chart of a stacked multi-panel figure.
type Panel struct {
	Title  string
	YLabel string
	Labels []string
	Values []float64
}

// StackedPanels renders the panels as rows of a single PNG, the
// two-row figure of the per-column outlier plot.
func StackedPanels(path string, panels ...Panel) error {
	if len(panels) == 0 {
		return errors.NewValidationError("panels", "at least one panel is required", 0)
	}
	for _, panel := range panels {
		if len(panel.Labels) == 0 || len(panel.Labels) != len(panel.Values) {
			return errors.NewValidationError("panels", "labels and values must be non-empty and equal length", panel.Title)
		}
	}

	return errors.SafeExecute("plot.StackedPanels", func() error {
		rows := make([][]*gplot.Plot, len(panels))
		for i, panel := range panels {
			p := gplot.New()
			p.Title.Text = panel.Title
			p.Y.Label.Text = panel.YLabel

			bars, err := plotter.NewBarChart(plotter.Values(panel.Values), vg.Points(20))
			if err != nil {
				return errors.Wrap(err, "plot: building panel bars")
			}
			bars.Color = colorPrimary
			bars.LineStyle.Width = 0
			p.Add(bars)
			p.NominalX(panel.Labels...)

			rows[i] = []*gplot.Plot{p}
		}

		img := vgimg.New(20*vg.Centimeter, vg.Length(len(panels))*8*vg.Centimeter)
		dc := draw.New(img)
		tiles := draw.Tiles{
			Rows: len(panels),
			Cols: 1,
			PadX: vg.Millimeter * 2,
			PadY: vg.Millimeter * 2,
		}
		canvases := gplot.Align(rows, tiles, dc)
		for i, row := range rows {
			row[0].Draw(canvases[i][0])
		}

		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "plot: creating %s", path)
		}
		defer f.Close()

		png := vgimg.PngCanvas{Canvas: img}
		if _, err := png.WriteTo(f); err != nil {
			return errors.Wrap(err, "plot: encoding panels PNG")
		}
		return nil
	})
}
