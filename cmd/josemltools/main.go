// Command josemltools runs exploratory data analysis studies on CSV and
// SQLite datasets: per-column statistics, outlier detection with Tukey
// fences, normality testing and the matching PNG figures.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Josemvg/josemltools/config"
	"github.com/Josemvg/josemltools/dataset"
	"github.com/Josemvg/josemltools/eda"
	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/pkg/log"
	"github.com/Josemvg/josemltools/plot"
	"github.com/Josemvg/josemltools/report"
)

const version = "0.1.0"

// CLI defines the command-line interface for josemltools.
var CLI struct {
	// Global flags
	Config   string `help:"YAML file with study defaults" type:"existingfile"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`

	Study    StudyGroup    `cmd:"" help:"Study a single column (continuous, discrete, categorical)"`
	Outliers OutliersGroup `cmd:"" help:"Per-column outlier counts and plots"`
	Version  VersionCmd    `cmd:"" help:"Print version information"`
}

// StudyGroup contains the single-column studies.
type StudyGroup struct {
	Continuous  ContinuousCmd  `cmd:"" help:"Study a continuous quantitative column"`
	Discrete    DiscreteCmd    `cmd:"" help:"Study a discrete quantitative column"`
	Categorical CategoricalCmd `cmd:"" help:"Study a categorical column"`
}

// OutliersGroup contains the whole-frame outlier operations.
type OutliersGroup struct {
	Count OutliersCountCmd `cmd:"" help:"Count Tukey-fence outliers per numeric column"`
	Plot  OutliersPlotCmd  `cmd:"" help:"Plot per-column outlier counts as stacked panels"`
}

// dataFlags selects and loads the input dataset, shared by every command.
type dataFlags struct {
	Data  string `required:"" help:"Input file, CSV or SQLite by extension" type:"existingfile"`
	Table string `help:"SQLite table to load (SELECT *)"`
	Query string `help:"SQL query to load instead of a whole table"`
}

func (d *dataFlags) load() (*dataset.Frame, error) {
	ext := strings.ToLower(filepath.Ext(d.Data))
	isSQLite := d.Query != "" || d.Table != "" ||
		ext == ".db" || ext == ".sqlite" || ext == ".sqlite3"

	if !isSQLite {
		return dataset.OpenCSV(d.Data)
	}

	query := d.Query
	if query == "" {
		if d.Table == "" {
			return nil, errors.NewValidationError("table", "a SQLite input needs --table or --query", d.Data)
		}
		query = "SELECT * FROM " + quoteIdent(d.Table)
	}
	return dataset.ReadSQLite(d.Data, query)
}

// quoteIdent quotes a table name the SQLite way.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// studyFlags are the tunables shared by the study commands. Zero values mean
// "use the configured default".
type studyFlags struct {
	dataFlags
	Col    string `required:"" help:"Column to study"`
	Target string `help:"Categorical target column to group by"`
	Out    string `help:"Output directory for plots and artifacts"`

	Bins            int     `help:"Histogram bin count"`
	FenceMultiplier float64 `name:"fence-multiplier" help:"IQR multiplier for the outlier fences"`
	Alpha           float64 `help:"Significance level of the normality test"`
	NoSkew          bool    `name:"no-skew" help:"Skip the skewness interpretation"`
	NoNormality     bool    `name:"no-normality" help:"Skip the Shapiro-Wilk test"`
}

// app carries the resolved configuration into the commands.
type app struct {
	cfg config.Config
}

// options merges the study flags over the configured defaults; flags win.
func (s *studyFlags) options(a *app) []eda.Option {
	opts := []eda.Option{
		eda.WithBins(pickInt(s.Bins, a.cfg.Bins)),
		eda.WithFenceMultiplier(pickFloat(s.FenceMultiplier, a.cfg.FenceMultiplier)),
		eda.WithAlpha(pickFloat(s.Alpha, a.cfg.Alpha)),
	}
	if out := s.outDir(a); out != "" {
		opts = append(opts, eda.WithPlotDir(out))
	}
	if s.Target != "" {
		opts = append(opts, eda.WithTarget(s.Target))
	}
	if s.NoSkew {
		opts = append(opts, eda.WithoutSkewTest())
	}
	if s.NoNormality {
		opts = append(opts, eda.WithoutGaussianTest())
	}
	return opts
}

func (s *studyFlags) outDir(a *app) string {
	if s.Out != "" {
		return s.Out
	}
	return a.cfg.OutDir
}

func pickInt(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

func pickFloat(flag, configured float64) float64 {
	if flag > 0 {
		return flag
	}
	return configured
}

// ContinuousCmd studies a continuous quantitative column.
type ContinuousCmd struct {
	studyFlags
}

func (c *ContinuousCmd) Run(a *app) error {
	f, err := c.load()
	if err != nil {
		return err
	}
	rep, err := eda.StudyContinuous(f, c.Col, c.options(a)...)
	if err != nil {
		return err
	}
	if err := report.New(nil, c.outDir(a)).WriteContinuous(rep); err != nil {
		return err
	}

	fmt.Printf("%s: mean=%.4f median=%.4f stddev=%.4f\n", rep.Column, rep.Mean, rep.Median, rep.StdDev)
	fmt.Printf("quartiles: q1=%.4f q3=%.4f iqr=%.4f fences=[%.4f, %.4f]\n",
		rep.Quartiles.Q1, rep.Quartiles.Q3, rep.IQR, rep.Fences.Lower, rep.Fences.Upper)
	if rep.Skewness != nil {
		fmt.Printf("skewness: %.4f (%s)\n", rep.Skewness.Skewness, rep.Skewness.Class)
	}
	if rep.Normality != nil {
		fmt.Printf("shapiro-wilk: W=%.4f p=%.4f -> %s\n", rep.Normality.W, rep.Normality.PValue, rep.Normality.Verdict)
	}
	fmt.Printf("outliers: %d of %d rows (%s)\n", rep.OutlierCount, rep.Rows, report.FormatPercent(rep.OutlierPercent))
	return nil
}

// DiscreteCmd studies a discrete quantitative column.
type DiscreteCmd struct {
	studyFlags
}

func (c *DiscreteCmd) Run(a *app) error {
	f, err := c.load()
	if err != nil {
		return err
	}
	rep, err := eda.StudyDiscrete(f, c.Col, c.options(a)...)
	if err != nil {
		return err
	}
	if err := report.New(nil, c.outDir(a)).WriteDiscrete(rep); err != nil {
		return err
	}

	fmt.Printf("%s: mean=%.4f median=%.4f stddev=%.4f mode=%g\n",
		rep.Column, rep.Mean, rep.Median, rep.StdDev, rep.Mode)
	labels := rep.ValueLabels()
	for i, label := range labels {
		fmt.Printf("  %s: %d\n", label, rep.Counts[i])
	}
	return nil
}

// CategoricalCmd studies a categorical column.
type CategoricalCmd struct {
	studyFlags
}

func (c *CategoricalCmd) Run(a *app) error {
	f, err := c.load()
	if err != nil {
		return err
	}
	rep, err := eda.StudyCategorical(f, c.Col, c.options(a)...)
	if err != nil {
		return err
	}
	if err := report.New(nil, c.outDir(a)).WriteCategorical(rep); err != nil {
		return err
	}

	fmt.Printf("%s: %d distinct labels, mode=%s\n", rep.Column, rep.UniqueCount, rep.Mode)
	for _, share := range rep.Shares {
		fmt.Printf("  %s: %d (%s)\n", share.Label, share.Count, report.FormatPercent(share.Percent))
	}
	return nil
}

// OutliersCountCmd counts outliers per numeric column.
type OutliersCountCmd struct {
	dataFlags
	FenceMultiplier float64 `name:"fence-multiplier" help:"IQR multiplier for the outlier fences"`
}

func (c *OutliersCountCmd) Run(a *app) error {
	f, err := c.load()
	if err != nil {
		return err
	}
	k := pickFloat(c.FenceMultiplier, a.cfg.FenceMultiplier)
	summary, err := eda.CountOutliersPerColumn(f, eda.WithFenceMultiplier(k))
	if err != nil {
		return err
	}
	if err := report.New(nil, "").WriteOutlierSummary(summary); err != nil {
		return err
	}

	fmt.Printf("%d rows\n", summary.Rows)
	for _, col := range summary.Columns {
		fmt.Printf("  %s: %d high (%s), %d low (%s)\n",
			col.Column,
			col.High, report.FormatPercent(col.HighPercent),
			col.Low, report.FormatPercent(col.LowPercent))
	}
	return nil
}

// OutliersPlotCmd renders the per-column outlier panels.
type OutliersPlotCmd struct {
	dataFlags
	Out             string  `help:"Output PNG path" default:"outliers.png"`
	Percent         bool    `help:"Plot shares of the dataset instead of counts"`
	FenceMultiplier float64 `name:"fence-multiplier" help:"IQR multiplier for the outlier fences"`
}

func (c *OutliersPlotCmd) Run(a *app) error {
	f, err := c.load()
	if err != nil {
		return err
	}
	k := pickFloat(c.FenceMultiplier, a.cfg.FenceMultiplier)
	if err := eda.PlotOutliersPerColumn(f, c.Out, c.Percent, eda.WithFenceMultiplier(k)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", c.Out)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(_ *app) error {
	fmt.Printf("josemltools %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("josemltools"),
		kong.Description("Exploratory data analysis for CSV and SQLite datasets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	cfg := config.Default()
	if CLI.Config != "" {
		var err error
		if cfg, err = config.Load(CLI.Config); err != nil {
			ctx.FatalIfErrorf(err)
		}
	}
	if CLI.LogLevel != "" {
		cfg.LogLevel = CLI.LogLevel
		if err := cfg.Validate(); err != nil {
			ctx.FatalIfErrorf(err)
		}
	}

	log.Setup(cfg.Level(), os.Stderr)
	if err := plot.SetFigureSize(cfg.Plot.WidthCm, cfg.Plot.HeightCm); err != nil {
		ctx.FatalIfErrorf(err)
	}

	err := ctx.Run(&app{cfg: cfg})
	ctx.FatalIfErrorf(err)
}
