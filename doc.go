// Package josemltools is a collection of machine-learning coursework
// utilities for Go, centered on exploratory data analysis.
//
// The library loads tabular datasets from CSV files or SQLite databases into
// a typed Frame and studies their columns the way an analyst would in a
// notebook: descriptive statistics, value distributions, Tukey-fence outlier
// detection, skewness interpretation and Shapiro-Wilk normality testing,
// with the matching figures rendered to PNG files.
//
// # Packages
//
//   - dataset: Frame/Series data model with CSV and SQLite loaders
//   - stats: descriptive statistics, quantiles, outlier fences, skewness,
//     Shapiro-Wilk
//   - eda: column studies (continuous, discrete, categorical) and the
//     per-column outlier summary
//   - plot: PNG figure rendering on gonum.org/v1/plot
//   - report: structured-log and file rendering of study results
//   - config: YAML study defaults for the CLI
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/Josemvg/josemltools/dataset"
//	    "github.com/Josemvg/josemltools/eda"
//	)
//
//	func main() {
//	    f, err := dataset.OpenCSV("titanic.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    rep, err := eda.StudyContinuous(f, "fare", eda.WithPlotDir("figures"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("outliers: %d (%.2f%%)\n", rep.OutlierCount, rep.OutlierPercent)
//	}
//
// The josemltools command in cmd/josemltools exposes the same studies on the
// command line.
//
// Classification, regression, forecasting and unsupervised-learning modules
// are planned but not yet implemented; see the README for the roadmap.
package josemltools
