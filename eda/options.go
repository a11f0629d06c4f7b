package eda

import "github.com/Josemvg/josemltools/stats"

// studyConfig holds the knobs shared by the column studies.
type studyConfig struct {
	fenceK       float64
	bins         int
	alpha        float64
	skewTest     bool
	gaussianTest bool
	target       string
	plotDir      string
}

func defaultConfig() studyConfig {
	return studyConfig{
		fenceK:       stats.DefaultFenceMultiplier,
		bins:         20,
		alpha:        0.05,
		skewTest:     true,
		gaussianTest: true,
	}
}

// Option is a function that configures a column study
type Option func(*studyConfig)

// WithFenceMultiplier sets the IQR multiplier for the outlier fences
func WithFenceMultiplier(k float64) Option {
	return func(c *studyConfig) {
		c.fenceK = k
	}
}

// WithBins sets the number of histogram bins
func WithBins(n int) Option {
	return func(c *studyConfig) {
		c.bins = n
	}
}

// WithAlpha sets the significance level for the normality verdict
func WithAlpha(alpha float64) Option {
	return func(c *studyConfig) {
		c.alpha = alpha
	}
}

// WithoutSkewTest skips the skewness study
func WithoutSkewTest() Option {
	return func(c *studyConfig) {
		c.skewTest = false
	}
}

// WithoutGaussianTest skips the QQ plot and the Shapiro-Wilk test
func WithoutGaussianTest() Option {
	return func(c *studyConfig) {
		c.gaussianTest = false
	}
}

// WithTarget groups the study by the given target column
func WithTarget(name string) Option {
	return func(c *studyConfig) {
		c.target = name
	}
}

// WithPlotDir writes the study's figures as PNG files into the directory
func WithPlotDir(dir string) Option {
	return func(c *studyConfig) {
		c.plotDir = dir
	}
}
