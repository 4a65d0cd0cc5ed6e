package config

import "strings"

func (c *Config) normalize() {
	c.normalizeRefine()
	c.normalizeOutput()
	c.normalizeLogging()
}

// normalizeRefine fills unset threshold values with repository defaults.
// Falling back is silent: an absent key means "use the default", never an
// error.
func (c *Config) normalizeRefine() {
	r := &c.Refine
	if r.MaxCPS == 0 {
		r.MaxCPS = defaultMaxCPS
	}
	if r.MinDurationSeconds == 0 {
		r.MinDurationSeconds = defaultMinDurationSeconds
	}
	if r.GapFrames == 0 {
		r.GapFrames = defaultGapFrames
	}
	if r.FrameRate == 0 {
		r.FrameRate = defaultFrameRate
	}
	if r.MaxLineChars == 0 {
		r.MaxLineChars = defaultMaxLineChars
	}
	if r.MaxLines == 0 {
		r.MaxLines = defaultMaxLines
	}
	if r.MaxBlockChars == 0 {
		r.MaxBlockChars = 2 * r.MaxLineChars
	}
	if r.MaxMergedSeconds == 0 {
		r.MaxMergedSeconds = defaultMaxMergedSeconds
	}
	r.BoundaryChars = strings.TrimSpace(r.BoundaryChars)
	if r.BoundaryChars == "" {
		r.BoundaryChars = defaultBoundaryChars
	}
	r.ClauseChars = strings.TrimSpace(r.ClauseChars)
	if r.ClauseChars == "" {
		r.ClauseChars = defaultClauseChars
	}
	if r.SoftBoundaryWords == nil {
		r.SoftBoundaryWords = Default().Refine.SoftBoundaryWords
	}
	if r.Interjections == nil {
		r.Interjections = Default().Refine.Interjections
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
	if c.Output.Suffix == "" {
		c.Output.Suffix = defaultOutputSuffix
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
