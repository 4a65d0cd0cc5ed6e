package config

const (
	defaultMaxCPS             = 17.0
	defaultMinDurationSeconds = 1.0
	defaultGapFrames          = 2
	defaultFrameRate          = 25.0
	defaultMaxLineChars       = 42
	defaultMaxLines           = 2
	defaultMaxMergedSeconds   = 6.0
	defaultBoundaryChars      = ".?!…"
	defaultClauseChars        = ",;:"
	defaultOutputSuffix       = ".refined"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
// MaxBlockChars is left zero so normalize can derive it from the settled
// line length.
func Default() Config {
	return Config{
		Refine: Refine{
			MaxCPS:             defaultMaxCPS,
			MinDurationSeconds: defaultMinDurationSeconds,
			GapFrames:          defaultGapFrames,
			FrameRate:          defaultFrameRate,
			MaxLineChars:       defaultMaxLineChars,
			MaxLines:           defaultMaxLines,
			MaxMergedSeconds:   defaultMaxMergedSeconds,
			BoundaryChars:      defaultBoundaryChars,
			ClauseChars:        defaultClauseChars,
			SoftBoundaryWords:  []string{"and", "but", "that"},
			Interjections:      []string{"whoa", "wow", "what", "oh", "hey", "ah"},
		},
		Output: Output{
			Suffix: defaultOutputSuffix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
