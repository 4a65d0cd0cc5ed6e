package refine

import (
	"errors"
	"fmt"
)

// Defaults applied by Options.normalize for unset fields.
const (
	defaultMaxCPS            = 17.0
	defaultMinDuration       = 1.0
	defaultGapFrames         = 2
	defaultFrameRate         = 25.0
	defaultMaxLineChars      = 42
	defaultMaxLines          = 2
	defaultMaxMergedDuration = 6.0
	defaultBoundaryChars     = ".?!…"
	defaultClauseChars       = ",;:"
)

func defaultSoftBoundaryWords() []string { return []string{"and", "but", "that"} }

func defaultInterjections() []string {
	return []string{"whoa", "wow", "what", "oh", "hey", "ah"}
}

// Options holds every threshold the engine enforces. The zero value of any
// field means "use the documented default"; explicit nonsense (negative
// rates, unsupported line counts) is rejected by Validate.
type Options struct {
	// MaxCPS is the reading-speed ceiling in characters per second.
	MaxCPS float64
	// MinDuration is the minimum cue display time in seconds.
	MinDuration float64
	// GapFrames and FrameRate derive the minimum silent interval between
	// adjacent cues: GapFrames / FrameRate seconds.
	GapFrames int
	FrameRate float64
	// MaxLineChars bounds each display line; MaxLines bounds lines per cue.
	MaxLineChars int
	MaxLines     int
	// MaxBlockChars is the character budget for a merged cue. Zero means
	// twice MaxLineChars.
	MaxBlockChars int
	// MaxMergedDuration caps the display time of a merged cue in seconds.
	MaxMergedDuration float64
	// BoundaryChars end sentences; ClauseChars end clauses. A cue ending in
	// either is a safe merge target.
	BoundaryChars string
	ClauseChars   string
	// SoftBoundaryWords are conjunctions treated as acceptable cue endings
	// and preferred line-split points.
	SoftBoundaryWords []string
	// Interjections are short exclamations exempt from minimum-duration
	// merging.
	Interjections []string
}

// DefaultOptions returns the documented default thresholds: 17 CPS, 1s
// minimum duration, 2 frames at 25 fps gap, 42-character lines, 2 lines per
// cue, 6s merged-cue ceiling.
func DefaultOptions() Options {
	opts := Options{}
	opts.normalize()
	return opts
}

// MinGap returns the minimum silent interval between adjacent cues in seconds.
func (o Options) MinGap() float64 {
	if o.FrameRate <= 0 {
		return 0
	}
	return float64(o.GapFrames) / o.FrameRate
}

// normalize fills unset fields with defaults. Unset values are not an error.
func (o *Options) normalize() {
	if o.MaxCPS == 0 {
		o.MaxCPS = defaultMaxCPS
	}
	if o.MinDuration == 0 {
		o.MinDuration = defaultMinDuration
	}
	if o.GapFrames == 0 {
		o.GapFrames = defaultGapFrames
	}
	if o.FrameRate == 0 {
		o.FrameRate = defaultFrameRate
	}
	if o.MaxLineChars == 0 {
		o.MaxLineChars = defaultMaxLineChars
	}
	if o.MaxLines == 0 {
		o.MaxLines = defaultMaxLines
	}
	if o.MaxBlockChars == 0 {
		o.MaxBlockChars = 2 * o.MaxLineChars
	}
	if o.MaxMergedDuration == 0 {
		o.MaxMergedDuration = defaultMaxMergedDuration
	}
	if o.BoundaryChars == "" {
		o.BoundaryChars = defaultBoundaryChars
	}
	if o.ClauseChars == "" {
		o.ClauseChars = defaultClauseChars
	}
	if o.SoftBoundaryWords == nil {
		o.SoftBoundaryWords = defaultSoftBoundaryWords()
	}
	if o.Interjections == nil {
		o.Interjections = defaultInterjections()
	}
}

// Validate rejects threshold combinations the engine cannot honor.
func (o Options) Validate() error {
	if o.MaxCPS <= 0 {
		return errors.New("max cps must be positive")
	}
	if o.MinDuration < 0 {
		return errors.New("min duration must not be negative")
	}
	if o.GapFrames < 0 {
		return errors.New("gap frames must not be negative")
	}
	if o.FrameRate <= 0 {
		return errors.New("frame rate must be positive")
	}
	if o.MaxLineChars <= 0 {
		return errors.New("max line chars must be positive")
	}
	// The rebalance step only ever produces two lines; larger limits would
	// silently behave like 2, so they are rejected instead.
	if o.MaxLines < 1 || o.MaxLines > 2 {
		return fmt.Errorf("max lines must be 1 or 2, got %d", o.MaxLines)
	}
	if o.MaxBlockChars <= 0 {
		return errors.New("max block chars must be positive")
	}
	if o.MaxMergedDuration <= 0 {
		return errors.New("max merged duration must be positive")
	}
	return nil
}
