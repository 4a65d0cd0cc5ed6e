package refine

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"subrefine/internal/logging"
	"subrefine/internal/srt"
)

// Engine refines one cue sequence per Refine call. It carries no per-document
// state, so a single Engine may serve many documents sequentially; concurrent
// documents should each use their own call (the passes mutate the slice they
// are handed).
type Engine struct {
	opts          Options
	minGap        float64
	boundaryRunes map[rune]bool
	softWords     map[string]bool
	interjections map[string]bool
	logger        *slog.Logger
}

// New builds an Engine from opts. Unset option fields fall back to the
// documented defaults; invalid explicit values are rejected. A nil logger is
// replaced with a no-op logger.
func New(opts Options, logger *slog.Logger) (*Engine, error) {
	opts.normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	boundary := make(map[rune]bool, len(opts.BoundaryChars)+len(opts.ClauseChars))
	for _, r := range opts.BoundaryChars {
		boundary[r] = true
	}
	for _, r := range opts.ClauseChars {
		boundary[r] = true
	}
	soft := make(map[string]bool, len(opts.SoftBoundaryWords))
	for _, w := range opts.SoftBoundaryWords {
		soft[strings.ToLower(strings.TrimSpace(w))] = true
	}
	inter := make(map[string]bool, len(opts.Interjections))
	for _, w := range opts.Interjections {
		inter[strings.ToLower(strings.TrimSpace(w))] = true
	}

	return &Engine{
		opts:          opts,
		minGap:        opts.MinGap(),
		boundaryRunes: boundary,
		softWords:     soft,
		interjections: inter,
		logger:        logging.NewComponentLogger(logger, "refine"),
	}, nil
}

// Options returns the normalized thresholds the engine enforces.
func (e *Engine) Options() Options {
	return e.opts
}

// Refine runs the merge, gap-enforcement, and wrap passes in order and
// returns the refined sequence. The input slice is taken over by the engine
// and must not be reused by the caller. Empty input yields empty output.
func (e *Engine) Refine(cues []srt.Cue) []srt.Cue {
	if len(cues) == 0 {
		return cues
	}

	in := len(cues)
	cues, merges := e.mergeCues(cues)
	cues, shifted, drift := e.enforceGaps(cues)
	cues, rewrapped := e.wrapCues(cues)

	e.logger.LogAttrs(context.Background(), slog.LevelInfo, "cue refinement complete",
		logging.String(logging.FieldEventType, "refine_complete"),
		logging.Int("cues_in", in),
		logging.Int("cues_out", len(cues)),
		logging.Int("merges", merges),
		logging.Int("cues_shifted", shifted),
		logging.Int("cues_rewrapped", rewrapped),
	)
	if drift > 0 {
		// Forward shifts are never compensated; surface the total so long
		// runs of packed cues are visible when debugging sync complaints.
		e.logger.Debug("gap enforcement drift accumulated",
			logging.Float64("total_drift_seconds", drift),
		)
	}
	return cues
}

// singleLine collapses a cue's text to one space-separated line.
func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// charCount measures text length in runes so multibyte punctuation such as
// the ellipsis counts once.
func charCount(text string) int {
	return utf8.RuneCountInString(text)
}
