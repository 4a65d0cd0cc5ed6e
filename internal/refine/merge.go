package refine

import (
	"strings"

	"subrefine/internal/srt"
)

// cpsFloorSeconds guards the reading-speed division against zero-length cues.
const cpsFloorSeconds = 0.001

// mergeCues greedily absorbs cues that violate duration, reading-speed, or
// gap thresholds into their following neighbor. Violations are evaluated on
// the unmerged accumulator; the merge commits only when the combined cue
// stays inside the duration and character budgets and ends at a boundary.
// One forward sweep, no backtracking: a flushed cue is never revisited.
func (e *Engine) mergeCues(cues []srt.Cue) ([]srt.Cue, int) {
	if len(cues) < 2 {
		return cues, 0
	}

	out := make([]srt.Cue, 0, len(cues))
	current := cues[0]
	merges := 0

	for _, next := range cues[1:] {
		if !e.violatesThresholds(current, next) {
			out = append(out, current)
			current = next
			continue
		}

		mergedText := strings.TrimSpace(current.Text) + " \n" + strings.TrimSpace(next.Text)
		mergedDuration := next.End - current.Start
		if mergedDuration <= e.opts.MaxMergedDuration &&
			charCount(singleLine(mergedText)) <= e.opts.MaxBlockChars &&
			e.isBoundary(mergedText) {
			current.End = next.End
			current.Text = mergedText
			merges++
			// Keep growing: the enlarged cue is re-evaluated against the
			// cue after next.
			continue
		}

		// No safe merge available. Sentence integrity outranks strict
		// threshold compliance, so the violating cue passes through as-is.
		out = append(out, current)
		current = next
	}

	return append(out, current), merges
}

// violatesThresholds reports whether current, taken on its own, needs to be
// merged forward: too short (unless it is an interjection), read too fast,
// or followed too closely by next.
func (e *Engine) violatesThresholds(current, next srt.Cue) bool {
	if current.Duration() < e.opts.MinDuration && !e.isInterjection(current.Text) {
		return true
	}
	if e.cps(current) > e.opts.MaxCPS {
		return true
	}
	return next.Start-current.End < e.minGap
}

// cps returns the cue's reading speed as single-line characters per second.
func (e *Engine) cps(cue srt.Cue) float64 {
	duration := cue.Duration()
	if duration < cpsFloorSeconds {
		duration = cpsFloorSeconds
	}
	return float64(charCount(singleLine(cue.Text))) / duration
}
