package refine

import "subrefine/internal/srt"

// enforceGaps shifts cues forward until every adjacent pair keeps the
// minimum silent interval. The sweep compares each cue against the
// already-shifted predecessor, so shifts cascade through a packed run in one
// ordered pass. Shifted cues keep their duration. Cumulative drift is
// unbounded and the merged-duration ceiling is not rechecked afterwards;
// both are accepted limitations of the forward-only design.
func (e *Engine) enforceGaps(cues []srt.Cue) ([]srt.Cue, int, float64) {
	shifted := 0
	var drift float64
	for i := 1; i < len(cues); i++ {
		earliest := cues[i-1].End + e.minGap
		if cues[i].Start >= earliest {
			continue
		}
		delta := earliest - cues[i].Start
		cues[i].Start += delta
		cues[i].End += delta
		shifted++
		drift += delta
	}
	return cues, shifted, drift
}
