package refine

import (
	"strings"

	"subrefine/internal/srt"
)

// Stats summarizes how a cue sequence measures up against the engine's
// thresholds. Violations are counted the way the passes would act on them:
// interjections are not counted as too short.
type Stats struct {
	Cues                int
	DurationViolations  int
	CPSViolations       int
	GapViolations       int
	LineCountViolations int
	OverlongLines       int
}

// Survey reports threshold violations in cues without modifying them.
func (e *Engine) Survey(cues []srt.Cue) Stats {
	stats := Stats{Cues: len(cues)}
	for i, cue := range cues {
		if cue.Duration() < e.opts.MinDuration && !e.isInterjection(cue.Text) {
			stats.DurationViolations++
		}
		if e.cps(cue) > e.opts.MaxCPS {
			stats.CPSViolations++
		}
		if i > 0 && cue.Start-cues[i-1].End < e.minGap {
			stats.GapViolations++
		}
		lines := strings.Split(cue.Text, "\n")
		if len(lines) > e.opts.MaxLines {
			stats.LineCountViolations++
		}
		for _, line := range lines {
			if charCount(line) > e.opts.MaxLineChars {
				stats.OverlongLines++
			}
		}
	}
	return stats
}
