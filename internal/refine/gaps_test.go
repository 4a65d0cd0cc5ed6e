package refine

import (
	"math"
	"testing"

	"subrefine/internal/srt"
)

const timeTolerance = 1e-6

func TestEnforceGapsCascades(t *testing.T) {
	engine := newTestEngine(t, Options{})
	cues := []srt.Cue{
		{Index: 1, Start: 0.0, End: 0.4, Text: "One."},
		{Index: 2, Start: 0.45, End: 0.85, Text: "Two."},
		{Index: 3, Start: 0.9, End: 1.3, Text: "Three."},
	}

	shifted, count, drift := engine.enforceGaps(cues)

	if count != 2 {
		t.Fatalf("expected 2 shifted cues, got %d", count)
	}
	// Second cue moves to 0.4+0.08; the third cascades off the shifted
	// second cue's new end, not its original one.
	if math.Abs(shifted[1].Start-0.48) > timeTolerance {
		t.Errorf("second start = %v, want 0.48", shifted[1].Start)
	}
	if math.Abs(shifted[1].End-0.88) > timeTolerance {
		t.Errorf("second end = %v, want 0.88", shifted[1].End)
	}
	if math.Abs(shifted[2].Start-0.96) > timeTolerance {
		t.Errorf("third start = %v, want 0.96", shifted[2].Start)
	}
	if math.Abs(shifted[2].End-1.36) > timeTolerance {
		t.Errorf("third end = %v, want 1.36", shifted[2].End)
	}
	if math.Abs(drift-0.09) > timeTolerance {
		t.Errorf("total drift = %v, want 0.09", drift)
	}
}

func TestEnforceGapsLeavesCompliantCuesAlone(t *testing.T) {
	engine := newTestEngine(t, Options{})
	// Gaps of 0.1s already satisfy the 0.08s minimum.
	cues := []srt.Cue{
		{Index: 1, Start: 0.0, End: 0.4, Text: "One."},
		{Index: 2, Start: 0.5, End: 0.9, Text: "Two."},
		{Index: 3, Start: 1.0, End: 1.4, Text: "Three."},
	}

	shifted, count, drift := engine.enforceGaps(cues)

	if count != 0 || drift != 0 {
		t.Fatalf("expected no shifts, got %d shifts drift %v", count, drift)
	}
	if shifted[1].Start != 0.5 || shifted[2].Start != 1.0 {
		t.Errorf("compliant cues moved: %+v", shifted)
	}
}

func TestEnforceGapsResolvesOverlap(t *testing.T) {
	engine := newTestEngine(t, Options{})
	// Overlap can appear transiently after merging; the sweep resolves it.
	cues := []srt.Cue{
		{Index: 1, Start: 0.0, End: 2.0, Text: "One."},
		{Index: 2, Start: 1.8, End: 3.0, Text: "Two."},
	}

	shifted, count, _ := engine.enforceGaps(cues)

	if count != 1 {
		t.Fatalf("expected 1 shift, got %d", count)
	}
	if math.Abs(shifted[1].Start-2.08) > timeTolerance {
		t.Errorf("start = %v, want 2.08", shifted[1].Start)
	}
	// Duration is preserved by the shift.
	if math.Abs(shifted[1].Duration()-1.2) > timeTolerance {
		t.Errorf("duration = %v, want 1.2", shifted[1].Duration())
	}
}

func TestEnforceGapsInvariant(t *testing.T) {
	engine := newTestEngine(t, Options{})
	cues := []srt.Cue{
		{Start: 0.0, End: 1.0, Text: "a."},
		{Start: 1.01, End: 2.0, Text: "b."},
		{Start: 1.9, End: 2.9, Text: "c."},
		{Start: 2.95, End: 4.0, Text: "d."},
		{Start: 10.0, End: 11.0, Text: "e."},
	}

	shifted, _, _ := engine.enforceGaps(cues)

	minGap := engine.Options().MinGap()
	for i := 1; i < len(shifted); i++ {
		if shifted[i].Start < shifted[i-1].End+minGap-0.001 {
			t.Errorf("pair %d violates min gap: prev end %v, start %v",
				i, shifted[i-1].End, shifted[i].Start)
		}
	}
}
