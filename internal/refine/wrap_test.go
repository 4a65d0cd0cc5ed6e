package refine

import (
	"strings"
	"testing"

	"subrefine/internal/srt"
)

func TestWrapShortTextSingleLine(t *testing.T) {
	engine := newTestEngine(t, Options{})

	if got := engine.wrapText("Hello there."); got != "Hello there." {
		t.Errorf("wrapText = %q", got)
	}
}

func TestWrapCollapsesEmbeddedNewlines(t *testing.T) {
	engine := newTestEngine(t, Options{})

	if got := engine.wrapText("Quick \nword here."); got != "Quick word here." {
		t.Errorf("wrapText = %q, want %q", got, "Quick word here.")
	}
}

func TestWrapGreedyTwoLines(t *testing.T) {
	engine := newTestEngine(t, Options{MaxLineChars: 20})

	got := engine.wrapText("the cat sat on the mat today")
	want := "the cat sat on the\nmat today"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestRebalanceAtClauseCharacter(t *testing.T) {
	engine := newTestEngine(t, Options{MaxLineChars: 20})
	// Greedy wrapping yields three lines; the comma before the midpoint
	// wins the rebalance.
	got := engine.wrapText("Hello there my friend, we should go home now")
	want := "Hello there my friend,\nwe should go home now"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Errorf("expected exactly 2 lines, got %d", len(lines))
	}
}

func TestRebalanceAtSoftBoundaryWord(t *testing.T) {
	engine := newTestEngine(t, Options{MaxLineChars: 15})
	// No punctuation before the midpoint; "and" starts the second line.
	got := engine.wrapText("the cat ran far and the dog slept well")
	want := "the cat ran far\nand the dog slept well"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestRebalanceAtWhitespaceBeforeMid(t *testing.T) {
	engine := newTestEngine(t, Options{MaxLineChars: 10})

	got := engine.wrapText("alpha bravo charlie delta")
	want := "alpha bravo\ncharlie delta"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestRebalanceAtFirstWhitespaceAfterMid(t *testing.T) {
	engine := newTestEngine(t, Options{MaxLineChars: 10})
	// The first word spans the midpoint, so the only cut is after it.
	got := engine.wrapText("supercalifragilistic expialidocious yes")
	want := "supercalifragilistic\nexpialidocious yes"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestOverlongWordIsNeverSplit(t *testing.T) {
	engine := newTestEngine(t, Options{MaxLineChars: 10})

	got := engine.wrapText("honorificabilitudinitatibus")
	if got != "honorificabilitudinitatibus" {
		t.Errorf("overlong word must pass through unchanged, got %q", got)
	}
}

func TestWrapEmptyText(t *testing.T) {
	engine := newTestEngine(t, Options{})

	if got := engine.wrapText("   \n  "); got != "" {
		t.Errorf("whitespace-only text should wrap to empty, got %q", got)
	}
}

func TestWrapCuesCountsChanges(t *testing.T) {
	engine := newTestEngine(t, Options{})
	cues := []srt.Cue{
		{Start: 0, End: 1, Text: "Stays."},
		{Start: 2, End: 3, Text: "Gets \njoined."},
	}

	wrapped, rewrapped := engine.wrapCues(cues)

	if rewrapped != 1 {
		t.Errorf("expected 1 rewrapped cue, got %d", rewrapped)
	}
	if wrapped[1].Text != "Gets joined." {
		t.Errorf("cue text = %q", wrapped[1].Text)
	}
}

func TestWrapPreservesWords(t *testing.T) {
	engine := newTestEngine(t, Options{MaxLineChars: 12})
	text := "one two, three and four five. six seven"

	got := engine.wrapText(text)

	if strings.Join(strings.Fields(got), " ") != strings.Join(strings.Fields(text), " ") {
		t.Errorf("word content changed: %q -> %q", text, got)
	}
}
