package refine

import "testing"

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	engine, err := New(opts, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine
}

func TestIsBoundary(t *testing.T) {
	engine := newTestEngine(t, Options{})

	cases := []struct {
		text string
		want bool
	}{
		{"Hello world.", true},
		{"Is that so?", true},
		{"Watch out!", true},
		{"I wonder…", true},
		{"wait,", true},
		{"first;", true},
		{"like this:", true},
		{"Hello world", false},
		{"", false},
		{"   ", false},
		// Soft-boundary words count even without punctuation.
		{"rock and", true},
		{"I know that", true},
		{"slow but", true},
		{"He joined the BAND", false},
		// Trailing whitespace is ignored.
		{"Done.  ", true},
		// Only trailing punctuation strips; the leading quote keeps the
		// word out of the soft-boundary set.
		{"he said \"that\"", false},
		{"he said that\"", true},
	}
	for _, tc := range cases {
		if got := engine.isBoundary(tc.text); got != tc.want {
			t.Errorf("isBoundary(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsInterjection(t *testing.T) {
	engine := newTestEngine(t, Options{})

	cases := []struct {
		text string
		want bool
	}{
		{"Whoa!", true},
		{"wow", true},
		{"WHAT?!", true},
		{"Oh...", true},
		{"Hey,", true},
		{"Ah", true},
		{"Hello", false},
		// Strips to "wowwow", which is not whitelisted.
		{"wow wow", false},
		{"", false},
		{"123!", false},
	}
	for _, tc := range cases {
		if got := engine.isInterjection(tc.text); got != tc.want {
			t.Errorf("isInterjection(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestCustomBoundarySets(t *testing.T) {
	engine := newTestEngine(t, Options{
		BoundaryChars:     "|",
		ClauseChars:       "/",
		SoftBoundaryWords: []string{"või"},
		Interjections:     []string{"oi"},
	})

	if !engine.isBoundary("end|") {
		t.Error("custom boundary char not honored")
	}
	if !engine.isBoundary("half/") {
		t.Error("custom clause char not honored")
	}
	if engine.isBoundary("done.") {
		t.Error("default boundary chars should be replaced, not extended")
	}
	if !engine.isBoundary("see või") {
		t.Error("custom soft word not honored")
	}
	if !engine.isInterjection("Oi!") {
		t.Error("custom interjection not honored")
	}
}
