package refine

import (
	"strings"
	"unicode/utf8"

	"subrefine/internal/srt"
)

// wrapCues reflows every cue's text into at most MaxLines lines of at most
// MaxLineChars characters. Only whitespace and line breaks change.
func (e *Engine) wrapCues(cues []srt.Cue) ([]srt.Cue, int) {
	rewrapped := 0
	for i := range cues {
		wrapped := e.wrapText(cues[i].Text)
		if wrapped != cues[i].Text {
			rewrapped++
		}
		cues[i].Text = wrapped
	}
	return cues, rewrapped
}

// wrapText collapses embedded newlines to spaces, greedily fills lines, and
// rebalances into exactly two lines when the greedy result exceeds the line
// limit. A single word longer than MaxLineChars is never split and may
// exceed the limit.
func (e *Engine) wrapText(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	lines := greedyWrap(words, e.opts.MaxLineChars)
	if len(lines) > e.opts.MaxLines {
		lines = e.rebalance(strings.Join(words, " "))
	}
	return strings.Join(lines, "\n")
}

func greedyWrap(words []string, maxChars int) []string {
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if utf8.RuneCountInString(candidate) <= maxChars {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

// rebalance splits a single-line text into two halves near its midpoint,
// preferring punctuation, then soft-boundary words, then plain whitespace.
// It only ever produces two lines, which is why line limits above 2 are not
// supported.
func (e *Engine) rebalance(joined string) []string {
	runes := []rune(joined)
	mid := len(runes) / 2
	idx := e.splitIndex(runes, mid)
	if idx <= 0 || idx >= len(runes) {
		return []string{joined}
	}
	first := strings.TrimSpace(string(runes[:idx]))
	second := strings.TrimSpace(string(runes[idx:]))
	if first == "" {
		return []string{second}
	}
	if second == "" {
		return []string{first}
	}
	return []string{first, second}
}

// splitIndex chooses where to cut runes for the two-way rebalance, in order
// of preference: after the rightmost boundary-or-clause rune strictly before
// mid; before the rightmost interior soft-boundary word starting strictly
// before mid; at the rightmost whitespace strictly before mid; at the first
// whitespace at or after mid. Returns -1 when no cut point exists.
func (e *Engine) splitIndex(runes []rune, mid int) int {
	for i := mid - 1; i > 0; i-- {
		if e.boundaryRunes[runes[i]] {
			return i + 1
		}
	}

	if idx := e.softWordSplit(runes, mid); idx > 0 {
		return idx
	}

	for i := mid - 1; i > 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	for i := mid; i < len(runes); i++ {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// softWordSplit finds the rightmost space-delimited soft-boundary word that
// starts strictly before mid and is neither the first nor the last word, and
// returns its start index so the word opens the second line.
func (e *Engine) softWordSplit(runes []rune, mid int) int {
	best := -1
	start := -1
	for i := 0; i <= len(runes); i++ {
		atSpace := i == len(runes) || runes[i] == ' '
		if !atSpace {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			word := strings.ToLower(string(runes[start:i]))
			interior := start > 0 && i < len(runes)
			if interior && start < mid && e.softWords[word] && start > best {
				best = start
			}
			start = -1
		}
	}
	return best
}
