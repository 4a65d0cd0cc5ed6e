package refine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isBoundary reports whether text ends at a safe point to close a cue: the
// last non-whitespace rune is a sentence or clause character, or the last
// word (trailing punctuation stripped, lowercased) is a soft-boundary word.
func (e *Engine) isBoundary(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	if e.boundaryRunes[last] {
		return true
	}
	fields := strings.Fields(trimmed)
	word := strings.TrimRightFunc(fields[len(fields)-1], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return e.softWords[strings.ToLower(word)]
}

// isInterjection reports whether text, stripped of everything but letters
// and lowercased, matches a whitelisted interjection.
func (e *Engine) isInterjection(text string) bool {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return e.interjections[b.String()]
}
