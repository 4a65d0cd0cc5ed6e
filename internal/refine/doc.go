// Package refine turns raw transcript cues into broadcast-readable subtitle
// cues.
//
// The engine runs three passes in a fixed order over one in-memory cue
// sequence: a merge pass that absorbs cues violating duration, reading-speed,
// or gap thresholds into their neighbor when a sentence boundary allows it; a
// gap pass that shifts cues forward until every adjacent pair keeps the
// minimum silent interval; and a wrap pass that reflows each cue's text into
// a bounded number of bounded-length lines. Word content and order are never
// changed, only whitespace and line breaks.
//
// The merge and gap passes are single forward sweeps with no backtracking or
// re-optimization: a cue that still violates a threshold after its one merge
// opportunity passes through unchanged, and gap shifts accumulate forward
// without any bound on total drift. Readability thresholds are best-effort
// postconditions, not hard guarantees.
package refine
