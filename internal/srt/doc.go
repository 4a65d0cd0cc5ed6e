// Package srt models subtitle cues and round-trips them through the SRT
// text format.
//
// Parsing is strict: a malformed timestamp or structurally incomplete block
// aborts the whole document with a FormatError rather than skipping the
// block, because the refinement passes downstream need a complete,
// time-ordered cue sequence to reason about gaps and merges.
package srt
