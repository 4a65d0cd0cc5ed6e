package srt

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Cue represents a single subtitle cue with timing and text. Start and End
// are seconds from the beginning of the document. Text holds one or more
// newline-separated display lines.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Duration returns the display duration in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// FormatError describes a malformed SRT block. Block is the 1-based position
// of the offending block within the document.
type FormatError struct {
	Block  int
	Line   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("srt: block %d: %s", e.Block, e.Reason)
	}
	return fmt.Sprintf("srt: block %d: %s: %q", e.Block, e.Reason, e.Line)
}

var blockSeparator = regexp.MustCompile(`\n{2,}`)

// Parse reads an SRT document and returns all cues in document order.
// Empty or whitespace-only input yields an empty sequence. Any malformed
// block aborts the whole parse with a *FormatError.
func Parse(data []byte) ([]Cue, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	blocks := blockSeparator.Split(content, -1)
	cues := make([]Cue, 0, len(blocks))
	for i, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		cue, err := parseBlock(i+1, block)
		if err != nil {
			return nil, err
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func parseBlock(blockNum int, block string) (Cue, error) {
	lines := strings.Split(block, "\n")
	if len(lines) < 3 {
		return Cue{}, &FormatError{Block: blockNum, Line: block, Reason: "incomplete block"}
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil || index < 1 {
		return Cue{}, &FormatError{Block: blockNum, Line: lines[0], Reason: "invalid cue index"}
	}

	parts := strings.Split(lines[1], "-->")
	if len(parts) != 2 {
		return Cue{}, &FormatError{Block: blockNum, Line: lines[1], Reason: "invalid timing line"}
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return Cue{}, &FormatError{Block: blockNum, Line: lines[1], Reason: "invalid start timestamp"}
	}
	end, err := parseTimestamp(parts[1])
	if err != nil {
		return Cue{}, &FormatError{Block: blockNum, Line: lines[1], Reason: "invalid end timestamp"}
	}

	return Cue{
		Index: index,
		Start: start,
		End:   end,
		Text:  strings.Join(lines[2:], "\n"),
	}, nil
}

func parseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// Normalize period to comma (SRT standard uses comma for milliseconds)
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := atoiDigits(hms[0])
	minutes, errM := atoiDigits(hms[1])
	seconds, errS := atoiDigits(hms[2])
	millis, errMS := atoiDigits(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// atoiDigits parses an unsigned decimal field. Unlike strconv.Atoi it
// rejects signs, so components like "-1" cannot yield negative times.
func atoiDigits(value string) (int, error) {
	if value == "" {
		return 0, fmt.Errorf("empty field")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q in field", r)
		}
	}
	return strconv.Atoi(value)
}

func formatTimestamp(seconds float64) string {
	total := int64(math.Round(seconds * 1000))
	if total < 0 {
		total = 0
	}
	hours := total / 3_600_000
	minutes := (total % 3_600_000) / 60_000
	secs := (total % 60_000) / 1000
	millis := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Serialize renders cues as an SRT document. Indices are reassigned
// sequentially from 1 and timestamps rounded to the nearest millisecond.
// The output ends with a trailing newline; an empty sequence serializes to
// empty output.
func Serialize(cues []Cue) []byte {
	if len(cues) == 0 {
		return nil
	}
	var sb strings.Builder
	for i, cue := range cues {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", formatTimestamp(cue.Start), formatTimestamp(cue.End)))
		sb.WriteString(cue.Text)
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

// ParseFile reads and parses an SRT file.
func ParseFile(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	cues, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cues, nil
}

// WriteFile serializes cues and writes them to path.
func WriteFile(path string, cues []Cue) error {
	if err := os.WriteFile(path, Serialize(cues), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}
