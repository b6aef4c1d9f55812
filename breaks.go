package typeset

import (
	"unicode"

	"github.com/gogpu/typeset/boundary"
)

// Per-character break flags. Forward flags mark the last character of a
// segment, backward flags mark the first, so a forward scan tests the
// character before a boundary and a backward scan the character after.
const (
	breakLineForward uint8 = 1 << iota
	breakLineBackward
	breakCharForward
	breakCharBackward
	breakParagraphForward
	breakParagraphBackward
)

// resolveBreakRecord classifies every character position of text for
// line and grapheme breaking. Paragraph flags are stamped separately
// once paragraph boundaries are known.
func resolveBreakRecord(text []rune) []uint8 {
	record := make([]uint8, len(text))
	stampSegments(record, boundary.Segments(text, boundary.Line), breakLineForward, breakLineBackward)
	stampSegments(record, boundary.Segments(text, boundary.Grapheme), breakCharForward, breakCharBackward)
	return record
}

func stampSegments(record []uint8, segments []boundary.Segment, forward, backward uint8) {
	for _, s := range segments {
		record[s.End-1] |= forward
		record[s.Start] |= backward
	}
}

// leadingWhitespaceEnd returns the index after the whitespace prefix of
// [start, end).
func leadingWhitespaceEnd(text []rune, start, end int) int {
	for start < end && unicode.IsSpace(text[start]) {
		start++
	}
	return start
}

// trailingWhitespaceStart returns the index of the first character of
// the whitespace suffix of [start, end).
func trailingWhitespaceStart(text []rune, start, end int) int {
	for end > start && unicode.IsSpace(text[end-1]) {
		end--
	}
	return end
}
