// Package boundary locates Unicode text boundaries.
//
// It wraps the go-text segmenter and reports, for a rune sequence, the
// maximal segments of a boundary class: line-break segments per UAX #14
// and grapheme clusters per UAX #29. Segments tile the input exactly,
// so segment ends are the forward break candidates and segment starts
// are the backward ones.
package boundary

import (
	"github.com/go-text/typesetting/segmenter"
)

// Class selects the boundary rule set.
type Class uint8

const (
	// Line reports line-break opportunities (UAX #14).
	Line Class = iota
	// Grapheme reports grapheme cluster boundaries (UAX #29).
	Grapheme
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case Line:
		return "Line"
	case Grapheme:
		return "Grapheme"
	default:
		return "Unknown"
	}
}

// Segment is one maximal segment of a boundary class. The segment
// covers text[Start:End) and contains no internal boundary of its
// class. Mandatory reports a required break after End-1 and is only
// meaningful for the Line class.
type Segment struct {
	Start     int
	End       int
	Mandatory bool
}

// Segments returns the segments of the given class covering text in
// ascending order. The segments partition [0, len(text)) exactly.
// Empty text yields nil.
func Segments(text []rune, class Class) []Segment {
	if len(text) == 0 {
		return nil
	}

	var seg segmenter.Segmenter
	seg.Init(text)

	segments := make([]Segment, 0, 8)

	switch class {
	case Grapheme:
		iter := seg.GraphemeIterator()
		for iter.Next() {
			g := iter.Grapheme()
			segments = append(segments, Segment{
				Start: g.Offset,
				End:   g.Offset + len(g.Text),
			})
		}
	default:
		iter := seg.LineIterator()
		for iter.Next() {
			l := iter.Line()
			segments = append(segments, Segment{
				Start:     l.Offset,
				End:       l.Offset + len(l.Text),
				Mandatory: l.IsMandatoryBreak,
			})
		}
	}

	return segments
}
