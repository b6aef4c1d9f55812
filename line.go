package typeset

import (
	"slices"

	"github.com/gogpu/typeset/bidi"
)

// Line is a horizontal strip of glyph runs in visual order. Extents
// are relative to the pen position at the line origin.
type Line struct {
	runs           []*GlyphRun
	charStart      int
	charEnd        int
	paragraphLevel uint8
	originX        float64
	originY        float64
	ascent         float64
	descent        float64
	width          float64
}

func newLine(runs []*GlyphRun, charStart, charEnd int, paragraphLevel uint8) *Line {
	l := &Line{
		runs:           runs,
		charStart:      charStart,
		charEnd:        charEnd,
		paragraphLevel: paragraphLevel,
	}
	for _, r := range runs {
		l.ascent = max(l.ascent, r.Ascent())
		l.descent = max(l.descent, r.Descent())
		l.width += r.Width()
	}
	return l
}

// Runs returns the line's glyph runs in visual order. The returned
// slice must not be modified.
func (l *Line) Runs() []*GlyphRun { return l.runs }

// CharStart returns the index of the line's first character.
func (l *Line) CharStart() int { return l.charStart }

// CharEnd returns the index after the line's last character.
func (l *Line) CharEnd() int { return l.charEnd }

// ParagraphLevel returns the base level of the line's paragraph.
func (l *Line) ParagraphLevel() uint8 { return l.paragraphLevel }

// Ascent returns the distance from the baseline to the line's top.
func (l *Line) Ascent() float64 { return l.ascent }

// Descent returns the distance from the baseline to the line's bottom.
func (l *Line) Descent() float64 { return l.descent }

// Height returns the line's total vertical extent.
func (l *Line) Height() float64 { return l.ascent + l.descent }

// Width returns the line's total advance.
func (l *Line) Width() float64 { return l.width }

// Origin returns the line's pen origin as placed by a frame.
func (l *Line) Origin() Point { return Point{X: l.originX, Y: l.originY} }

// SetOrigin places the line's pen origin.
func (l *Line) SetOrigin(x, y float64) {
	l.originX = x
	l.originY = y
}

// FlushPenOffset returns the horizontal pen offset that aligns the
// line within flushExtent: 0 for a flush factor of 0, centered at 0.5,
// flush right at 1. Lines wider than the extent stay at offset 0.
func (l *Line) FlushPenOffset(flushFactor, flushExtent float64) float64 {
	offset := (flushExtent - l.width) * flushFactor
	if offset < 0 {
		return 0
	}
	return offset
}

// SimpleLine assembles a line over [charStart, charEnd) with its runs
// in visual order. The range may span paragraph boundaries.
func (t *Typesetter) SimpleLine(charStart, charEnd int) (*Line, error) {
	if err := t.checkRange(charStart, charEnd); err != nil {
		return nil, err
	}
	return t.simpleLine(charStart, charEnd)
}

func (t *Typesetter) simpleLine(charStart, charEnd int) (*Line, error) {
	var runs []*GlyphRun
	err := t.eachVisualRun(charStart, charEnd, func(r bidi.Run) {
		runs = t.appendVisualRuns(runs, r.Start, r.End)
	})
	if err != nil {
		return nil, err
	}
	return newLine(runs, charStart, charEnd, t.paragraphLevel(charStart)), nil
}

// eachVisualRun visits the visual bidi runs covering [charStart,
// charEnd), paragraph by paragraph. Within each paragraph the runs are
// in visual order.
func (t *Typesetter) eachVisualRun(charStart, charEnd int, visit func(r bidi.Run)) error {
	pi := t.paragraphIndex(charStart)
	for {
		p := t.paragraphs[pi]
		lineStart := max(p.Start(), charStart)
		lineEnd := min(p.End(), charEnd)

		visual, err := p.VisualRuns(lineStart, lineEnd)
		if err != nil {
			return err
		}
		for _, r := range visual {
			visit(r)
		}

		if lineEnd == charEnd {
			return nil
		}
		pi++
	}
}

// appendVisualRuns adds the glyph run views covering one visual bidi
// run [visualStart, visualEnd) to list. A visual run may cross several
// intrinsic runs; pieces of an unbroken right-to-left stretch are
// inserted in front of each other so their visual order reverses the
// logical one, while left-to-right pieces append in logical order.
func (t *Typesetter) appendVisualRuns(list []*GlyphRun, visualStart, visualEnd int) []*GlyphRun {
	if visualStart >= visualEnd {
		return list
	}

	insertIndex := len(list)
	var previous *IntrinsicRun

	for visualStart < visualEnd {
		run := t.runs[t.runIndex(visualStart)]
		pieceStart := max(run.charStart, visualStart)
		pieceEnd := min(run.charEnd, visualEnd)
		piece := newGlyphRun(run, pieceStart, pieceEnd)

		if previous != nil && (run.bidiLevel != previous.bidiLevel || run.bidiLevel&1 == 0) {
			insertIndex = len(list)
		}
		list = slices.Insert(list, insertIndex, piece)

		previous = run
		visualStart = pieceEnd
	}
	return list
}
