package typeset

// Frame is a rectangle packed with lines. CharEnd reflects how much of
// the requested range actually fit; it may be less than asked for.
type Frame struct {
	lines     []*Line
	charStart int
	charEnd   int
}

// Lines returns the frame's lines in top-to-bottom order, each with
// its origin set. The returned slice must not be modified.
func (f *Frame) Lines() []*Line { return f.lines }

// CharStart returns the index of the frame's first character.
func (f *Frame) CharStart() int { return f.charStart }

// CharEnd returns the index after the last character that fit in the
// frame.
func (f *Frame) CharEnd() int { return f.charEnd }

// Frame fills rect with lines from [charStart, charEnd) until the text
// runs out or the next line would overflow the rectangle vertically.
// Each line's origin is its baseline pen position within rect, with
// the horizontal placement controlled by the alignment.
func (t *Typesetter) Frame(charStart, charEnd int, rect Rect, align Alignment) (*Frame, error) {
	if err := t.checkRange(charStart, charEnd); err != nil {
		return nil, err
	}
	if rect.Empty() {
		return nil, ErrEmptyFrame
	}

	flushFactor := align.flushFactor()
	frameWidth := rect.Width()

	var lines []*Line
	lineStart := charStart
	lineY := rect.MinY

	for lineStart != charEnd {
		lineEnd, err := t.SuggestForwardBreak(lineStart, charEnd, frameWidth, BreakLine)
		if err != nil {
			return nil, err
		}
		line, err := t.simpleLine(lineStart, lineEnd)
		if err != nil {
			return nil, err
		}

		lineHeight := line.Height()
		if lineY+lineHeight > rect.MaxY {
			break
		}

		lineX := line.FlushPenOffset(flushFactor, frameWidth)
		line.SetOrigin(rect.MinX+lineX, lineY+line.Ascent())
		lines = append(lines, line)

		lineStart = lineEnd
		lineY += lineHeight
	}

	Logger().Debug("frame filled",
		"lines", len(lines),
		"consumed", lineStart-charStart,
		"requested", charEnd-charStart)

	return &Frame{lines: lines, charStart: charStart, charEnd: lineStart}, nil
}
