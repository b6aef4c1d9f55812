package typeset

// findForwardBreak scans [charStart, charEnd) forward, accepting break
// candidates while the accumulated width fits. A paragraph boundary is
// a hard stop. A candidate that overflows only through its trailing
// whitespace is still accepted, since that whitespace would not be
// drawn at a line edge.
func (t *Typesetter) findForwardBreak(flag uint8, charStart, charEnd int, maxWidth float64) int {
	forward := charStart
	var measured float64

	for i := charStart; i < charEnd; i++ {
		bits := t.record[i]

		if bits&breakParagraphForward != 0 {
			segEnd := i + 1
			measured += t.measureChars(forward, segEnd)
			if measured <= maxWidth {
				forward = segEnd
			}
			break
		}

		if bits&flag != 0 {
			segEnd := i + 1
			measured += t.measureChars(forward, segEnd)
			if measured > maxWidth {
				wsStart := trailingWhitespaceStart(t.text, forward, segEnd)
				whitespace := t.measureChars(wsStart, segEnd)
				if measured-whitespace <= maxWidth {
					forward = segEnd
				}
				break
			}
			forward = segEnd
		}
	}
	return forward
}

// findBackwardBreak is the mirror of findForwardBreak: it scans
// [charStart, charEnd) backward from the end, accepting candidates
// while the accumulated width fits.
func (t *Typesetter) findBackwardBreak(flag uint8, charStart, charEnd int, maxWidth float64) int {
	backward := charEnd
	var measured float64

	for i := charEnd - 1; i >= charStart; i-- {
		bits := t.record[i]

		if bits&breakParagraphBackward != 0 {
			measured += t.measureChars(i, backward)
			if measured <= maxWidth {
				backward = i
			}
			break
		}

		if bits&flag != 0 {
			measured += t.measureChars(i, backward)
			if measured > maxWidth {
				wsStart := trailingWhitespaceStart(t.text, i, backward)
				whitespace := t.measureChars(wsStart, backward)
				if measured-whitespace <= maxWidth {
					backward = i
				}
				break
			}
			backward = i
		}
	}
	return backward
}

// forwardGraphemeBreak finds the forward grapheme break for the width.
// When not even the first grapheme fits, it still takes it, so a
// forward break always makes progress.
func (t *Typesetter) forwardGraphemeBreak(charStart, charEnd int, maxWidth float64) int {
	found := t.findForwardBreak(breakCharForward, charStart, charEnd, maxWidth)
	if found != charStart {
		return found
	}
	for i := charStart; i < charEnd; i++ {
		if t.record[i]&breakCharForward != 0 {
			return i + 1
		}
	}
	return min(charStart+1, charEnd)
}

// backwardGraphemeBreak finds the backward grapheme break for the
// width, forcing at least the last grapheme when nothing fits.
func (t *Typesetter) backwardGraphemeBreak(charStart, charEnd int, maxWidth float64) int {
	found := t.findBackwardBreak(breakCharBackward, charStart, charEnd, maxWidth)
	if found != charEnd {
		return found
	}
	for i := charEnd - 1; i >= charStart; i-- {
		if t.record[i]&breakCharBackward != 0 {
			return i
		}
	}
	return max(charEnd-1, charStart)
}

// forwardLineBreak finds the forward line break for the width, falling
// back to a grapheme break when no line break opportunity fits.
func (t *Typesetter) forwardLineBreak(charStart, charEnd int, maxWidth float64) int {
	found := t.findForwardBreak(breakLineForward, charStart, charEnd, maxWidth)
	if found == charStart {
		return t.forwardGraphemeBreak(charStart, charEnd, maxWidth)
	}
	return found
}

// backwardLineBreak finds the backward line break for the width,
// falling back to a grapheme break when no line break opportunity fits.
func (t *Typesetter) backwardLineBreak(charStart, charEnd int, maxWidth float64) int {
	found := t.findBackwardBreak(breakLineBackward, charStart, charEnd, maxWidth)
	if found == charEnd {
		return t.backwardGraphemeBreak(charStart, charEnd, maxWidth)
	}
	return found
}

// SuggestForwardBreak returns the largest index b in (charStart,
// charEnd] such that [charStart, b) fits in maxWidth under the given
// break mode, honoring mandatory paragraph breaks. When nothing fits,
// the first possible unit is taken anyway so that b > charStart.
func (t *Typesetter) SuggestForwardBreak(charStart, charEnd int, maxWidth float64, mode BreakMode) (int, error) {
	if err := t.checkRange(charStart, charEnd); err != nil {
		return 0, err
	}
	switch mode {
	case BreakCharacter:
		return t.forwardGraphemeBreak(charStart, charEnd, maxWidth), nil
	case BreakLine:
		return t.forwardLineBreak(charStart, charEnd, maxWidth), nil
	default:
		return 0, ErrUnknownBreakMode
	}
}

// SuggestBackwardBreak returns the smallest index b in [charStart,
// charEnd) such that [b, charEnd) fits in maxWidth under the given
// break mode, honoring mandatory paragraph breaks. When nothing fits,
// the last possible unit is taken anyway so that b < charEnd.
func (t *Typesetter) SuggestBackwardBreak(charStart, charEnd int, maxWidth float64, mode BreakMode) (int, error) {
	if err := t.checkRange(charStart, charEnd); err != nil {
		return 0, err
	}
	switch mode {
	case BreakCharacter:
		return t.backwardGraphemeBreak(charStart, charEnd, maxWidth), nil
	case BreakLine:
		return t.backwardLineBreak(charStart, charEnd, maxWidth), nil
	default:
		return 0, ErrUnknownBreakMode
	}
}
