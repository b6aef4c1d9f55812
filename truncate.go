package typeset

import (
	"slices"
	"unicode/utf8"

	"github.com/gogpu/typeset/bidi"
)

// truncationSplitter collects the glyph runs of a line while leaving
// out a skip window [skipStart, skipEnd), recording where the
// truncation token belongs: leadingTokenIndex is the gap after the
// kept text preceding the window, trailingTokenIndex the gap before
// the kept text following it. Right-to-left runs present their
// logically later part visually first, so the two halves swap.
type truncationSplitter struct {
	skipStart, skipEnd int

	leadingTokenIndex  int
	trailingTokenIndex int
}

func newTruncationSplitter(skipStart, skipEnd int) *truncationSplitter {
	return &truncationSplitter{
		skipStart:          skipStart,
		skipEnd:            skipEnd,
		leadingTokenIndex:  -1,
		trailingTokenIndex: -1,
	}
}

func (s *truncationSplitter) consume(t *Typesetter, list []*GlyphRun, r bidi.Run) []*GlyphRun {
	visualStart, visualEnd := r.Start, r.End

	if r.RightToLeft() {
		if visualEnd >= s.skipEnd {
			list = t.appendVisualRuns(list, max(visualStart, s.skipEnd), visualEnd)
			if visualStart < s.skipEnd {
				s.trailingTokenIndex = len(list)
			}
		}
		if visualStart <= s.skipStart {
			if visualEnd > s.skipStart {
				s.leadingTokenIndex = len(list)
			}
			list = t.appendVisualRuns(list, visualStart, min(visualEnd, s.skipStart))
		}
	} else {
		if visualStart <= s.skipStart {
			list = t.appendVisualRuns(list, visualStart, min(visualEnd, s.skipStart))
			if visualEnd > s.skipStart {
				s.leadingTokenIndex = len(list)
			}
		}
		if visualEnd >= s.skipEnd {
			if visualStart < s.skipEnd {
				s.trailingTokenIndex = len(list)
			}
			list = t.appendVisualRuns(list, max(visualStart, s.skipEnd), visualEnd)
		}
	}
	return list
}

// splitRuns walks the visual runs of [charStart, charEnd) through the
// splitter and returns the kept glyph runs.
func (t *Typesetter) splitRuns(s *truncationSplitter, charStart, charEnd int) ([]*GlyphRun, error) {
	var list []*GlyphRun
	err := t.eachVisualRun(charStart, charEnd, func(r bidi.Run) {
		list = s.consume(t, list, r)
	})
	return list, err
}

// spliceTokenRuns inserts clones of the token line's runs at
// insertIndex.
func spliceTokenRuns(list []*GlyphRun, insertIndex int, token *Line) []*GlyphRun {
	for _, r := range token.runs {
		list = slices.Insert(list, insertIndex, r.Clone())
		insertIndex++
	}
	return list
}

// truncationToken builds the default token line for a truncation at
// the given place. The token takes the typeface and size of the
// character next to the elision point: the first character for start
// truncation, the middle one for middle, the last one for end. An
// empty tokenStr selects the ellipsis character when the typeface has
// a glyph for it and three dots otherwise.
func (t *Typesetter) truncationToken(charStart, charEnd int, place TruncationPlace, tokenStr string) (*Line, error) {
	var refIndex int
	switch place {
	case TruncateStart:
		refIndex = charStart
	case TruncateMiddle:
		refIndex = (charStart + charEnd) / 2
	case TruncateEnd:
		refIndex = charEnd - 1
	default:
		return nil, ErrUnknownTruncationPlace
	}

	tf := t.src.typefaceAt(refIndex)
	if tf == nil {
		return nil, &MissingAttributeError{Index: refIndex}
	}
	size, ok := t.src.sizeAt(refIndex)
	if !ok {
		size = DefaultSize
	}
	if size < 0 {
		size = 0
	}

	if tokenStr == "" {
		if tf.HasGlyph('…') {
			tokenStr = "…"
		} else {
			Logger().Warn("typeface has no ellipsis glyph, using three dots")
			tokenStr = "..."
		}
	}

	sub, err := New(tokenStr, tf, size)
	if err != nil {
		return nil, err
	}
	return sub.SimpleLine(0, utf8.RuneCountInString(tokenStr))
}

// TruncatedLine creates a line over [charStart, charEnd), replacing
// overflowing content with a default token (the ellipsis character, or
// three dots when the typeface lacks it) if the range does not fit in
// maxWidth. The break mode selects the granularity at which content is
// dropped; the place selects which part of the line is elided.
func (t *Typesetter) TruncatedLine(charStart, charEnd int, maxWidth float64, mode BreakMode, place TruncationPlace) (*Line, error) {
	if err := t.checkRange(charStart, charEnd); err != nil {
		return nil, err
	}
	token, err := t.truncationToken(charStart, charEnd, place, "")
	if err != nil {
		return nil, err
	}
	return t.compactLine(charStart, charEnd, maxWidth, mode, place, token)
}

// TruncatedLineString is TruncatedLine with a caller-supplied token
// string, laid out with the attributes of the character next to the
// elision point.
func (t *Typesetter) TruncatedLineString(charStart, charEnd int, maxWidth float64, mode BreakMode, place TruncationPlace, tokenStr string) (*Line, error) {
	if err := t.checkRange(charStart, charEnd); err != nil {
		return nil, err
	}
	if tokenStr == "" {
		return nil, ErrEmptyToken
	}
	token, err := t.truncationToken(charStart, charEnd, place, tokenStr)
	if err != nil {
		return nil, err
	}
	return t.compactLine(charStart, charEnd, maxWidth, mode, place, token)
}

// TruncatedLineToken is TruncatedLine with a caller-supplied, already
// laid out token line.
func (t *Typesetter) TruncatedLineToken(charStart, charEnd int, maxWidth float64, mode BreakMode, place TruncationPlace, token *Line) (*Line, error) {
	if err := t.checkRange(charStart, charEnd); err != nil {
		return nil, err
	}
	return t.compactLine(charStart, charEnd, maxWidth, mode, place, token)
}

func (t *Typesetter) compactLine(charStart, charEnd int, maxWidth float64, mode BreakMode, place TruncationPlace, token *Line) (*Line, error) {
	if maxWidth <= 0 {
		return nil, ErrNonPositiveWidth
	}
	if token == nil || len(token.runs) == 0 {
		return nil, ErrEmptyToken
	}

	// Content that already fits needs no truncation, and no token.
	if t.measureChars(charStart, charEnd) <= maxWidth {
		return t.simpleLine(charStart, charEnd)
	}

	tokenlessWidth := maxWidth - token.Width()

	switch place {
	case TruncateStart:
		return t.startTruncatedLine(charStart, charEnd, tokenlessWidth, mode, token)
	case TruncateMiddle:
		return t.middleTruncatedLine(charStart, charEnd, tokenlessWidth, mode, token)
	case TruncateEnd:
		return t.endTruncatedLine(charStart, charEnd, tokenlessWidth, mode, token)
	default:
		return nil, ErrUnknownTruncationPlace
	}
}

func (t *Typesetter) startTruncatedLine(charStart, charEnd int, tokenlessWidth float64, mode BreakMode, token *Line) (*Line, error) {
	truncatedStart, err := t.SuggestBackwardBreak(charStart, charEnd, tokenlessWidth, mode)
	if err != nil {
		return nil, err
	}
	if truncatedStart <= charStart {
		return t.simpleLine(truncatedStart, charEnd)
	}

	var runs []*GlyphRun
	tokenInsertIndex := 0

	if truncatedStart < charEnd {
		splitter := newTruncationSplitter(charStart, truncatedStart)
		runs, err = t.splitRuns(splitter, charStart, charEnd)
		if err != nil {
			return nil, err
		}
		if splitter.trailingTokenIndex >= 0 {
			tokenInsertIndex = splitter.trailingTokenIndex
		}
	}
	runs = spliceTokenRuns(runs, tokenInsertIndex, token)

	return newLine(runs, truncatedStart, charEnd, t.paragraphLevel(truncatedStart)), nil
}

func (t *Typesetter) middleTruncatedLine(charStart, charEnd int, tokenlessWidth float64, mode BreakMode, token *Line) (*Line, error) {
	halfWidth := tokenlessWidth / 2
	firstMidEnd, err := t.SuggestForwardBreak(charStart, charEnd, halfWidth, mode)
	if err != nil {
		return nil, err
	}
	secondMidStart, err := t.SuggestBackwardBreak(charStart, charEnd, halfWidth, mode)
	if err != nil {
		return nil, err
	}
	if firstMidEnd >= secondMidStart {
		return t.simpleLine(charStart, charEnd)
	}

	// The token replaces the inner whitespace on both sides of the gap.
	firstMidEnd = trailingWhitespaceStart(t.text, charStart, firstMidEnd)
	secondMidStart = leadingWhitespaceEnd(t.text, secondMidStart, charEnd)

	var runs []*GlyphRun
	tokenInsertIndex := 0

	if charStart < firstMidEnd || secondMidStart < charEnd {
		splitter := newTruncationSplitter(firstMidEnd, secondMidStart)
		runs, err = t.splitRuns(splitter, charStart, charEnd)
		if err != nil {
			return nil, err
		}
		if splitter.leadingTokenIndex >= 0 {
			tokenInsertIndex = splitter.leadingTokenIndex
		}
	}
	runs = spliceTokenRuns(runs, tokenInsertIndex, token)

	return newLine(runs, charStart, charEnd, t.paragraphLevel(charStart)), nil
}

func (t *Typesetter) endTruncatedLine(charStart, charEnd int, tokenlessWidth float64, mode BreakMode, token *Line) (*Line, error) {
	truncatedEnd, err := t.SuggestForwardBreak(charStart, charEnd, tokenlessWidth, mode)
	if err != nil {
		return nil, err
	}
	if truncatedEnd >= charEnd {
		return t.simpleLine(charStart, truncatedEnd)
	}

	// The token replaces the trailing whitespace of the kept text.
	truncatedEnd = trailingWhitespaceStart(t.text, charStart, truncatedEnd)

	var runs []*GlyphRun
	tokenInsertIndex := 0

	if charStart < truncatedEnd {
		splitter := newTruncationSplitter(truncatedEnd, charEnd)
		runs, err = t.splitRuns(splitter, charStart, charEnd)
		if err != nil {
			return nil, err
		}
		if splitter.leadingTokenIndex >= 0 {
			tokenInsertIndex = splitter.leadingTokenIndex
		} else {
			tokenInsertIndex = len(runs)
		}
	}
	runs = spliceTokenRuns(runs, tokenInsertIndex, token)

	return newLine(runs, charStart, truncatedEnd, t.paragraphLevel(charStart)), nil
}
