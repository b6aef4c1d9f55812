package typeset

import "unicode/utf8"

// faceSpan annotates a character range with a typeface.
type faceSpan struct {
	start, end int
	typeface   *Typeface
}

// sizeSpan annotates a character range with a size.
type sizeSpan struct {
	start, end int
	size       float64
}

// AttributedText is a character sequence with per-range typeface and
// size annotations. Ranges are rune indices. Later annotations win
// where ranges overlap. Characters without a size annotation use
// DefaultSize; characters without a typeface annotation make layout
// fail with a MissingTypefaceError.
//
// AttributedText is not safe for concurrent mutation; build it fully
// before handing it to NewAttributed.
type AttributedText struct {
	runes []rune
	faces []faceSpan
	sizes []sizeSpan
}

// NewAttributedText creates an attributed text over the given string
// with no annotations yet.
func NewAttributedText(text string) (*AttributedText, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	return &AttributedText{runes: []rune(text)}, nil
}

// Length returns the number of characters.
func (a *AttributedText) Length() int { return len(a.runes) }

// String returns the plain text.
func (a *AttributedText) String() string { return string(a.runes) }

// SetTypeface annotates [start, end) with a typeface.
func (a *AttributedText) SetTypeface(start, end int, tf *Typeface) error {
	if tf == nil {
		return ErrNilTypeface
	}
	if err := a.checkSpan(start, end); err != nil {
		return err
	}
	a.faces = append(a.faces, faceSpan{start: start, end: end, typeface: tf})
	return nil
}

// SetSize annotates [start, end) with a size. Negative sizes are
// treated as zero during layout.
func (a *AttributedText) SetSize(start, end int, size float64) error {
	if err := a.checkSpan(start, end); err != nil {
		return err
	}
	a.sizes = append(a.sizes, sizeSpan{start: start, end: end, size: size})
	return nil
}

func (a *AttributedText) checkSpan(start, end int) error {
	if start < 0 || end > len(a.runes) || start >= end {
		return &RangeError{Start: start, End: end, Length: len(a.runes)}
	}
	return nil
}

// typefaceAt resolves the typeface at a character position, or nil.
func (a *AttributedText) typefaceAt(index int) *Typeface {
	var tf *Typeface
	for _, s := range a.faces {
		if s.start <= index && index < s.end {
			tf = s.typeface
		}
	}
	return tf
}

// sizeAt resolves the size at a character position. The second result
// is false when no size annotation covers the position.
func (a *AttributedText) sizeAt(index int) (float64, bool) {
	size, ok := 0.0, false
	for _, s := range a.sizes {
		if s.start <= index && index < s.end {
			size, ok = s.size, true
		}
	}
	return size, ok
}

// eachTypefaceRange calls fn for each maximal sub-range of [start, end)
// sharing one resolved typeface. The typeface may be nil.
func (a *AttributedText) eachTypefaceRange(start, end int, fn func(start, end int, tf *Typeface) error) error {
	pos := start
	for pos < end {
		tf := a.typefaceAt(pos)
		sub := pos + 1
		for sub < end && a.typefaceAt(sub) == tf {
			sub++
		}
		if err := fn(pos, sub, tf); err != nil {
			return err
		}
		pos = sub
	}
	return nil
}

// eachSizeRange calls fn for each maximal sub-range of [start, end)
// sharing one resolved size. ok is false for unannotated sub-ranges.
func (a *AttributedText) eachSizeRange(start, end int, fn func(start, end int, size float64, ok bool) error) error {
	pos := start
	for pos < end {
		size, ok := a.sizeAt(pos)
		sub := pos + 1
		for sub < end {
			s, o := a.sizeAt(sub)
			if s != size || o != ok {
				break
			}
			sub++
		}
		if err := fn(pos, sub, size, ok); err != nil {
			return err
		}
		pos = sub
	}
	return nil
}

// clone returns a snapshot decoupled from later annotation changes.
func (a *AttributedText) clone() *AttributedText {
	c := &AttributedText{
		runes: a.runes,
		faces: make([]faceSpan, len(a.faces)),
		sizes: make([]sizeSpan, len(a.sizes)),
	}
	copy(c.faces, a.faces)
	copy(c.sizes, a.sizes)
	return c
}

// singleSpanText builds an attributed text with one typeface and size
// covering the whole string.
func singleSpanText(text string, tf *Typeface, size float64) (*AttributedText, error) {
	src, err := NewAttributedText(text)
	if err != nil {
		return nil, err
	}
	length := utf8.RuneCountInString(text)
	if err := src.SetTypeface(0, length, tf); err != nil {
		return nil, err
	}
	if err := src.SetSize(0, length, size); err != nil {
		return nil, err
	}
	return src, nil
}
