package typeset

const unknownStr = "Unknown"

// DefaultSize is the size, in the same units the typeface was loaded
// for, applied to characters without a size annotation.
const DefaultSize = 16.0

// BreakMode selects the boundary class used by break searches.
type BreakMode uint8

const (
	// BreakCharacter breaks at grapheme cluster boundaries.
	BreakCharacter BreakMode = iota
	// BreakLine breaks at line break opportunities.
	BreakLine
)

// String returns the string representation of the break mode.
func (m BreakMode) String() string {
	switch m {
	case BreakCharacter:
		return "BreakCharacter"
	case BreakLine:
		return "BreakLine"
	default:
		return unknownStr
	}
}

// TruncationPlace selects which part of an overflowing line is elided.
type TruncationPlace uint8

const (
	// TruncateStart elides the beginning of the line.
	TruncateStart TruncationPlace = iota
	// TruncateMiddle elides the middle of the line.
	TruncateMiddle
	// TruncateEnd elides the end of the line.
	TruncateEnd
)

// String returns the string representation of the truncation place.
func (p TruncationPlace) String() string {
	switch p {
	case TruncateStart:
		return "TruncateStart"
	case TruncateMiddle:
		return "TruncateMiddle"
	case TruncateEnd:
		return "TruncateEnd"
	default:
		return unknownStr
	}
}

// Alignment controls horizontal line placement within a frame.
type Alignment uint8

const (
	// AlignStart places lines at the leading edge of the frame.
	AlignStart Alignment = iota
	// AlignCenter centers lines within the frame.
	AlignCenter
	// AlignEnd places lines at the trailing edge of the frame.
	AlignEnd
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "AlignStart"
	case AlignCenter:
		return "AlignCenter"
	case AlignEnd:
		return "AlignEnd"
	default:
		return unknownStr
	}
}

// flushFactor maps the alignment to the fraction of leftover extent
// placed before a line.
func (a Alignment) flushFactor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignEnd:
		return 1.0
	default:
		return 0.0
	}
}

// Point is a position in the same units as glyph advances.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect creates a rectangle from an origin and a size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }
