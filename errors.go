package typeset

import (
	"errors"
	"fmt"
)

// Sentinel errors for the typeset package.
var (
	// ErrEmptyText is returned when a typesetter is created over no text.
	ErrEmptyText = errors.New("typeset: text is empty")

	// ErrNilTypeface is returned when a nil typeface is supplied.
	ErrNilTypeface = errors.New("typeset: typeface is nil")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("typeset: empty font data")

	// ErrEmptyToken is returned when a truncation token has no content.
	ErrEmptyToken = errors.New("typeset: truncation token is empty")

	// ErrNonPositiveWidth is returned when a layout width is zero or negative.
	ErrNonPositiveWidth = errors.New("typeset: width must be positive")

	// ErrEmptyFrame is returned when a frame rectangle has no area.
	ErrEmptyFrame = errors.New("typeset: frame rectangle is empty")

	// ErrUnknownBreakMode is returned for a break mode outside the
	// declared constants.
	ErrUnknownBreakMode = errors.New("typeset: unknown break mode")

	// ErrUnknownTruncationPlace is returned for a truncation place
	// outside the declared constants.
	ErrUnknownTruncationPlace = errors.New("typeset: unknown truncation place")
)

// RangeError reports a character range outside the typesetter's text.
type RangeError struct {
	Start, End, Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("typeset: character range [%d..%d) invalid for text of length %d",
		e.Start, e.End, e.Length)
}

// MissingTypefaceError reports a character range with no typeface
// annotation.
type MissingTypefaceError struct {
	Start, End int
}

func (e *MissingTypefaceError) Error() string {
	return fmt.Sprintf("typeset: no typeface for characters [%d..%d)", e.Start, e.End)
}

// MissingAttributeError reports a character position whose attributes
// could not be resolved for a derived operation.
type MissingAttributeError struct {
	Index int
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("typeset: no typeface at character %d", e.Index)
}
