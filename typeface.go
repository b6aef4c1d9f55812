package typeset

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/typeset/shape"
)

// probeShaper serves glyph presence checks. Shapers are safe for
// concurrent use, so one shared instance is enough.
var probeShaper = shape.NewShaper()

// Typeface is an immutable handle to a parsed font. A Typeface may be
// shared freely between typesetters and goroutines.
type Typeface struct {
	font *font.Font
}

// NewTypeface parses OpenType or TrueType font data.
func NewTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("typeset: parsing font: %w", err)
	}
	return &Typeface{font: face.Font}, nil
}

// NewTypefaceFromFile loads and parses a font file.
func NewTypefaceFromFile(path string) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeset: reading font file: %w", err)
	}
	return NewTypeface(data)
}

// Font returns the underlying parsed font.
func (t *Typeface) Font() *font.Font {
	return t.font
}

// HasGlyph reports whether the typeface maps r to a real glyph rather
// than the missing-glyph placeholder.
func (t *Typeface) HasGlyph(r rune) bool {
	text := []rune{r}
	result, err := probeShaper.Shape(shape.Request{
		Text:   text,
		Start:  0,
		End:    1,
		Font:   t.font,
		Size:   DefaultSize,
		Script: shape.DetectScript(text, 0, 1),
	})
	if err != nil || len(result.Glyphs) == 0 {
		return false
	}
	for _, g := range result.Glyphs {
		if g.ID == 0 {
			return false
		}
	}
	return true
}
