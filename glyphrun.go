package typeset

import "github.com/go-text/typesetting/font"

// GlyphRun is a view of a character sub-range of an intrinsic run, as
// placed on a line. Glyph indices are relative to the view.
type GlyphRun struct {
	run        *IntrinsicRun
	charStart  int
	charEnd    int
	glyphStart int
	glyphEnd   int
	width      float64
}

// newGlyphRun creates a view of run covering [charStart, charEnd).
func newGlyphRun(run *IntrinsicRun, charStart, charEnd int) *GlyphRun {
	glyphStart, glyphEnd := run.glyphRange(charStart, charEnd)
	return &GlyphRun{
		run:        run,
		charStart:  charStart,
		charEnd:    charEnd,
		glyphStart: glyphStart,
		glyphEnd:   glyphEnd,
		width:      run.measureGlyphs(glyphStart, glyphEnd),
	}
}

// CharStart returns the index of the view's first character.
func (g *GlyphRun) CharStart() int { return g.charStart }

// CharEnd returns the index after the view's last character.
func (g *GlyphRun) CharEnd() int { return g.charEnd }

// BidiLevel returns the embedding level of the underlying run.
func (g *GlyphRun) BidiLevel() uint8 { return g.run.bidiLevel }

// RightToLeft reports whether the underlying run is right-to-left.
func (g *GlyphRun) RightToLeft() bool { return g.run.RightToLeft() }

// Typeface returns the typeface of the underlying run.
func (g *GlyphRun) Typeface() *Typeface { return g.run.typeface }

// Size returns the size of the underlying run.
func (g *GlyphRun) Size() float64 { return g.run.size }

// Ascent returns the distance from the baseline to the run's top.
func (g *GlyphRun) Ascent() float64 { return g.run.ascent }

// Descent returns the distance from the baseline to the run's bottom.
func (g *GlyphRun) Descent() float64 { return g.run.descent }

// Width returns the total advance of the view's glyphs.
func (g *GlyphRun) Width() float64 { return g.width }

// GlyphCount returns the number of glyphs in the view.
func (g *GlyphRun) GlyphCount() int { return g.glyphEnd - g.glyphStart }

// GlyphID returns the id of the glyph at a view-relative index.
func (g *GlyphRun) GlyphID(index int) font.GID { return g.run.glyphIDs[g.glyphStart+index] }

// GlyphOffset returns the pen offset of the glyph at a view-relative
// index.
func (g *GlyphRun) GlyphOffset(index int) Point { return g.run.offsets[g.glyphStart+index] }

// GlyphAdvance returns the advance of the glyph at a view-relative
// index.
func (g *GlyphRun) GlyphAdvance(index int) float64 { return g.run.advances[g.glyphStart+index] }

// Clone returns an independent copy of the view. The underlying
// intrinsic run is shared; it is immutable.
func (g *GlyphRun) Clone() *GlyphRun {
	c := *g
	return &c
}
