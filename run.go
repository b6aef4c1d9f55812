package typeset

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/typeset/shape"
)

// glyphSpan is a half-open glyph index range.
type glyphSpan struct {
	start, end int
}

// IntrinsicRun is a shaped run of characters sharing one typeface,
// size, and direction. Glyphs are stored in visual order; spans map
// each character to the glyph range of its cluster. IntrinsicRun is
// immutable after construction.
type IntrinsicRun struct {
	charStart int
	charEnd   int
	bidiLevel uint8
	typeface  *Typeface
	size      float64
	ascent    float64
	descent   float64

	glyphIDs []font.GID
	offsets  []Point
	advances []float64
	spans    []glyphSpan
}

// newIntrinsicRun converts a shaping result to a run over
// [charStart, charEnd).
func newIntrinsicRun(result shape.Result, charStart, charEnd int, tf *Typeface, size float64, level uint8) *IntrinsicRun {
	r := &IntrinsicRun{
		charStart: charStart,
		charEnd:   charEnd,
		bidiLevel: level,
		typeface:  tf,
		size:      size,
		ascent:    result.Ascent,
		descent:   result.Descent,
		glyphIDs:  make([]font.GID, len(result.Glyphs)),
		offsets:   make([]Point, len(result.Glyphs)),
		advances:  make([]float64, len(result.Glyphs)),
		spans:     make([]glyphSpan, charEnd-charStart),
	}

	for i, g := range result.Glyphs {
		r.glyphIDs[i] = g.ID
		r.offsets[i] = Point{X: g.XOffset, Y: g.YOffset}
		r.advances[i] = g.Advance
	}

	// Cluster metadata lives on the first glyph of each cluster.
	for i := 0; i < len(result.Glyphs); {
		g := result.Glyphs[i]
		glyphCount := max(g.GlyphCount, 1)
		runeCount := max(g.RuneCount, 1)
		span := glyphSpan{start: i, end: i + glyphCount}
		for c := g.Cluster; c < g.Cluster+runeCount; c++ {
			if c >= charStart && c < charEnd {
				r.spans[c-charStart] = span
			}
		}
		i += glyphCount
	}

	return r
}

// CharStart returns the index of the run's first character.
func (r *IntrinsicRun) CharStart() int { return r.charStart }

// CharEnd returns the index after the run's last character.
func (r *IntrinsicRun) CharEnd() int { return r.charEnd }

// BidiLevel returns the run's embedding level.
func (r *IntrinsicRun) BidiLevel() uint8 { return r.bidiLevel }

// RightToLeft reports whether the run's embedding level is odd.
func (r *IntrinsicRun) RightToLeft() bool { return r.bidiLevel&1 == 1 }

// Typeface returns the run's typeface.
func (r *IntrinsicRun) Typeface() *Typeface { return r.typeface }

// Size returns the run's size.
func (r *IntrinsicRun) Size() float64 { return r.size }

// Ascent returns the distance from the baseline to the run's top.
func (r *IntrinsicRun) Ascent() float64 { return r.ascent }

// Descent returns the distance from the baseline to the run's bottom.
func (r *IntrinsicRun) Descent() float64 { return r.descent }

// GlyphCount returns the number of glyphs.
func (r *IntrinsicRun) GlyphCount() int { return len(r.glyphIDs) }

// GlyphID returns the id of the glyph at a visual glyph index.
func (r *IntrinsicRun) GlyphID(index int) font.GID { return r.glyphIDs[index] }

// GlyphOffset returns the pen offset of the glyph at a visual glyph
// index.
func (r *IntrinsicRun) GlyphOffset(index int) Point { return r.offsets[index] }

// GlyphAdvance returns the advance of the glyph at a visual glyph
// index.
func (r *IntrinsicRun) GlyphAdvance(index int) float64 { return r.advances[index] }

// glyphRange returns the glyph index range covering the characters
// [charStart, charEnd) of the run, spanning the clusters of both
// endpoints. Works for both glyph storage orders since it takes the
// envelope of the two end clusters.
func (r *IntrinsicRun) glyphRange(charStart, charEnd int) (int, int) {
	first := r.spans[charStart-r.charStart]
	last := r.spans[charEnd-1-r.charStart]
	return min(first.start, last.start), max(first.end, last.end)
}

// measureGlyphs sums advances over a glyph index range.
func (r *IntrinsicRun) measureGlyphs(glyphStart, glyphEnd int) float64 {
	var width float64
	for i := glyphStart; i < glyphEnd; i++ {
		width += r.advances[i]
	}
	return width
}
