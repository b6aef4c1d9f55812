// Package shape turns homogeneous text runs into positioned glyphs.
//
// A run is homogeneous when a single font, size, script, and direction
// apply to all of its characters; segmenting text into such runs is the
// caller's job. Shaping is backed by go-text/typesetting's HarfBuzz
// implementation and supports ligatures, kerning, and complex scripts.
// Identical requests always produce identical results.
package shape

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ErrNilFont is returned when a request carries no font.
var ErrNilFont = errors.New("shape: font is nil")

// RangeError reports a shaping range outside the request text.
type RangeError struct {
	Start, End, Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("shape: run range [%d..%d) invalid for text of length %d",
		e.Start, e.End, e.Length)
}

// Request describes one homogeneous sub-range to shape. Text is the
// full surrounding rune sequence; Start and End delimit the run within
// it. Passing the surrounding text lets the shaper consider context
// across the run edges.
type Request struct {
	Text        []rune
	Start, End  int
	Font        *font.Font
	Size        float64
	Script      language.Script
	RightToLeft bool
}

// Glyph is one shaped glyph. Offsets and Advance are in the same units
// as the request size. Cluster is the rune index (into the request
// text) of the first rune of the glyph's cluster; RuneCount and
// GlyphCount describe the cluster and are populated on its first glyph.
type Glyph struct {
	ID         font.GID
	XOffset    float64
	YOffset    float64
	Advance    float64
	Cluster    int
	RuneCount  int
	GlyphCount int
}

// Result is the shaped form of a request. Glyphs are in visual order:
// left to right for LTR runs, which for RTL runs means the glyph of the
// logically last character comes first.
type Result struct {
	Glyphs  []Glyph
	Advance float64
	Ascent  float64
	Descent float64
}

// Shaper shapes homogeneous runs. It pools the underlying HarfBuzz
// shaper instances, which are not safe for concurrent use, so a single
// Shaper may be shared by any number of goroutines.
type Shaper struct {
	pool sync.Pool
}

// NewShaper returns a ready-to-use Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes the requested run. The result is deterministic for
// identical requests.
func (s *Shaper) Shape(req Request) (Result, error) {
	if req.Font == nil {
		return Result{}, ErrNilFont
	}
	if req.Start < 0 || req.End > len(req.Text) || req.Start >= req.End {
		return Result{}, &RangeError{Start: req.Start, End: req.End, Length: len(req.Text)}
	}

	dir := di.DirectionLTR
	if req.RightToLeft {
		dir = di.DirectionRTL
	}

	// font.Face is not safe for concurrent use; a fresh one per call is
	// cheap and wraps the shared read-only Font.
	input := shaping.Input{
		Text:      req.Text,
		RunStart:  req.Start,
		RunEnd:    req.End,
		Direction: dir,
		Face:      font.NewFace(req.Font),
		Size:      floatToFixed(req.Size),
		Script:    req.Script,
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	result := Result{
		Glyphs:  make([]Glyph, len(output.Glyphs)),
		Advance: fixedToFloat(output.Advance),
		Ascent:  fixedToFloat(output.LineBounds.Ascent),
		Descent: -fixedToFloat(output.LineBounds.Descent),
	}
	for i, g := range output.Glyphs {
		result.Glyphs[i] = Glyph{
			ID:         g.GlyphID,
			XOffset:    fixedToFloat(g.XOffset),
			YOffset:    fixedToFloat(g.YOffset),
			Advance:    fixedToFloat(g.XAdvance),
			Cluster:    g.ClusterIndex,
			RuneCount:  g.RuneCount,
			GlyphCount: g.GlyphCount,
		}
	}

	return result, nil
}

// DetectScript returns the script of the first rune in text[start:end]
// with a concrete script assignment, falling back to Latin. Runs mixing
// scripts should be split before shaping.
func DetectScript(text []rune, start, end int) language.Script {
	for _, r := range text[start:end] {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
