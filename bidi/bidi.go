// Package bidi resolves the bidirectional structure of text.
//
// It splits a rune sequence into paragraphs, assigns each paragraph a
// base embedding level and an ordered sequence of logical runs, and
// produces visually ordered run views for line display. Paragraphs
// returned by repeated FirstParagraph calls tile the input exactly.
//
// The embedding analysis is backed by golang.org/x/text/unicode/bidi.
// Run levels use the two-level derivation (base level 0 or 1, nested
// opposite-direction runs at base+1 or base+2), which is exact for text
// without explicit embedding controls. The paragraph separator is not
// part of the analyzed classes; it is folded into the run table at the
// paragraph base level so runs always tile the paragraph, separator
// included. Visual views slice the paragraph's resolved runs and apply
// the UAX #9 L2 rule over their levels; the reordering is written
// against arbitrary level values.
package bidi

import (
	"fmt"
	"unicode/utf8"

	xbidi "golang.org/x/text/unicode/bidi"
)

// Direction is the base direction hint applied when a paragraph
// contains no strong directional character.
type Direction uint8

const (
	// DefaultLTR treats direction-neutral paragraphs as left-to-right.
	DefaultLTR Direction = iota
	// DefaultRTL treats direction-neutral paragraphs as right-to-left.
	DefaultRTL
)

// String returns the string representation of the direction hint.
func (d Direction) String() string {
	switch d {
	case DefaultLTR:
		return "DefaultLTR"
	case DefaultRTL:
		return "DefaultRTL"
	default:
		return "Unknown"
	}
}

// Run is a maximal sub-range of a paragraph at a single embedding
// level. Start and End are rune indices into the original text.
type Run struct {
	Start int
	End   int
	Level uint8
}

// RightToLeft reports whether the run's level is odd.
func (r Run) RightToLeft() bool {
	return r.Level&1 == 1
}

// Paragraph is one bidirectional paragraph of the source text. It is
// immutable after creation; all methods are safe for concurrent use.
type Paragraph struct {
	start     int
	end       int
	baseLevel uint8
	runs      []Run
}

// FirstParagraph analyzes text starting at offset and returns the first
// paragraph found there. The paragraph covers [offset, End()) where End
// includes the paragraph separator, if any. Calling FirstParagraph
// repeatedly with the previous paragraph's End as the new offset tiles
// the whole text.
func FirstParagraph(text []rune, offset int, dir Direction) (*Paragraph, error) {
	if offset < 0 || offset >= len(text) {
		return nil, fmt.Errorf("bidi: paragraph offset %d out of range [0..%d)", offset, len(text))
	}

	tail := string(text[offset:])

	hint := xbidi.LeftToRight
	if dir == DefaultRTL {
		hint = xbidi.RightToLeft
	}

	var para xbidi.Paragraph
	consumed, err := para.SetString(tail, xbidi.DefaultDirection(hint))
	if err != nil {
		return nil, fmt.Errorf("bidi: paragraph analysis failed: %w", err)
	}
	if consumed <= 0 {
		consumed = len(tail)
	}
	length := utf8.RuneCountInString(tail[:consumed])

	p := &Paragraph{start: offset, end: offset + length}
	p.baseLevel = baseLevel(text[offset:p.end], dir)

	// x/text resolves classes only up to the separator, yet its last
	// run spills over the remaining input. Clamp runs to the analyzed
	// range and cover the separator ourselves.
	analyzedEnd := p.end
	if props, _ := xbidi.LookupRune(text[p.end-1]); props.Class() == xbidi.B {
		analyzedEnd = p.end - 1
	}

	ordering, err := para.Order()
	if err != nil {
		return nil, fmt.Errorf("bidi: run ordering failed: %w", err)
	}
	p.runs = make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		runStart, runEnd := run.Pos()
		start := offset + runStart
		end := offset + runEnd + 1

		if start >= analyzedEnd {
			break
		}
		if end > analyzedEnd {
			end = analyzedEnd
		}
		p.runs = append(p.runs, Run{
			Start: start,
			End:   end,
			Level: runLevel(p.baseLevel, run.Direction() == xbidi.RightToLeft),
		})
	}

	// The separator rune carries no resolved class; it takes the
	// paragraph base level so the runs tile [Start(), End()) exactly.
	// A separator-only paragraph yields no analyzed runs at all.
	if n := len(p.runs); n == 0 {
		p.runs = append(p.runs, Run{Start: p.start, End: p.end, Level: p.baseLevel})
	} else if last := &p.runs[n-1]; last.End < p.end {
		if last.Level == p.baseLevel {
			last.End = p.end
		} else {
			p.runs = append(p.runs, Run{Start: last.End, End: p.end, Level: p.baseLevel})
		}
	}

	return p, nil
}

// Start returns the index of the paragraph's first character.
func (p *Paragraph) Start() int { return p.start }

// End returns the index after the paragraph's last character,
// including the paragraph separator.
func (p *Paragraph) End() int { return p.end }

// BaseLevel returns the paragraph's base embedding level: 0 for
// left-to-right, 1 for right-to-left.
func (p *Paragraph) BaseLevel() uint8 { return p.baseLevel }

// Runs returns the paragraph's runs in logical order. The runs tile
// [Start(), End()) exactly. The returned slice must not be modified.
func (p *Paragraph) Runs() []Run { return p.runs }

// VisualRuns returns the runs covering [start, end) in visual display
// order. The range must lie within the paragraph. The logical content
// of each returned run is unchanged; only the run order differs from
// Runs.
func (p *Paragraph) VisualRuns(start, end int) ([]Run, error) {
	if start < p.start || end > p.end || start >= end {
		return nil, fmt.Errorf("bidi: line range [%d..%d) outside paragraph [%d..%d)",
			start, end, p.start, p.end)
	}

	runs := make([]Run, 0, len(p.runs))
	for _, r := range p.runs {
		if r.End <= start || r.Start >= end {
			continue
		}
		runs = append(runs, Run{
			Start: max(r.Start, start),
			End:   min(r.End, end),
			Level: r.Level,
		})
	}

	reorderVisual(runs)
	return runs, nil
}

// baseLevel resolves the paragraph base level per UAX #9 rules P2/P3:
// the first strong character decides; absent one, the hint applies.
func baseLevel(par []rune, dir Direction) uint8 {
	for _, r := range par {
		props, _ := xbidi.LookupRune(r)
		switch props.Class() {
		case xbidi.L:
			return 0
		case xbidi.R, xbidi.AL:
			return 1
		}
	}
	if dir == DefaultRTL {
		return 1
	}
	return 0
}

// runLevel derives a run's embedding level from the paragraph base
// level and the run's resolved direction.
func runLevel(base uint8, rtl bool) uint8 {
	if base&1 == 1 {
		if rtl {
			return base
		}
		return base + 1
	}
	if rtl {
		return base + 1
	}
	return base
}

// reorderVisual applies the UAX #9 L2 rule in place: from the highest
// level down to the lowest odd level, reverse every maximal sequence of
// runs at or above that level.
func reorderVisual(runs []Run) {
	var maxLevel uint8
	minOdd := uint8(255)
	for _, r := range runs {
		if r.Level > maxLevel {
			maxLevel = r.Level
		}
		if r.Level&1 == 1 && r.Level < minOdd {
			minOdd = r.Level
		}
	}
	if minOdd == 255 {
		return
	}

	for level := maxLevel; level >= minOdd; level-- {
		for i := 0; i < len(runs); {
			if runs[i].Level < level {
				i++
				continue
			}
			j := i
			for j < len(runs) && runs[j].Level >= level {
				j++
			}
			reverseRuns(runs[i:j])
			i = j
		}
	}
}

func reverseRuns(runs []Run) {
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
}
