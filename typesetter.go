package typeset

import (
	"sort"

	"github.com/gogpu/typeset/bidi"
	"github.com/gogpu/typeset/shape"
)

// Typesetter holds the fully analyzed form of an attributed text:
// paragraph structure, shaped runs, and per-character break
// classification. It is immutable after creation, so all methods are
// safe for concurrent use.
type Typesetter struct {
	src        *AttributedText
	text       []rune
	record     []uint8
	paragraphs []*bidi.Paragraph
	runs       []*IntrinsicRun
}

// New creates a typesetter over plain text with a single typeface and
// size.
func New(text string, tf *Typeface, size float64) (*Typesetter, error) {
	if tf == nil {
		return nil, ErrNilTypeface
	}
	src, err := singleSpanText(text, tf, size)
	if err != nil {
		return nil, err
	}
	return newTypesetter(src)
}

// NewAttributed creates a typesetter over attributed text. The
// attributed text is snapshotted; later annotation changes do not
// affect the typesetter.
func NewAttributed(src *AttributedText) (*Typesetter, error) {
	if src == nil || len(src.runes) == 0 {
		return nil, ErrEmptyText
	}
	return newTypesetter(src.clone())
}

func newTypesetter(src *AttributedText) (*Typesetter, error) {
	t := &Typesetter{
		src:    src,
		text:   src.runes,
		record: resolveBreakRecord(src.runes),
	}
	if err := t.resolveRuns(); err != nil {
		return nil, err
	}

	Logger().Debug("typesetter created",
		"characters", len(t.text),
		"paragraphs", len(t.paragraphs),
		"runs", len(t.runs))
	return t, nil
}

// resolveRuns analyzes paragraphs, shapes every attribute-homogeneous
// piece of every directional run, and stamps paragraph break flags.
func (t *Typesetter) resolveRuns() error {
	shaper := shape.NewShaper()

	offset := 0
	for offset < len(t.text) {
		p, err := bidi.FirstParagraph(t.text, offset, bidi.DefaultLTR)
		if err != nil {
			return err
		}
		for _, run := range p.Runs() {
			if err := t.resolveTypefaces(shaper, run); err != nil {
				return err
			}
		}
		t.paragraphs = append(t.paragraphs, p)
		t.record[p.Start()] |= breakParagraphBackward
		t.record[p.End()-1] |= breakParagraphForward
		offset = p.End()
	}
	return nil
}

func (t *Typesetter) resolveTypefaces(shaper *shape.Shaper, run bidi.Run) error {
	return t.src.eachTypefaceRange(run.Start, run.End, func(start, end int, tf *Typeface) error {
		if tf == nil {
			return &MissingTypefaceError{Start: start, End: end}
		}
		return t.resolveSizes(shaper, run, start, end, tf)
	})
}

func (t *Typesetter) resolveSizes(shaper *shape.Shaper, run bidi.Run, start, end int, tf *Typeface) error {
	return t.src.eachSizeRange(start, end, func(start, end int, size float64, ok bool) error {
		if !ok {
			size = DefaultSize
		}
		if size < 0 {
			size = 0
		}
		return t.shapeRun(shaper, run, start, end, tf, size)
	})
}

func (t *Typesetter) shapeRun(shaper *shape.Shaper, run bidi.Run, start, end int, tf *Typeface, size float64) error {
	result, err := shaper.Shape(shape.Request{
		Text:        t.text,
		Start:       start,
		End:         end,
		Font:        tf.Font(),
		Size:        size,
		Script:      shape.DetectScript(t.text, start, end),
		RightToLeft: run.RightToLeft(),
	})
	if err != nil {
		return err
	}
	t.runs = append(t.runs, newIntrinsicRun(result, start, end, tf, size, run.Level))
	return nil
}

// Text returns the plain text the typesetter was created over.
func (t *Typesetter) Text() string { return string(t.text) }

// Length returns the number of characters.
func (t *Typesetter) Length() int { return len(t.text) }

// Source returns the typesetter's attributed text snapshot.
func (t *Typesetter) Source() *AttributedText { return t.src }

// Runs returns the shaped runs in logical order; they tile the text.
// The returned slice must not be modified.
func (t *Typesetter) Runs() []*IntrinsicRun { return t.runs }

// ParagraphCount returns the number of paragraphs in the text.
func (t *Typesetter) ParagraphCount() int { return len(t.paragraphs) }

func (t *Typesetter) checkRange(charStart, charEnd int) error {
	if charStart < 0 || charEnd > len(t.text) || charStart >= charEnd {
		return &RangeError{Start: charStart, End: charEnd, Length: len(t.text)}
	}
	return nil
}

// paragraphIndex returns the index of the paragraph containing the
// character. Paragraphs tile the text, so a binary search on interval
// ends suffices.
func (t *Typesetter) paragraphIndex(charIndex int) int {
	return sort.Search(len(t.paragraphs), func(i int) bool {
		return t.paragraphs[i].End() > charIndex
	})
}

// runIndex returns the index of the intrinsic run containing the
// character. Runs are created in logical order and tile the text.
func (t *Typesetter) runIndex(charIndex int) int {
	return sort.Search(len(t.runs), func(i int) bool {
		return t.runs[i].charEnd > charIndex
	})
}

// paragraphLevel returns the base level of the paragraph containing
// the character.
func (t *Typesetter) paragraphLevel(charIndex int) uint8 {
	return t.paragraphs[t.paragraphIndex(charIndex)].BaseLevel()
}

// measureChars sums the advances of the glyph clusters covering
// [charStart, charEnd) across run boundaries.
func (t *Typesetter) measureChars(charStart, charEnd int) float64 {
	if charStart >= charEnd {
		return 0
	}

	var width float64
	ri := t.runIndex(charStart)
	for charStart < charEnd {
		run := t.runs[ri]
		segEnd := min(charEnd, run.charEnd)
		glyphStart, glyphEnd := run.glyphRange(charStart, segEnd)
		width += run.measureGlyphs(glyphStart, glyphEnd)
		charStart = segEnd
		ri++
	}
	return width
}
