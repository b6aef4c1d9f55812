package typeset

import (
	"errors"
	"testing"
	"unicode"
)

func TestTruncatedLineArgumentErrors(t *testing.T) {
	ts := newTestTypesetter(t, "hello world")

	var rangeErr *RangeError
	if _, err := ts.TruncatedLine(-1, 5, 100, BreakLine, TruncateEnd); !errors.As(err, &rangeErr) {
		t.Errorf("bad range: err = %v, want RangeError", err)
	}
	if _, err := ts.TruncatedLine(0, 11, 0, BreakLine, TruncateEnd); !errors.Is(err, ErrNonPositiveWidth) {
		t.Errorf("zero width: err = %v, want ErrNonPositiveWidth", err)
	}
	if _, err := ts.TruncatedLineString(0, 11, 100, BreakLine, TruncateEnd, ""); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("empty token: err = %v, want ErrEmptyToken", err)
	}
	if _, err := ts.TruncatedLineToken(0, 11, 100, BreakLine, TruncateEnd, nil); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("nil token line: err = %v, want ErrEmptyToken", err)
	}
	if _, err := ts.TruncatedLine(0, 11, 100, BreakLine, TruncationPlace(9)); !errors.Is(err, ErrUnknownTruncationPlace) {
		t.Errorf("bad place: err = %v, want ErrUnknownTruncationPlace", err)
	}
}

// Content that fits the width comes back untruncated, whatever the
// requested place.
func TestTruncatedLineNoTruncationNeeded(t *testing.T) {
	ts := newTestTypesetter(t, "Hello World")
	natural := ts.measureChars(0, 11)

	for _, place := range []TruncationPlace{TruncateStart, TruncateMiddle, TruncateEnd} {
		t.Run(place.String(), func(t *testing.T) {
			line, err := ts.TruncatedLineString(0, 11, natural, BreakLine, place, "...")
			if err != nil {
				t.Fatal(err)
			}
			if line.CharStart() != 0 || line.CharEnd() != 11 {
				t.Errorf("line covers [%d..%d), want untruncated [0..11)",
					line.CharStart(), line.CharEnd())
			}
			if diff := line.Width() - natural; diff > 0.01 || diff < -0.01 {
				t.Errorf("line width %v, want natural width %v", line.Width(), natural)
			}
		})
	}
}

func TestTruncatedLineWidthBound(t *testing.T) {
	ts := newTestTypesetter(t, "one two three four five")
	maxWidth := ts.measureChars(0, ts.Length()) * 0.6

	for _, place := range []TruncationPlace{TruncateStart, TruncateMiddle, TruncateEnd} {
		t.Run(place.String(), func(t *testing.T) {
			line, err := ts.TruncatedLineString(0, ts.Length(), maxWidth, BreakLine, place, "...")
			if err != nil {
				t.Fatal(err)
			}
			if line.Width() > maxWidth+0.01 {
				t.Errorf("truncated width %v exceeds max %v", line.Width(), maxWidth)
			}
		})
	}
}

func TestEndTruncatedLine(t *testing.T) {
	ts := newTestTypesetter(t, "one two three four five")
	maxWidth := ts.measureChars(0, ts.Length()) * 0.6

	line, err := ts.TruncatedLineString(0, ts.Length(), maxWidth, BreakLine, TruncateEnd, "...")
	if err != nil {
		t.Fatal(err)
	}

	if line.CharStart() != 0 {
		t.Errorf("CharStart() = %d, want 0", line.CharStart())
	}
	if line.CharEnd() >= ts.Length() {
		t.Errorf("CharEnd() = %d, want less than %d", line.CharEnd(), ts.Length())
	}
	// The kept text never ends in the whitespace the token replaced.
	if end := line.CharEnd(); unicode.IsSpace(rune(ts.Text()[end-1])) {
		t.Errorf("kept text ends in whitespace at %d", end-1)
	}
	// The token's runs sit at the visual end of the line.
	runs := line.Runs()
	if len(runs) < 2 {
		t.Fatalf("got %d runs, want kept text plus token", len(runs))
	}
	if last := runs[len(runs)-1]; last.CharEnd() > 3 {
		t.Errorf("last run covers [%d..%d), want token runs last",
			last.CharStart(), last.CharEnd())
	}
}

func TestStartTruncatedLine(t *testing.T) {
	ts := newTestTypesetter(t, "one two three four five")
	maxWidth := ts.measureChars(0, ts.Length()) * 0.6

	line, err := ts.TruncatedLineString(0, ts.Length(), maxWidth, BreakLine, TruncateStart, "...")
	if err != nil {
		t.Fatal(err)
	}

	if line.CharStart() <= 0 {
		t.Errorf("CharStart() = %d, want greater than 0", line.CharStart())
	}
	if line.CharEnd() != ts.Length() {
		t.Errorf("CharEnd() = %d, want %d", line.CharEnd(), ts.Length())
	}
	// The token's runs sit at the visual start of the line.
	runs := line.Runs()
	if len(runs) < 2 {
		t.Fatalf("got %d runs, want token plus kept text", len(runs))
	}
	if first := runs[0]; first.CharEnd() > 3 {
		t.Errorf("first run covers [%d..%d), want token runs first",
			first.CharStart(), first.CharEnd())
	}
}

func TestMiddleTruncatedLine(t *testing.T) {
	ts := newTestTypesetter(t, "aaaa bbbb cccc dddd")
	maxWidth := ts.measureChars(0, ts.Length()) * 0.55

	line, err := ts.TruncatedLineString(0, ts.Length(), maxWidth, BreakLine, TruncateMiddle, "|")
	if err != nil {
		t.Fatal(err)
	}

	if line.CharStart() != 0 || line.CharEnd() != ts.Length() {
		t.Errorf("line covers [%d..%d), want full [0..%d)",
			line.CharStart(), line.CharEnd(), ts.Length())
	}

	// Reconstruct the elision gap from the kept runs. The token run is
	// the single-character view produced from "|".
	text := []rune(ts.Text())
	firstKeptEnd, secondKeptStart := 0, ts.Length()
	for _, r := range line.Runs() {
		if r.CharEnd()-r.CharStart() == 1 && r.CharStart() == 0 && r.CharEnd() == 1 && r.Width() < ts.measureChars(0, 4) {
			continue // token run
		}
		if r.CharStart() == 0 && r.CharEnd() > firstKeptEnd {
			firstKeptEnd = r.CharEnd()
		}
		if r.CharEnd() == ts.Length() && r.CharStart() < secondKeptStart {
			secondKeptStart = r.CharStart()
		}
	}
	if firstKeptEnd == 0 || secondKeptStart == ts.Length() {
		t.Fatalf("could not identify kept pieces in runs %v", line.Runs())
	}
	if firstKeptEnd >= secondKeptStart {
		t.Fatalf("no gap: first piece ends at %d, second starts at %d", firstKeptEnd, secondKeptStart)
	}
	// No whitespace may abut the token on either side.
	if unicode.IsSpace(text[firstKeptEnd-1]) {
		t.Errorf("whitespace abuts token on the left at %d", firstKeptEnd-1)
	}
	if unicode.IsSpace(text[secondKeptStart]) {
		t.Errorf("whitespace abuts token on the right at %d", secondKeptStart)
	}
}

// The default token prefers the ellipsis character and falls back to
// three dots; either way it lays out as a non-empty line.
func TestDefaultTruncationToken(t *testing.T) {
	ts := newTestTypesetter(t, "one two three four five")
	maxWidth := ts.measureChars(0, ts.Length()) * 0.5

	line, err := ts.TruncatedLine(0, ts.Length(), maxWidth, BreakLine, TruncateEnd)
	if err != nil {
		t.Fatal(err)
	}
	if line.CharEnd() >= ts.Length() {
		t.Errorf("CharEnd() = %d, want truncation to occur", line.CharEnd())
	}
	if line.Width() > maxWidth+0.01 {
		t.Errorf("width %v exceeds max %v", line.Width(), maxWidth)
	}
}

func TestTruncatedLineCharacterMode(t *testing.T) {
	ts := newTestTypesetter(t, "abcdefghijklmnop")
	maxWidth := ts.measureChars(0, ts.Length()) * 0.5

	line, err := ts.TruncatedLineString(0, ts.Length(), maxWidth, BreakCharacter, TruncateEnd, "...")
	if err != nil {
		t.Fatal(err)
	}
	if line.Width() > maxWidth+0.01 {
		t.Errorf("width %v exceeds max %v", line.Width(), maxWidth)
	}
	// Character mode can cut inside the word, so most of the budget is
	// used rather than dropping to a coarser boundary.
	if line.CharEnd() < 4 {
		t.Errorf("CharEnd() = %d, want a cut several characters in", line.CharEnd())
	}
}
