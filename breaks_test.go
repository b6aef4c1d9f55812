package typeset

import "testing"

func TestResolveBreakRecord(t *testing.T) {
	record := resolveBreakRecord([]rune("ab cd"))

	// Every ASCII character is a one-rune grapheme.
	for i, bits := range record {
		if bits&breakCharForward == 0 {
			t.Errorf("index %d missing grapheme forward flag", i)
		}
		if bits&breakCharBackward == 0 {
			t.Errorf("index %d missing grapheme backward flag", i)
		}
	}

	// Line segments are "ab " and "cd": forward flags on their last
	// characters, backward flags on their first.
	if record[2]&breakLineForward == 0 {
		t.Error("index 2 missing line forward flag")
	}
	if record[4]&breakLineForward == 0 {
		t.Error("index 4 missing line forward flag")
	}
	if record[0]&breakLineBackward == 0 {
		t.Error("index 0 missing line backward flag")
	}
	if record[3]&breakLineBackward == 0 {
		t.Error("index 3 missing line backward flag")
	}
	if record[1]&breakLineForward != 0 {
		t.Error("index 1 has a line forward flag inside a word")
	}

	// Paragraph flags are stamped during run resolution, not here.
	for i, bits := range record {
		if bits&(breakParagraphForward|breakParagraphBackward) != 0 {
			t.Errorf("index %d has a paragraph flag before run resolution", i)
		}
	}
}

func TestBreakRecordCombiningMark(t *testing.T) {
	record := resolveBreakRecord([]rune("ae\u0301b"))

	// The combining mark clusters with its base, so no grapheme ends at
	// the base character.
	if record[1]&breakCharForward != 0 {
		t.Error("grapheme forward flag inside the e+accent cluster")
	}
	if record[2]&breakCharBackward != 0 {
		t.Error("grapheme backward flag on the combining mark")
	}
	if record[2]&breakCharForward == 0 {
		t.Error("cluster end missing grapheme forward flag")
	}
}

func TestWhitespaceHelpers(t *testing.T) {
	text := []rune("  ab  ")

	tests := []struct {
		name             string
		start, end       int
		leading, trailing int
	}{
		{"full", 0, 6, 2, 4},
		{"no whitespace", 2, 4, 2, 4},
		{"all whitespace", 4, 6, 6, 4},
		{"empty", 3, 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := leadingWhitespaceEnd(text, tt.start, tt.end); got != tt.leading {
				t.Errorf("leadingWhitespaceEnd = %d, want %d", got, tt.leading)
			}
			if got := trailingWhitespaceStart(text, tt.start, tt.end); got != tt.trailing {
				t.Errorf("trailingWhitespaceStart = %d, want %d", got, tt.trailing)
			}
		})
	}
}
