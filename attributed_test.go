package typeset

import (
	"errors"
	"testing"
)

func TestNewAttributedTextEmpty(t *testing.T) {
	if _, err := NewAttributedText(""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("err = %v, want ErrEmptyText", err)
	}
}

func TestAttributedTextSpanErrors(t *testing.T) {
	tf := testTypeface(t)
	src, err := NewAttributedText("hello")
	if err != nil {
		t.Fatal(err)
	}

	if err := src.SetTypeface(0, 3, nil); !errors.Is(err, ErrNilTypeface) {
		t.Errorf("nil typeface: err = %v, want ErrNilTypeface", err)
	}

	var rangeErr *RangeError
	for _, r := range [][2]int{{-1, 3}, {0, 6}, {2, 2}, {4, 1}} {
		if err := src.SetTypeface(r[0], r[1], tf); !errors.As(err, &rangeErr) {
			t.Errorf("SetTypeface(%d, %d): err = %v, want RangeError", r[0], r[1], err)
		}
		if err := src.SetSize(r[0], r[1], 16); !errors.As(err, &rangeErr) {
			t.Errorf("SetSize(%d, %d): err = %v, want RangeError", r[0], r[1], err)
		}
	}
}

func TestAttributedTextLaterSpanWins(t *testing.T) {
	src, err := NewAttributedText("hello")
	if err != nil {
		t.Fatal(err)
	}
	if err := src.SetSize(0, 5, 16); err != nil {
		t.Fatal(err)
	}
	if err := src.SetSize(2, 4, 20); err != nil {
		t.Fatal(err)
	}

	for i, want := range []float64{16, 16, 20, 20, 16} {
		got, ok := src.sizeAt(i)
		if !ok || got != want {
			t.Errorf("sizeAt(%d) = %v (%v), want %v", i, got, ok, want)
		}
	}
}

func TestAttributedTextSizeRangesPartition(t *testing.T) {
	src, err := NewAttributedText("hello")
	if err != nil {
		t.Fatal(err)
	}
	if err := src.SetSize(0, 5, 16); err != nil {
		t.Fatal(err)
	}
	if err := src.SetSize(2, 4, 20); err != nil {
		t.Fatal(err)
	}

	type span struct {
		start, end int
		size       float64
	}
	var got []span
	err = src.eachSizeRange(0, 5, func(start, end int, size float64, ok bool) error {
		if !ok {
			t.Errorf("range [%d..%d) reported unannotated", start, end)
		}
		got = append(got, span{start, end, size})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []span{{0, 2, 16}, {2, 4, 20}, {4, 5, 16}}
	if len(got) != len(want) {
		t.Fatalf("got %d ranges %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAttributedTextUnannotatedRanges(t *testing.T) {
	tf := testTypeface(t)
	src, err := NewAttributedText("hello")
	if err != nil {
		t.Fatal(err)
	}
	if err := src.SetTypeface(1, 3, tf); err != nil {
		t.Fatal(err)
	}

	if got := src.typefaceAt(0); got != nil {
		t.Errorf("typefaceAt(0) = %v, want nil", got)
	}
	if got := src.typefaceAt(2); got != tf {
		t.Errorf("typefaceAt(2) = %v, want the annotated typeface", got)
	}
	if _, ok := src.sizeAt(0); ok {
		t.Error("sizeAt(0) reported an annotation on unannotated text")
	}
}

func TestTypesetterSnapshotsSource(t *testing.T) {
	tf := testTypeface(t)
	src, err := NewAttributedText("hello")
	if err != nil {
		t.Fatal(err)
	}
	if err := src.SetTypeface(0, 5, tf); err != nil {
		t.Fatal(err)
	}

	ts, err := NewAttributed(src)
	if err != nil {
		t.Fatal(err)
	}

	// Annotations added after construction must not leak in.
	if err := src.SetSize(0, 5, 99); err != nil {
		t.Fatal(err)
	}
	if _, ok := ts.Source().sizeAt(0); ok {
		t.Error("later annotation visible through the typesetter snapshot")
	}
}
