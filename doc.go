// Package typeset performs paragraph-level text layout.
//
// A Typesetter is built once from an attributed character sequence
// (per-range typeface and size annotations). Construction resolves the
// bidirectional paragraph structure, shapes every homogeneous run into
// glyphs, and classifies every character position for line and
// grapheme breaking. The resulting state is immutable, so all query
// operations are safe for concurrent use:
//
//   - SuggestForwardBreak / SuggestBackwardBreak locate width-fitting
//     break points.
//   - SimpleLine assembles a visually ordered line for a range.
//   - TruncatedLine elides overflowing content behind an ellipsis-like
//     token at the start, middle, or end of the line.
//   - Frame greedily packs lines into a bounded rectangle.
//
// The package stops at read-only glyph views (ids, offsets, advances);
// rasterization and painting belong to the caller.
package typeset
