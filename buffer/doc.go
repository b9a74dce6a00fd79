// Package buffer implements the document model behind the post editor.
//
// Coordinates are 0-based (Row, Col) in runes (Unicode code points), never in
// bytes or UTF-16 units. Ranges are half-open: [Start, End).
//
// Styled glyphs and most emoji sit outside the Basic Multilingual Plane, so
// a UTF-16 collaborator sees them as two units. Offsets crossing that
// boundary go through PosFromUTF16Offset and UTF16OffsetFromPos, which
// refuse offsets that split a surrogate pair.
package buffer
