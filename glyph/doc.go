// Package glyph rewrites plain Latin text into Unicode look-alike glyphs.
//
// Styling is a per-rune substitution into the Mathematical Alphanumeric
// Symbols block. Only A-Z, a-z and, where the style has them, 0-9 are
// mapped. Every other rune, including glyphs that are already styled,
// passes through unchanged, so output always has the same number of runes
// as input.
//
// All tables are built once at package initialization and never mutated;
// every function in this package is safe for concurrent use.
package glyph
