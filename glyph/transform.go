package glyph

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Transform styles every mappable rune in s and keeps all others.
// The result has exactly as many runes as s.
func Transform(s string, v Variant) string {
	if s == "" {
		return ""
	}
	var sb strings.Builder
	// Styled glyphs are 4 bytes; ASCII letters are 1.
	sb.Grow(len(s) * utf8.UTFMax)
	for r := range All(s, v) {
		sb.WriteRune(r)
	}
	return sb.String()
}

// TransformRunes is Transform over a rune slice. The input is not modified.
func TransformRunes(rs []rune, v Variant) []rune {
	if len(rs) == 0 {
		return []rune{}
	}
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = Map(r, v)
	}
	return out
}

// All yields the styled runes of s lazily, one per input rune.
// Invalid UTF-8 yields utf8.RuneError for each bad byte, as range does.
func All(s string, v Variant) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(Map(r, v)) {
				return
			}
		}
	}
}

// Plain replaces every styled glyph in s with its plain source rune.
func Plain(s string) string {
	if s == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		sb.WriteRune(Unstyle(r))
	}
	return sb.String()
}

// Styler returns Transform bound to v, in the shape buffer.TransformSelection
// and similar string rewriters expect.
func Styler(v Variant) func(string) string {
	return func(s string) string { return Transform(s, v) }
}
