// Package grapheme locates user-perceived character boundaries in rune
// slices so that caret movement never lands inside an emoji sequence or
// between a letter and its combining mark.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Boundaries returns the rune offsets at which clusters start in line,
// followed by len(line). An empty line yields [0].
func Boundaries(line []rune) []int {
	out := []int{0}
	if len(line) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(line))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the start of the cluster that ends at or contains col.
func Prev(line []rune, col int) int {
	if col <= 0 {
		return 0
	}
	prev := 0
	for _, b := range Boundaries(line) {
		if b >= col {
			return prev
		}
		prev = b
	}
	return prev
}

// Next returns the end of the cluster that starts at or contains col.
func Next(line []rune, col int) int {
	if col >= len(line) {
		return len(line)
	}
	for _, b := range Boundaries(line) {
		if b > col {
			return b
		}
	}
	return len(line)
}

// Snap moves col left to the nearest cluster boundary.
func Snap(line []rune, col int) int {
	if col <= 0 {
		return 0
	}
	if col >= len(line) {
		return len(line)
	}
	snapped := 0
	for _, b := range Boundaries(line) {
		if b > col {
			break
		}
		snapped = b
	}
	return snapped
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster []rune) bool {
	if len(cluster) == 0 {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
