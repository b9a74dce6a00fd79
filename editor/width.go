package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// clusterWidth returns the terminal-cell width of one grapheme cluster
// starting at visual column visualCol.
func clusterWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := max(runewidth.StringWidth(text), 0)
	if w == 0 {
		// runewidth reports 0 for some emoji sequences that terminals draw wide.
		w = max(uniseg.StringWidth(text), w)
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - visualCol%tabWidth
}
