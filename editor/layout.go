package editor

import (
	"strings"

	"github.com/iw2rmb/glyphpost/buffer"
	"github.com/iw2rmb/glyphpost/internal/grapheme"
)

// cell is one grapheme cluster placed on screen.
type cell struct {
	startCol, endCol int // rune columns in the logical line
	text             string
	width            int
}

// visualRow is one screen row: a logical line, or a wrapped segment of one.
type visualRow struct {
	row      int
	seg      int
	last     bool // last segment of its logical line
	cells    []cell
	startCol int
	endCol   int
}

func buildLayout(b *buffer.Buffer, width, tabWidth int, wrap bool) []visualRow {
	if b == nil {
		return nil
	}
	out := make([]visualRow, 0, b.LineCount())
	for row := 0; row < b.LineCount(); row++ {
		line := b.Line(row)
		bounds := grapheme.Boundaries(line)

		cur := visualRow{row: row}
		x := 0
		for i := 0; i+1 < len(bounds); i++ {
			start, end := bounds[i], bounds[i+1]
			text := string(line[start:end])
			w := clusterWidth(text, x, tabWidth)
			if wrap && width > 0 && x+w > width && len(cur.cells) > 0 {
				out = append(out, cur)
				cur = visualRow{row: row, seg: cur.seg + 1, startCol: start, endCol: start}
				x = 0
				w = clusterWidth(text, x, tabWidth)
			}
			if text == "\t" {
				text = strings.Repeat(" ", w)
			}
			cur.cells = append(cur.cells, cell{startCol: start, endCol: end, text: text, width: w})
			cur.endCol = end
			x += w
		}
		cur.last = true
		out = append(out, cur)
	}
	return out
}

// visualIndexFor returns the index of the visual row that displays p.
func visualIndexFor(layout []visualRow, p buffer.Pos) int {
	for i, vr := range layout {
		if vr.row != p.Row {
			continue
		}
		if p.Col < vr.endCol || vr.last {
			return i
		}
	}
	return max(len(layout)-1, 0)
}
