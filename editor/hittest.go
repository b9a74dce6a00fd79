package editor

import "github.com/iw2rmb/glyphpost/buffer"

// screenToDocPos maps a viewport-relative cell to a document position.
// Clicks past the end of a row land at the row's end; clicks inside a wide
// cluster land at its start.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	if len(m.layout) == 0 {
		return buffer.Pos{}
	}
	vi := min(max(m.viewport.YOffset+y, 0), len(m.layout)-1)
	vr := m.layout[vi]

	x -= m.gutterWidth()
	if x < 0 {
		return buffer.Pos{Row: vr.row, Col: vr.startCol}
	}

	acc := 0
	for _, c := range vr.cells {
		if x < acc+c.width {
			return buffer.Pos{Row: vr.row, Col: c.startCol}
		}
		acc += c.width
	}
	if !vr.last && len(vr.cells) > 0 {
		return buffer.Pos{Row: vr.row, Col: vr.cells[len(vr.cells)-1].startCol}
	}
	return buffer.Pos{Row: vr.row, Col: vr.endCol}
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = min(max(x, 0), m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = min(max(y, 0), m.viewport.Height-1)
	}
	return x, y
}
