package editor

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/glyphpost/buffer"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := m.gutterDigits()
	st := m.cfg.Style

	out := make([]string, 0, len(m.layout))
	for _, vr := range m.layout {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := st.LineNum
			if m.focused && vr.row == cursor.Row && vr.seg == 0 {
				numStyle = st.LineNumActive
			}
			num := fmt.Sprintf("%*s", digits, "")
			if vr.seg == 0 {
				num = fmt.Sprintf("%*d", digits, vr.row+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(st.Gutter.Render(" "))
		}

		for _, c := range vr.cells {
			span := buffer.Range{
				Start: buffer.Pos{Row: vr.row, Col: c.startCol},
				End:   buffer.Pos{Row: vr.row, Col: c.endCol},
			}
			switch {
			case m.focused && cursor == span.Start:
				sb.WriteString(st.Cursor.Render(c.text))
			case selOK && sel.Covers(span):
				sb.WriteString(st.Selection.Render(c.text))
			default:
				sb.WriteString(st.cell(c.text).Render(c.text))
			}
		}

		if m.focused && vr.last && cursor == (buffer.Pos{Row: vr.row, Col: vr.endCol}) {
			sb.WriteString(st.Cursor.Render(" "))
		}

		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

func (m *Model) gutterDigits() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return len(fmt.Sprint(m.buf.LineCount()))
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return m.gutterDigits() + 1
}

func (m *Model) contentWidth() int {
	return max(m.viewport.Width-m.viewport.Style.GetHorizontalFrameSize()-m.gutterWidth(), 0)
}
