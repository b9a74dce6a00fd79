package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pickerColumns = 6

type pickerKeyMap struct {
	Left, Right, Up, Down key.Binding
	Choose, Close         key.Binding
}

var pickerKeys = pickerKeyMap{
	Left:   key.NewBinding(key.WithKeys("left", "h")),
	Right:  key.NewBinding(key.WithKeys("right", "l", "tab")),
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Choose: key.NewBinding(key.WithKeys("enter", " ")),
	Close:  key.NewBinding(key.WithKeys("esc")),
}

// emojiPicker is a grid over the configured palette.
type emojiPicker struct {
	palette []string
	index   int
	open    bool
}

func newEmojiPicker(palette []string) emojiPicker {
	return emojiPicker{palette: palette}
}

func (p emojiPicker) Open() emojiPicker {
	if len(p.palette) > 0 {
		p.open = true
	}
	return p
}

func (p emojiPicker) Close() emojiPicker {
	p.open = false
	return p
}

// Update handles a key while the picker is open and reports the chosen
// emoji, if any. Choosing closes the picker.
func (p emojiPicker) Update(msg tea.KeyMsg) (emojiPicker, string) {
	n := len(p.palette)
	if !p.open || n == 0 {
		return p, ""
	}
	switch {
	case key.Matches(msg, pickerKeys.Close):
		p.open = false
	case key.Matches(msg, pickerKeys.Choose):
		p.open = false
		return p, p.palette[p.index]
	case key.Matches(msg, pickerKeys.Left):
		p.index = (p.index - 1 + n) % n
	case key.Matches(msg, pickerKeys.Right):
		p.index = (p.index + 1) % n
	case key.Matches(msg, pickerKeys.Up):
		if p.index-pickerColumns >= 0 {
			p.index -= pickerColumns
		}
	case key.Matches(msg, pickerKeys.Down):
		if p.index+pickerColumns < n {
			p.index += pickerColumns
		}
	}
	return p, ""
}

func (p emojiPicker) View() string {
	if !p.open {
		return ""
	}
	rows := make([]string, 0, (len(p.palette)+pickerColumns-1)/pickerColumns)
	for start := 0; start < len(p.palette); start += pickerColumns {
		end := min(start+pickerColumns, len(p.palette))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			st := pickerCellStyle
			if i == p.index {
				st = pickerSelectedStyle
			}
			cells = append(cells, st.Render(p.palette[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	body := strings.Join(rows, "\n")
	hint := mutedStyle.Render("←→↑↓ move · enter insert · esc close")
	return paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, hint))
}
