package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glyphpost/buffer"
	"github.com/iw2rmb/glyphpost/glyph"
)

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

func TestUpdate_TypingAndBackspace(t *testing.T) {
	m := New(Config{})
	m = m.SetSize(20, 3)

	m = press(m, "h", "i", " ", "👋", "backspace", "enter", "x")
	if got, want := m.Buffer().Text(), "hi \nx"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestUpdate_ShiftSelectAndSelectAll(t *testing.T) {
	m := New(Config{Text: "hello"})
	m = m.SetSize(20, 1)

	m = press(m, "right", "shift+right", "shift+right")
	if s, ok := m.Buffer().SelectedText(); !ok || s != "el" {
		t.Fatalf("selected=%q ok=%v, want el", s, ok)
	}
	start, end, ok := m.Buffer().SelectionOffsets()
	if !ok || start != 1 || end != 3 {
		t.Fatalf("offsets=(%d,%d,%v), want (1,3,true)", start, end, ok)
	}

	m = press(m, "ctrl+a")
	if s, _ := m.Buffer().SelectedText(); s != "hello" {
		t.Fatalf("select all=%q", s)
	}
}

func TestUpdate_PasteNormalizesNewlines(t *testing.T) {
	m := New(Config{})
	m = m.SetSize(20, 3)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true})
	if got, want := m.Buffer().Text(), "a\nb\nc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestUpdate_ClipboardCopyCutPaste(t *testing.T) {
	cb := &stubClipboard{}
	m := New(Config{Text: "one two", Clipboard: cb})
	m = m.SetSize(20, 1)

	m.Buffer().SetSelection(buffer.Range{Start: buffer.Pos{Row: 0, Col: 0}, End: buffer.Pos{Row: 0, Col: 3}})
	m = press(m, "ctrl+c")
	if cb.text != "one" {
		t.Fatalf("clipboard=%q, want one", cb.text)
	}
	if got := m.Buffer().Text(); got != "one two" {
		t.Fatalf("copy mutated text: %q", got)
	}

	m = press(m, "ctrl+x")
	if got, want := m.Buffer().Text(), " two"; got != want {
		t.Fatalf("after cut text=%q, want %q", got, want)
	}

	m.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 4})
	m = press(m, "ctrl+v")
	if got, want := m.Buffer().Text(), " twoone"; got != want {
		t.Fatalf("after paste text=%q, want %q", got, want)
	}
}

func TestUpdate_ClipboardErrorsReported(t *testing.T) {
	boom := errors.New("boom")
	cb := &stubClipboard{readErr: boom, writeErr: boom}

	var ops []string
	m := New(Config{
		Text:             "keep",
		Clipboard:        cb,
		OnClipboardError: func(op string, err error) { ops = append(ops, op) },
	})
	m = m.SetSize(20, 1)
	m = press(m, "ctrl+a", "ctrl+x", "ctrl+v")

	if got := m.Buffer().Text(); got != "keep" {
		t.Fatalf("failed cut must keep text, got %q", got)
	}
	if len(ops) != 2 || ops[0] != "cut" || ops[1] != "paste" {
		t.Fatalf("ops=%v, want [cut paste]", ops)
	}
}

func TestUpdate_ReadOnlyIgnoresEdits(t *testing.T) {
	cb := &stubClipboard{text: "zz"}
	m := New(Config{Text: "abc", ReadOnly: true, Clipboard: cb})
	m = m.SetSize(20, 1)

	m = press(m, "x", "backspace", "enter", "ctrl+v", "ctrl+a", "ctrl+x")
	if got := m.Buffer().Text(); got != "abc" {
		t.Fatalf("text=%q, want abc", got)
	}
	if cb.text != "abc" {
		t.Fatalf("cut in read-only mode should copy, clipboard=%q", cb.text)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "abc"})
	m = m.Blur()
	m = press(m, "x")
	if got := m.Buffer().Text(); got != "abc" {
		t.Fatalf("text=%q, want abc", got)
	}
}

func TestUpdate_HostStyleThenUndo(t *testing.T) {
	m := New(Config{Text: "go 🚀 now"})
	m = m.SetSize(30, 1)

	m.Buffer().SetSelectionOffsets(5, 8)
	if _, err := m.Buffer().TransformSelection(glyph.Styler(glyph.Bold)); err != nil {
		t.Fatalf("TransformSelection: %v", err)
	}
	m = m.Refresh()

	if got, want := m.Buffer().Text(), "go 🚀 𝐧𝐨𝐰"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	start, end, ok := m.Buffer().SelectionOffsets()
	if !ok || start != 5 || end != 8 {
		t.Fatalf("offsets=(%d,%d,%v), want (5,8,true)", start, end, ok)
	}
	if got := viewLines(m)[0]; got != "go 🚀 𝐧𝐨𝐰" {
		t.Fatalf("view=%q", got)
	}

	m = press(m, "ctrl+z")
	if got := m.Buffer().Text(); got != "go 🚀 now" {
		t.Fatalf("after undo text=%q", got)
	}
	m = press(m, "ctrl+y")
	if got := m.Buffer().Text(); got != "go 🚀 𝐧𝐨𝐰" {
		t.Fatalf("after redo text=%q", got)
	}
}
