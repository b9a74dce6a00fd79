package app

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glyphpost/buffer"
	"github.com/iw2rmb/glyphpost/editor"
	"github.com/iw2rmb/glyphpost/glyph"
)

// copiedResetDelay is how long the copied indicator stays on.
const copiedResetDelay = 3 * time.Second

type copyResultMsg struct {
	err   error
	runes int
}

type copiedResetMsg struct {
	seq int
}

func (m Model) newToast(kind ToastKind, title, desc string) Toast {
	d := DefaultToastDuration
	if kind == ToastKindError {
		d = ErrorToastDuration
	}
	return Toast{Title: title, Description: desc, Kind: kind, CreatedAt: m.now(), Duration: d}
}

func (m Model) applyStyle(v glyph.Variant) (tea.Model, tea.Cmd) {
	sel, _ := m.editor.Buffer().SelectedText()
	next, cmd, ok := m.transformSelection(v.String(), glyph.Styler(v))
	if !ok || !next.cfg.Preview.ShowDigitsHint || glyph.HasDigits(v) || !strings.ContainsAny(sel, "0123456789") {
		return next, cmd
	}
	hint := next.toasts.push(next.newToast(ToastKindStatus, "Digits stay plain", fmt.Sprintf("There are no %s digit glyphs.", v)))
	return next, tea.Batch(cmd, hint)
}

func (m Model) clearStyle() (tea.Model, tea.Cmd) {
	next, cmd, _ := m.transformSelection("clear", glyph.Plain)
	return next, cmd
}

// transformSelection rewrites the selection with fn and reselects the result.
func (m Model) transformSelection(action string, fn func(string) string) (Model, tea.Cmd, bool) {
	buf := m.editor.Buffer()
	_, err := buf.TransformSelection(fn)
	if errors.Is(err, buffer.ErrNoSelection) {
		m.log.Debug("style action without selection", "action", action)
		cmd := m.toasts.push(m.newToast(ToastKindError, "No text selected", "Please select the text you want to style."))
		return m, cmd, false
	}
	if err != nil {
		m.log.Error("style action failed", err, "action", action)
		return m, nil, false
	}

	m.editor = m.editor.Refresh()
	start, end, _ := buf.SelectionOffsets()
	m.log.Debug("selection styled", "action", action, "start", start, "end", end)
	return m, nil, true
}

func (m Model) insertEmoji(e string) (tea.Model, tea.Cmd) {
	buf := m.editor.Buffer()
	buf.InsertText(e)
	m.editor = m.editor.Refresh()
	start, _, _ := buf.SelectionOffsets()
	m.log.Debug("emoji inserted", "emoji", e, "caret", start)
	return m, nil
}

func copyCmd(clip editor.Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		if clip == nil {
			return copyResultMsg{err: ErrClipboardUnavailable}
		}
		return copyResultMsg{err: clip.WriteText(text), runes: utf8.RuneCountInString(text)}
	}
}

func (m Model) handleCopyResult(msg copyResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("copy to clipboard failed", msg.err)
		cmd := m.toasts.push(m.newToast(ToastKindError, "Failed to copy", "Could not copy text to clipboard."))
		return m, cmd
	}

	m.log.Info("post copied", "runes", msg.runes)
	m.copied = true
	m.copiedSeq++
	seq := m.copiedSeq
	reset := tea.Tick(copiedResetDelay, func(time.Time) tea.Msg { return copiedResetMsg{seq: seq} })
	toast := m.toasts.push(m.newToast(ToastKindSuccess, "Copied to clipboard!", "Your styled post is ready to be pasted."))
	return m, tea.Batch(reset, toast)
}

// clipboardNotes collects editor clipboard failures reported from inside
// editor.Update so they can become toasts afterwards.
type clipboardNotes struct {
	pending []clipboardNote
}

type clipboardNote struct {
	op  string
	err error
}

func (n *clipboardNotes) add(op string, err error) {
	n.pending = append(n.pending, clipboardNote{op: op, err: err})
}

func (m *Model) drainClipboardNotes() tea.Cmd {
	if m.notes == nil || len(m.notes.pending) == 0 {
		return nil
	}
	var cmds []tea.Cmd
	for _, n := range m.notes.pending {
		m.log.Error("clipboard "+n.op+" failed", n.err)
		cmds = append(cmds, m.toasts.push(m.newToast(ToastKindError, "Clipboard error", "Could not "+n.op+" text.")))
	}
	m.notes.pending = nil
	return tea.Batch(cmds...)
}
