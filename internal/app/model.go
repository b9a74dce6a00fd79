package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/glyphpost/editor"
	"github.com/iw2rmb/glyphpost/glyph"
	"github.com/iw2rmb/glyphpost/internal/config"
	"github.com/iw2rmb/glyphpost/internal/logger"
)

// wideLayout is the minimum width for side-by-side panes.
const wideLayout = 80

type Options struct {
	// Clipboard backs copy-post and the editor's copy/cut/paste. Nil
	// makes every clipboard action fail with ErrClipboardUnavailable.
	Clipboard editor.Clipboard
	Logger    logger.Logger
	// Now is used for toast timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Model is the stylizer screen.
type Model struct {
	cfg  *config.Config
	log  logger.Logger
	clip editor.Clipboard
	now  func() time.Time

	editor editor.Model
	keys   KeyMap
	help   help.Model
	picker emojiPicker
	toasts toastStack
	notes  *clipboardNotes

	copied    bool
	copiedSeq int

	width, height int
}

func New(cfg *config.Config, opts Options) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	notes := &clipboardNotes{}
	m := Model{
		cfg:    cfg,
		log:    logger.Component(opts.Logger, "app"),
		clip:   opts.Clipboard,
		now:    opts.Now,
		keys:   NewKeyMap(cfg.Keys),
		help:   help.New(),
		picker: newEmojiPicker(cfg.Emoji.Palette),
		notes:  notes,
	}

	edCfg := editor.Config{
		Text:             cfg.Editor.InitialText,
		ShowLineNums:     cfg.Editor.ShowLineNumbers,
		Style:            editor.DefaultStyle(),
		TabWidth:         cfg.Editor.TabWidth,
		SoftWrap:         true,
		HistoryLimit:     cfg.Editor.HistoryLimit,
		Clipboard:        opts.Clipboard,
		OnClipboardError: notes.add,
	}
	m.editor = editor.New(edCfg)
	return m
}

// Editor exposes the editor pane.
func (m Model) Editor() editor.Model { return m.editor }

// Text returns the post text.
func (m Model) Text() string { return m.editor.Buffer().Text() }

// Toasts returns the visible toasts, newest first.
func (m Model) Toasts() []Toast {
	out := make([]Toast, len(m.toasts.toasts))
	copy(out, m.toasts.toasts)
	return out
}

// Copied reports whether the copied indicator is showing.
func (m Model) Copied() bool { return m.copied }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.resize(), nil

	case toastTickMsg:
		cmd := m.toasts.tick(msg.Time)
		return m, cmd

	case copyResultMsg:
		return m.handleCopyResult(msg)

	case copiedResetMsg:
		if msg.seq == m.copiedSeq {
			m.copied = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.picker.open {
			var choice string
			m.picker, choice = m.picker.Update(msg)
			if choice != "" {
				return m.insertEmoji(choice)
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Debug("quit requested")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Bold):
			return m.applyStyle(glyph.Bold)
		case key.Matches(msg, m.keys.Italic):
			return m.applyStyle(glyph.Italic)
		case key.Matches(msg, m.keys.BoldItalic):
			return m.applyStyle(glyph.BoldItalic)
		case key.Matches(msg, m.keys.Clear):
			return m.clearStyle()
		case key.Matches(msg, m.keys.Emoji):
			m.picker = m.picker.Open()
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, copyCmd(m.clip, m.Text())
		}

	case tea.MouseMsg:
		local, ok := m.editorMouse(msg)
		if !ok {
			return m, nil
		}
		return m.updateEditor(local)
	}

	return m.updateEditor(msg)
}

func (m Model) updateEditor(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	notes := m.drainClipboardNotes()
	return m, tea.Batch(cmd, notes)
}

// The editor's first content cell sits below the one-line header and inside
// the pane border. The pane is top-left in both layouts.
const (
	editorOriginX = 1
	editorOriginY = 2
)

// editorMouse moves msg into editor-local cells. Presses (wheel included)
// outside the editor are dropped; motion and release pass through so a drag
// that leaves the pane keeps extending the selection.
func (m Model) editorMouse(msg tea.MouseMsg) (tea.MouseMsg, bool) {
	msg.X -= editorOriginX
	msg.Y -= editorOriginY
	if msg.Action != tea.MouseActionPress {
		return msg, true
	}
	inside := msg.X >= 0 && msg.X < m.editor.Width() && msg.Y >= 0 && msg.Y < m.editor.Height()
	return msg, inside
}

func (m Model) resize() Model {
	m.help.Width = m.width
	bodyH := max(m.height-2, 3)
	if m.width >= wideLayout {
		m.editor = m.editor.SetSize(max(m.width/2-2, 1), max(bodyH-2, 1))
	} else {
		m.editor = m.editor.SetSize(max(m.width-2, 1), max(bodyH/2-2, 1))
	}
	return m
}

func (m Model) View() string {
	header := m.headerView()
	footer := m.help.View(m.keys)

	bodyH := max(m.height-2, 3)
	editorPane := focusedPaneStyle.Render(m.editor.View())

	var side string
	if m.picker.open {
		side = m.picker.View()
	} else if m.width >= wideLayout {
		side = renderPreview(m.cfg.Preview, m.Text(), m.width-m.width/2, bodyH)
	} else {
		side = renderPreview(m.cfg.Preview, m.Text(), m.width, bodyH-bodyH/2)
	}

	var body string
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, editorPane, side)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, editorPane, side)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// headerView keeps the copy indicator visible next to any toast so it lasts
// its own reset delay rather than the toast's.
func (m Model) headerView() string {
	head := titleStyle.Render("glyphpost") + "  "
	if m.copied {
		head += copiedStyle.Render("✓ Copied!") + "  "
	}
	if t, ok := m.toasts.newest(); ok {
		return head + renderToast(t, max(m.width-lipgloss.Width(head), 1))
	}
	if m.copied {
		return head
	}
	return head + mutedStyle.Render("select text, then style it")
}
