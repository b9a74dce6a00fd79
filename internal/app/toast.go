package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastKind represents the type of toast notification.
type ToastKind int

const (
	ToastKindStatus ToastKind = iota
	ToastKindError
	ToastKindSuccess
)

const (
	DefaultToastDuration = 4 * time.Second
	ErrorToastDuration   = 8 * time.Second

	maxToasts         = 3
	toastTickInterval = 250 * time.Millisecond
)

// Toast is a non-blocking notice that auto-dismisses.
type Toast struct {
	ID          int
	Title       string
	Description string
	Kind        ToastKind
	CreatedAt   time.Time
	Duration    time.Duration
}

func (t Toast) expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

type toastTickMsg struct {
	Time time.Time
}

func toastTickCmd() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg{Time: t}
	})
}

// toastStack keeps the newest toast first.
type toastStack struct {
	toasts  []Toast
	nextID  int
	ticking bool
}

// push adds t and returns a tick command when none is pending.
func (s *toastStack) push(t Toast) tea.Cmd {
	s.nextID++
	t.ID = s.nextID
	s.toasts = append([]Toast{t}, s.toasts...)
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[:maxToasts]
	}
	if s.ticking {
		return nil
	}
	s.ticking = true
	return toastTickCmd()
}

// tick drops expired toasts and keeps ticking while any remain.
func (s *toastStack) tick(now time.Time) tea.Cmd {
	active := s.toasts[:0]
	for _, t := range s.toasts {
		if !t.expired(now) {
			active = append(active, t)
		}
	}
	s.toasts = active
	if len(s.toasts) == 0 {
		s.ticking = false
		return nil
	}
	return toastTickCmd()
}

func (s toastStack) newest() (Toast, bool) {
	if len(s.toasts) == 0 {
		return Toast{}, false
	}
	return s.toasts[0], true
}

func renderToast(t Toast, width int) string {
	color := colorStatus
	icon := "●"
	switch t.Kind {
	case ToastKindError:
		color, icon = colorError, "✗"
	case ToastKindSuccess:
		color, icon = colorSuccess, "✓"
	}

	head := lipgloss.NewStyle().Bold(true).Foreground(color).Render(icon + " " + t.Title)
	line := head
	if t.Description != "" {
		line += " " + mutedStyle.Render(t.Description)
	}
	return lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(line)
}
