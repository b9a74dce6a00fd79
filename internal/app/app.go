package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/glyphpost/internal/config"
	"github.com/iw2rmb/glyphpost/internal/logger"
)

// Run starts the stylizer and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	m := New(cfg, Options{Clipboard: SystemClipboard{}, Logger: log})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	log.Info("stylizer started")
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info("stylizer interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run stylizer: %w", err)
	}
	if fm, ok := final.(Model); ok {
		log.Info("stylizer exited", "runes", fm.editor.Buffer().Len())
	}
	return nil
}
