package launcher

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/logging"
	"github.com/thenoetrevino/tasklane/internal/tui"
)

// Launch runs the TUI over a until the user quits or the process is
// interrupted
func Launch(ctx context.Context, a *app.App) error {
	logger := logging.Component("launcher")

	// Cancel on SIGINT/SIGTERM for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.New(ctx, a.Store, a.Config)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	logger.Info().Str("view", a.Config.DefaultView).Msg("starting tui")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Msg("tui exited")
	return nil
}
