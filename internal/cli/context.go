package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/app"
)

// ErrNoApp means a command ran without the root command's setup
var ErrNoApp = errors.New("application not initialized")

type appKey struct{}

// WithApp returns a context carrying a for commands to fetch
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// AppFromContext returns the App stored by WithApp
func AppFromContext(ctx context.Context) (*app.App, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(appKey{}).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return a, nil
}

// Prepare builds the formatter for cmd and fetches the App from its context
func Prepare(cmd *cobra.Command) (*OutputFormatter, *app.App, error) {
	formatter := NewFormatter(cmd)
	a, err := AppFromContext(cmd.Context())
	if err != nil {
		return formatter, nil, formatter.Fail(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	return formatter, a, nil
}
