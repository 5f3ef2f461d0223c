package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/logging"
	"github.com/thenoetrevino/tasklane/internal/persist"
	"github.com/thenoetrevino/tasklane/internal/storage"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// App holds the storage stack and the store, and is the one object the TUI
// and CLI are handed.
type App struct {
	Config  *config.Config
	Adapter *persist.Adapter
	Store   *store.Store

	kv     storage.KV
	logger zerolog.Logger
}

// New opens the configured backend and rehydrates the store from it
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{logger: logging.Component("app")}
	for _, opt := range opts {
		opt(ac)
	}

	kv := ac.kv
	if kv == nil {
		var err error
		kv, err = storage.Open(ctx, storage.Options{
			Backend: cfg.Storage.Backend,
			DataDir: cfg.Storage.DataDir,
		})
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
	}

	adapter := persist.New(kv, persist.WithLogger(logging.Component("persist")))

	storeOpts := append([]store.Option{
		store.WithDefaultCategory(cfg.DefaultCategory),
		store.WithLogger(logging.Component("store")),
	}, ac.storeOpts...)

	st, err := store.Open(ctx, adapter, storeOpts...)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	ac.logger.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("data_dir", cfg.Storage.DataDir).
		Msg("app initialized")

	return &App{
		Config:  cfg,
		Adapter: adapter,
		Store:   st,
		kv:      kv,
		logger:  ac.logger,
	}, nil
}

// Close releases the storage backend
func (a *App) Close() error {
	if err := a.kv.Close(); err != nil {
		a.logger.Error().Err(err).Msg("close storage")
		return err
	}
	return nil
}
