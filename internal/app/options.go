package app

import (
	"github.com/rs/zerolog"
	"github.com/thenoetrevino/tasklane/internal/storage"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	kv        storage.KV
	logger    zerolog.Logger
	storeOpts []store.Option
}

// WithKV uses kv instead of opening the configured backend. The App takes
// ownership and closes it.
func WithKV(kv storage.KV) Option {
	return func(cfg *appConfig) {
		cfg.kv = kv
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStoreOptions passes extra options to store.Open
func WithStoreOptions(opts ...store.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOpts = append(cfg.storeOpts, opts...)
	}
}
