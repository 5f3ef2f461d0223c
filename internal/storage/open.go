package storage

import (
	"context"
	"fmt"
	"path/filepath"
)

// Options selects and locates a backend
type Options struct {
	Backend string
	DataDir string
}

// Open returns the KV for opts.Backend. An empty backend means sqlite.
func Open(ctx context.Context, opts Options) (KV, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return OpenSQLite(ctx, opts.DataDir)
	case BackendFile:
		return NewFile(filepath.Join(opts.DataDir, "kv"))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
