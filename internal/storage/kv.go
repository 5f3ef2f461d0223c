// Package storage provides the local durable key-value stores that hold the
// application's persisted records.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key has no value
	ErrNotFound = errors.New("key not found")

	// ErrUnknownBackend is returned by Open for an unrecognised backend name
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// KV is a minimal persistent key-value store. Values are opaque bytes and
// Set always overwrites the previous value in full.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes a key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
	Close() error
}
