package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/thenoetrevino/tasklane/internal/storage"
)

// ErrInjected is returned by FailingKV when a failure is switched on
var ErrInjected = errors.New("injected storage failure")

// FailingKV wraps a KV and fails selected operations on demand
type FailingKV struct {
	storage.KV

	mu         sync.Mutex
	failGet    bool
	failSet    bool
	failDelete bool
	sets       int
}

var _ storage.KV = (*FailingKV)(nil)

// NewFailingKV wraps an in-memory store
func NewFailingKV() *FailingKV {
	return &FailingKV{KV: storage.NewMemory()}
}

// FailSets toggles Set failures
func (f *FailingKV) FailSets(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSet = on
}

// FailGets toggles Get failures
func (f *FailingKV) FailGets(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGet = on
}

// FailDeletes toggles Delete failures
func (f *FailingKV) FailDeletes(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failDelete = on
}

// Sets returns how many successful Set calls were made
func (f *FailingKV) Sets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func (f *FailingKV) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return nil, ErrInjected
	}
	return f.KV.Get(ctx, key)
}

func (f *FailingKV) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSet {
		return ErrInjected
	}
	f.sets++
	return f.KV.Set(ctx, key, value)
}

func (f *FailingKV) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failDelete
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.KV.Delete(ctx, key)
}
