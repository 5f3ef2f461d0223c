// Package persist is the boundary between the in-memory store and durable
// key-value storage. It owns the two reserved record keys and the explicit
// encode/decode of timestamps.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/storage"
)

// Reserved keys. These match the browser localStorage keys so old dumps load.
const (
	TasksKey      = "todo-tasks"
	CategoriesKey = "todo-categories"
)

// ClearPrompt is the question asked before wiping persisted data
const ClearPrompt = "Delete all tasks and categories from local storage?"

// Adapter reads and writes the tasks and categories records
type Adapter struct {
	kv     storage.KV
	logger zerolog.Logger
}

// Option configures an Adapter
type Option func(*Adapter)

// WithLogger overrides the adapter's logger
func WithLogger(l zerolog.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// New wraps kv in an Adapter
func New(kv storage.KV, opts ...Option) *Adapter {
	a := &Adapter{
		kv:     kv,
		logger: log.With().Str("cmp", "persist").Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LoadTasks reads the tasks record. ok is false when the record is missing
// or malformed; only storage failures are returned as errors.
func (a *Adapter) LoadTasks(ctx context.Context) ([]models.Task, bool, error) {
	return load(ctx, a, TasksKey, decodeTask)
}

// LoadCategories reads the categories record, see LoadTasks
func (a *Adapter) LoadCategories(ctx context.Context) ([]models.Category, bool, error) {
	return load(ctx, a, CategoriesKey, decodeCategory)
}

// SaveTasks overwrites the tasks record
func (a *Adapter) SaveTasks(ctx context.Context, tasks []models.Task) error {
	return save(ctx, a, TasksKey, encodeAll(tasks, encodeTask))
}

// SaveCategories overwrites the categories record
func (a *Adapter) SaveCategories(ctx context.Context, categories []models.Category) error {
	return save(ctx, a, CategoriesKey, encodeAll(categories, encodeCategory))
}

// Save writes a full snapshot: both records are overwritten
func (a *Adapter) Save(ctx context.Context, snap Snapshot) error {
	if err := a.SaveTasks(ctx, snap.Tasks); err != nil {
		return err
	}
	return a.SaveCategories(ctx, snap.Categories)
}

// Clear removes both records once confirm agrees. A declined prompt leaves
// storage untouched.
func (a *Adapter) Clear(ctx context.Context, confirm Confirmer) (ClearOutcome, error) {
	if confirm != nil {
		ok, err := confirm(ClearPrompt)
		if err != nil {
			return ClearDeclined, fmt.Errorf("confirm clear: %w", err)
		}
		if !ok {
			return ClearDeclined, nil
		}
	}

	for _, key := range []string{TasksKey, CategoriesKey} {
		if err := a.kv.Delete(ctx, key); err != nil {
			return ClearDeclined, fmt.Errorf("clear %s: %w", key, err)
		}
	}

	a.logger.Info().Msg("local storage cleared")
	return ClearCompleted, nil
}

func load[R, M any](ctx context.Context, a *Adapter, key string, decode func(R) (M, error)) ([]M, bool, error) {
	data, err := a.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}

	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		a.logger.Warn().Err(err).Str("key", key).Msg("ignoring malformed record")
		return nil, false, nil
	}

	items, err := decodeAll(records, decode)
	if err != nil {
		a.logger.Warn().Err(err).Str("key", key).Msg("ignoring malformed record")
		return nil, false, nil
	}

	return items, true, nil
}

func save[R any](ctx context.Context, a *Adapter, key string, records []R) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("save %s marshal: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Export writes the persisted records as a snapshot document. Absent
// records export as empty lists.
func (a *Adapter) Export(ctx context.Context, w io.Writer) error {
	tasks, _, err := a.LoadTasks(ctx)
	if err != nil {
		return err
	}
	categories, _, err := a.LoadCategories(ctx)
	if err != nil {
		return err
	}
	return WriteSnapshot(w, Snapshot{Tasks: tasks, Categories: categories})
}
