// Package store owns the tasks and categories and enforces the invariants
// between them: every task belongs to an existing category, and every
// category's TaskIDs holds exactly the ids of its tasks in display order.
//
// A Store is not safe for concurrent use.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/thenoetrevino/tasklane/internal/logging"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/persist"
)

// Store is the in-memory task/category state backed by a persist.Adapter
type Store struct {
	adapter *persist.Adapter
	st      state

	defaultName string
	now         func() time.Time
	newID       func() string
	logger      zerolog.Logger
}

// state is the pair of collections a mutation works on. Mutations build a
// new state from clone() and only swap it in after a successful flush.
type state struct {
	tasks      []models.Task
	categories []models.Category
}

func (s state) clone() state {
	next := state{
		tasks:      make([]models.Task, len(s.tasks)),
		categories: make([]models.Category, len(s.categories)),
	}
	copy(next.tasks, s.tasks)
	for i, c := range s.categories {
		next.categories[i] = c.Clone()
	}
	return next
}

func (s state) snapshot() persist.Snapshot {
	c := s.clone()
	return persist.Snapshot{Tasks: c.tasks, Categories: c.categories}
}

func (s state) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s state) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

// Open rehydrates a Store from the adapter. Missing or malformed records
// start empty. If loading had to repair anything (or create the default
// category) the repaired state is written back straight away so ids stay
// stable across runs.
func Open(ctx context.Context, adapter *persist.Adapter, opts ...Option) (*Store, error) {
	s := &Store{
		adapter:     adapter,
		defaultName: DefaultCategoryName,
		now:         time.Now,
		newID:       newUUID,
		logger:      logging.Component("store"),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, _, err := adapter.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	categories, _, err := adapter.LoadCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	loaded := state{tasks: tasks, categories: categories}
	next, changed := s.repair(loaded)
	if !changed {
		s.st = next
		s.logger.Debug().Int("tasks", len(next.tasks)).Int("categories", len(next.categories)).Msg("store opened")
		return s, nil
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s.logger.Info().Int("tasks", len(next.tasks)).Int("categories", len(next.categories)).Msg("store opened with repairs")
	return s, nil
}

// commit flushes next and makes it current. On failure the current state is
// kept and the flush is rolled back as far as storage allows.
func (s *Store) commit(ctx context.Context, next state) error {
	snap := next.snapshot()
	if err := s.adapter.SaveTasks(ctx, snap.Tasks); err != nil {
		s.logger.Error().Err(err).Msg("flush tasks failed")
		return err
	}
	if err := s.adapter.SaveCategories(ctx, snap.Categories); err != nil {
		s.logger.Error().Err(err).Msg("flush categories failed")
		if rbErr := s.adapter.SaveTasks(ctx, s.st.snapshot().Tasks); rbErr != nil {
			s.logger.Error().Err(rbErr).Msg("rollback tasks failed")
		}
		return err
	}
	s.st = next
	return nil
}

func (s *Store) newDefaultCategory() models.Category {
	return models.Category{ID: s.newID(), Name: s.defaultName, TaskIDs: []string{}}
}

// ============================================================================
// Reads
// ============================================================================

// Tasks returns a copy of all tasks in collection order
func (s *Store) Tasks() []models.Task {
	return s.st.clone().tasks
}

// Categories returns a copy of all categories in collection order
func (s *Store) Categories() []models.Category {
	return s.st.clone().categories
}

// Task looks a task up by id
func (s *Store) Task(id string) (models.Task, bool) {
	i := s.st.taskIndex(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.st.tasks[i], true
}

// Category looks a category up by id
func (s *Store) Category(id string) (models.Category, bool) {
	i := s.st.categoryIndex(id)
	if i < 0 {
		return models.Category{}, false
	}
	return s.st.categories[i].Clone(), true
}

// CategoryByName returns the first category whose name matches,
// ignoring case and surrounding whitespace
func (s *Store) CategoryByName(name string) (models.Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range s.st.categories {
		if strings.EqualFold(c.Name, name) {
			return c.Clone(), true
		}
	}
	return models.Category{}, false
}

// DefaultCategory is the category named like the configured default, or the
// first category if none is. It is only zero before Open returns.
func (s *Store) DefaultCategory() models.Category {
	if c, ok := s.CategoryByName(s.defaultName); ok {
		return c
	}
	if len(s.st.categories) > 0 {
		return s.st.categories[0].Clone()
	}
	return models.Category{}
}

// Board returns every category with its tasks in sequence order
func (s *Store) Board() []models.BoardColumn {
	byID := make(map[string]models.Task, len(s.st.tasks))
	for _, t := range s.st.tasks {
		byID[t.ID] = t
	}

	board := make([]models.BoardColumn, 0, len(s.st.categories))
	for _, c := range s.st.categories {
		col := models.BoardColumn{Category: c.Clone(), Tasks: make([]models.Task, 0, len(c.TaskIDs))}
		for _, id := range c.TaskIDs {
			if t, ok := byID[id]; ok {
				col.Tasks = append(col.Tasks, t)
			}
		}
		board = append(board, col)
	}
	return board
}

// ============================================================================
// Whole-state operations
// ============================================================================

// Reset clears persisted storage once confirm agrees, then resets the
// in-memory state to a lone default category. The new state is written on
// the next mutation.
func (s *Store) Reset(ctx context.Context, confirm persist.Confirmer) (persist.ClearOutcome, error) {
	outcome, err := s.adapter.Clear(ctx, confirm)
	if err != nil || outcome != persist.ClearCompleted {
		return outcome, err
	}

	s.st = state{categories: []models.Category{s.newDefaultCategory()}}
	s.logger.Info().Msg("store reset")
	return outcome, nil
}

// Import replaces the whole state with snap, repairing it the same way Open
// does, and flushes it
func (s *Store) Import(ctx context.Context, snap persist.Snapshot) error {
	next, _ := s.repair(state{tasks: snap.Tasks, categories: snap.Categories}.clone())
	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	s.logger.Info().Int("tasks", len(next.tasks)).Int("categories", len(next.categories)).Msg("snapshot imported")
	return nil
}
