package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// NewTask holds the fields a caller supplies when creating a task
type NewTask struct {
	Title      string
	CategoryID string
}

// TaskUpdate is a partial update. Nil fields are left unchanged.
type TaskUpdate struct {
	Title      *string
	Status     *models.Status
	CategoryID *string
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

// AddTask creates a todo task at the end of its category
func (s *Store) AddTask(ctx context.Context, req NewTask) (models.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return models.Task{}, err
	}

	next := s.st.clone()
	ci := next.categoryIndex(req.CategoryID)
	if ci < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrCategoryNotFound, req.CategoryID)
	}

	task := models.Task{
		ID:         s.newID(),
		Title:      title,
		Status:     models.DefaultStatus,
		CreatedAt:  s.now(),
		CategoryID: req.CategoryID,
	}
	next.tasks = append(next.tasks, task)
	next.categories[ci].TaskIDs = append(next.categories[ci].TaskIDs, task.ID)

	if err := s.commit(ctx, next); err != nil {
		return models.Task{}, fmt.Errorf("add task: %w", err)
	}

	s.logger.Debug().Str("task", task.ID).Str("category", task.CategoryID).Msg("task added")
	return task, nil
}

// UpdateTask applies a partial update. Unknown ids are ignored. A changed
// CategoryID moves the task to the end of the new category.
func (s *Store) UpdateTask(ctx context.Context, id string, upd TaskUpdate) error {
	next := s.st.clone()
	ti := next.taskIndex(id)
	if ti < 0 {
		return nil
	}
	task := &next.tasks[ti]

	if upd.Title != nil {
		title, err := validateTitle(*upd.Title)
		if err != nil {
			return err
		}
		task.Title = title
	}

	if upd.Status != nil {
		if !upd.Status.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, string(*upd.Status))
		}
		task.Status = *upd.Status
	}

	if upd.CategoryID != nil && *upd.CategoryID != task.CategoryID {
		dest := next.categoryIndex(*upd.CategoryID)
		if dest < 0 {
			return fmt.Errorf("%w: %s", ErrCategoryNotFound, *upd.CategoryID)
		}
		next.move(ti, dest, len(next.categories[dest].TaskIDs))
	}

	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("update task: %w", err)
	}

	s.logger.Debug().Str("task", id).Msg("task updated")
	return nil
}

// DeleteTask removes a task and its id from every sequence. Unknown ids are
// ignored.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	next := s.st.clone()
	ti := next.taskIndex(id)
	if ti < 0 {
		return nil
	}

	next.tasks = slices.Delete(next.tasks, ti, ti+1)
	for i := range next.categories {
		next.categories[i].TaskIDs = slices.DeleteFunc(next.categories[i].TaskIDs, func(tid string) bool {
			return tid == id
		})
	}

	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Debug().Str("task", id).Msg("task deleted")
	return nil
}

// MoveTask places a task at index within a category, clamping the index to
// the destination's bounds. Moving within the same category reorders it.
// Unknown task or category ids are ignored.
func (s *Store) MoveTask(ctx context.Context, taskID, categoryID string, index int) error {
	next := s.st.clone()
	ti := next.taskIndex(taskID)
	dest := next.categoryIndex(categoryID)
	if ti < 0 || dest < 0 {
		return nil
	}

	next.move(ti, dest, index)

	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("move task: %w", err)
	}

	s.logger.Debug().Str("task", taskID).Str("category", categoryID).Int("index", index).Msg("task moved")
	return nil
}

// move detaches task ti from every sequence and inserts it into category
// dest at the clamped index
func (st *state) move(ti, dest, index int) {
	id := st.tasks[ti].ID
	for i := range st.categories {
		st.categories[i].TaskIDs = slices.DeleteFunc(st.categories[i].TaskIDs, func(tid string) bool {
			return tid == id
		})
	}

	seq := st.categories[dest].TaskIDs
	index = max(0, min(index, len(seq)))
	st.categories[dest].TaskIDs = slices.Insert(seq, index, id)
	st.tasks[ti].CategoryID = st.categories[dest].ID
}
