package tui

import (
	"fmt"

	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/persist"
	"github.com/thenoetrevino/tasklane/internal/store"
	"github.com/thenoetrevino/tasklane/internal/tui/state"
)

// ============================================================================
// STORE MUTATIONS
// Every failure lands in the notification line; none of them quit the TUI.
// ============================================================================

func (m Model) fail(action string, err error) {
	m.logger.Error().Err(err).Str("action", action).Msg("store operation failed")
	m.NotificationState.Add(state.LevelError, err.Error())
}

func (m Model) info(msg string) {
	m.NotificationState.Add(state.LevelInfo, msg)
}

func (m Model) addTask(categoryID, title string) {
	task, err := m.Store.AddTask(m.Ctx, store.NewTask{Title: title, CategoryID: categoryID})
	if err != nil {
		m.fail("add task", err)
		return
	}
	m.selectTask(task.ID)
}

func (m Model) renameTask(id, title string) {
	if err := m.Store.UpdateTask(m.Ctx, id, store.TaskUpdate{Title: &title}); err != nil {
		m.fail("edit task", err)
	}
}

func (m Model) cycleStatus(t models.Task) {
	next := t.Status.Next()
	if err := m.Store.UpdateTask(m.Ctx, t.ID, store.TaskUpdate{Status: &next}); err != nil {
		m.fail("cycle status", err)
		return
	}
	m.clampSelection()
}

func (m Model) deleteTask(id string) {
	if err := m.Store.DeleteTask(m.Ctx, id); err != nil {
		m.fail("delete task", err)
		return
	}
	m.clampSelection()
}

// moveAcross appends t to the category delta steps away in board order
func (m Model) moveAcross(t models.Task, delta int) {
	cats := m.Store.Categories()
	from := -1
	for i, c := range cats {
		if c.ID == t.CategoryID {
			from = i
		}
	}
	to := from + delta
	if from < 0 || to < 0 || to >= len(cats) {
		if delta < 0 {
			m.info("Already in the first category")
		} else {
			m.info("Already in the last category")
		}
		return
	}

	dest := cats[to]
	if err := m.Store.MoveTask(m.Ctx, t.ID, dest.ID, len(dest.TaskIDs)); err != nil {
		m.fail("move task", err)
		return
	}
	m.selectTask(t.ID)
}

// moveWithin swaps t with its visible neighbour delta steps away. The
// neighbour's index in the full sequence is the drop position, so hidden
// (filtered) tasks keep their places.
func (m Model) moveWithin(t models.Task, delta int) {
	col, ok := m.CurrentColumn()
	if !ok {
		return
	}
	visible := -1
	for i, ct := range col.Tasks {
		if ct.ID == t.ID {
			visible = i
		}
	}
	target := visible + delta
	if visible < 0 || target < 0 || target >= len(col.Tasks) {
		return
	}

	index := col.Category.IndexOf(col.Tasks[target].ID)
	if err := m.Store.MoveTask(m.Ctx, t.ID, col.Category.ID, index); err != nil {
		m.fail("reorder task", err)
		return
	}
	m.selectTask(t.ID)
}

func (m Model) addCategory(name string) {
	c, err := m.Store.AddCategory(m.Ctx, name)
	if err != nil {
		m.fail("add category", err)
		return
	}
	for i, col := range m.Columns() {
		if col.Category.ID == c.ID {
			m.UiState.SetSelectedColumn(i)
		}
	}
}

func (m Model) renameCategory(id, name string) {
	if err := m.Store.RenameCategory(m.Ctx, id, name); err != nil {
		m.fail("rename category", err)
	}
}

func (m Model) deleteCategory(id string) {
	if err := m.Store.DeleteCategory(m.Ctx, id); err != nil {
		m.fail("delete category", err)
		return
	}
	m.FilterState.DropCategory(id)
	m.clampSelection()
}

// clearStorage runs after the TUI's own dialog, so the adapter is told yes
func (m Model) clearStorage() {
	outcome, err := m.Store.Reset(m.Ctx, persist.AlwaysConfirm)
	if err != nil {
		m.fail("clear storage", err)
		return
	}
	if outcome == persist.ClearCompleted {
		m.FilterState.Reset()
		m.UiState.SetSelectedColumn(0)
		m.UiState.SetSelectedRow(0)
		m.info("Local storage cleared")
	}
}

// blockDelete reports why a category cannot be deleted, or nil
func blockDelete(c models.Category) error {
	if c.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: '%s' has %d tasks", store.ErrCategoryNotEmpty, c.Name, len(c.TaskIDs))
}
