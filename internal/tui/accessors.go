package tui

import (
	"slices"

	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/tui/state"
)

// Columns returns the kanban columns with the status and category filters
// applied
func (m Model) Columns() []models.BoardColumn {
	board := m.Store.Board()
	status := m.FilterState.Status()
	categoryID := m.FilterState.CategoryID()

	out := make([]models.BoardColumn, 0, len(board))
	for _, col := range board {
		if categoryID != "" && col.Category.ID != categoryID {
			continue
		}
		if status != nil {
			col.Tasks = slices.DeleteFunc(col.Tasks, func(t models.Task) bool {
				return t.Status != *status
			})
		}
		out = append(out, col)
	}
	return out
}

// Rows returns the list view rows
func (m Model) Rows() []models.Task {
	return m.Store.List(m.FilterState.Query())
}

// CurrentColumn returns the selected kanban column
func (m Model) CurrentColumn() (models.BoardColumn, bool) {
	cols := m.Columns()
	i := m.UiState.SelectedColumn()
	if i >= len(cols) {
		return models.BoardColumn{}, false
	}
	return cols[i], true
}

// CurrentTask returns the task under the cursor in the active view
func (m Model) CurrentTask() (models.Task, bool) {
	if m.UiState.View() == state.ListView {
		rows := m.Rows()
		i := m.UiState.SelectedRow()
		if i >= len(rows) {
			return models.Task{}, false
		}
		return rows[i], true
	}

	col, ok := m.CurrentColumn()
	if !ok || m.UiState.SelectedTask() >= len(col.Tasks) {
		return models.Task{}, false
	}
	return col.Tasks[m.UiState.SelectedTask()], true
}

// CurrentCategory is the category category actions apply to: the selected
// column in kanban, the selected task's category in the list view
func (m Model) CurrentCategory() (models.Category, bool) {
	if m.UiState.View() == state.ListView {
		t, ok := m.CurrentTask()
		if !ok {
			return models.Category{}, false
		}
		return m.Store.Category(t.CategoryID)
	}
	col, ok := m.CurrentColumn()
	return col.Category, ok
}

// clampSelection keeps every cursor on the board after a mutation
func (m Model) clampSelection() {
	cols := m.Columns()
	m.UiState.Clamp(len(cols), func(c int) int {
		if c < len(cols) {
			return len(cols[c].Tasks)
		}
		return 0
	}, len(m.Rows()))
}

// selectTask points the cursors at id in both views, if visible
func (m Model) selectTask(id string) {
	for ci, col := range m.Columns() {
		for ti, t := range col.Tasks {
			if t.ID == id {
				m.UiState.SetSelectedColumn(ci)
				m.UiState.SetSelectedTask(ti)
			}
		}
	}
	for ri, t := range m.Rows() {
		if t.ID == id {
			m.UiState.SetSelectedRow(ri)
		}
	}
}
