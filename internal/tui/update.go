package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/tui/state"
)

// Update is the main update dispatcher.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWindowSize(msg.Width, msg.Height)
		m.Help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Non-key messages (cursor blink) still reach an open text field
	if m.UiState.Mode().IsInput() {
		var cmd tea.Cmd
		m.InputState.Input, cmd = m.InputState.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch mode := m.UiState.Mode(); {
	case mode.IsInput():
		return m.handleInputMode(msg)
	case mode == state.ConfirmMode:
		return m, m.handleConfirmMode(msg)
	case mode == state.HelpMode:
		return m, m.handleHelpMode(msg)
	default:
		return m, m.handleNormalMode(msg)
	}
}

// ============================================================================
// NORMAL MODE
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()
	k := m.Keys

	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.ShowHelp):
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, k.PrevColumn):
		m.navigateColumn(-1)
	case key.Matches(msg, k.NextColumn):
		m.navigateColumn(1)
	case key.Matches(msg, k.PrevTask):
		m.navigateTask(-1)
	case key.Matches(msg, k.NextTask):
		m.navigateTask(1)

	case key.Matches(msg, k.ToggleView):
		m.UiState.ToggleView()
		m.clampSelection()
	case key.Matches(msg, k.CycleSort):
		m.FilterState.CycleSort()
		m.info("Sort: " + string(m.FilterState.Sort()))
	case key.Matches(msg, k.CycleStatusFilter):
		m.FilterState.CycleStatus()
		m.clampSelection()
		m.info("Status filter: " + m.FilterState.StatusLabel())
	case key.Matches(msg, k.CycleCategoryFilter):
		m.cycleCategoryFilter()

	case key.Matches(msg, k.AddTask):
		return m.beginAddTask()
	case key.Matches(msg, k.EditTask):
		return m.withTask(func(t models.Task) tea.Cmd {
			return m.beginInput(state.EditTaskMode, "Edit task", t.ID, t.Title)
		})
	case key.Matches(msg, k.CycleStatus):
		m.withTask(func(t models.Task) tea.Cmd { m.cycleStatus(t); return nil })
	case key.Matches(msg, k.DeleteTask):
		m.withTask(func(t models.Task) tea.Cmd {
			m.ConfirmState.Ask(state.ConfirmDeleteTask, t.ID, fmt.Sprintf("Delete task '%s'?", t.Title))
			m.UiState.SetMode(state.ConfirmMode)
			return nil
		})
	case key.Matches(msg, k.MoveTaskLeft):
		m.withTask(func(t models.Task) tea.Cmd { m.moveAcross(t, -1); return nil })
	case key.Matches(msg, k.MoveTaskRight):
		m.withTask(func(t models.Task) tea.Cmd { m.moveAcross(t, 1); return nil })
	case key.Matches(msg, k.MoveTaskUp):
		m.withKanbanTask(func(t models.Task) { m.moveWithin(t, -1) })
	case key.Matches(msg, k.MoveTaskDown):
		m.withKanbanTask(func(t models.Task) { m.moveWithin(t, 1) })

	case key.Matches(msg, k.CreateCategory):
		return m.beginInput(state.AddCategoryMode, "New category", "", "")
	case key.Matches(msg, k.RenameCategory):
		if c, ok := m.CurrentCategory(); ok {
			return m.beginInput(state.RenameCategoryMode, "Rename category", c.ID, c.Name)
		}
	case key.Matches(msg, k.DeleteCategory):
		m.beginDeleteCategory()
	case key.Matches(msg, k.ClearStorage):
		m.ConfirmState.Ask(state.ConfirmClearStorage, "", "Delete all tasks and categories from local storage?")
		m.UiState.SetMode(state.ConfirmMode)
	}

	return nil
}

// withTask runs fn on the task under the cursor
func (m Model) withTask(fn func(models.Task) tea.Cmd) tea.Cmd {
	t, ok := m.CurrentTask()
	if !ok {
		m.info("No task selected")
		return nil
	}
	return fn(t)
}

// withKanbanTask is withTask for actions that only make sense on the board;
// the list view's order comes from the sort key
func (m Model) withKanbanTask(fn func(models.Task)) {
	if m.UiState.View() != state.KanbanView {
		m.info("Reordering works in the kanban view")
		return
	}
	m.withTask(func(t models.Task) tea.Cmd { fn(t); return nil })
}

func (m Model) navigateColumn(delta int) {
	if m.UiState.View() == state.ListView {
		return
	}
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(m.Columns()) {
		return
	}
	m.UiState.SetSelectedColumn(next)
}

func (m Model) navigateTask(delta int) {
	if m.UiState.View() == state.ListView {
		next := m.UiState.SelectedRow() + delta
		if next >= 0 && next < len(m.Rows()) {
			m.UiState.SetSelectedRow(next)
		}
		return
	}
	col, ok := m.CurrentColumn()
	if !ok {
		return
	}
	next := m.UiState.SelectedTask() + delta
	if next >= 0 && next < len(col.Tasks) {
		m.UiState.SetSelectedTask(next)
	}
}

func (m Model) cycleCategoryFilter() {
	cats := m.Store.Categories()
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	m.FilterState.CycleCategory(ids)
	m.UiState.SetSelectedColumn(0)
	m.clampSelection()

	label := "all"
	if c, ok := m.Store.Category(m.FilterState.CategoryID()); ok {
		label = c.Name
	}
	m.info("Category filter: " + label)
}

func (m Model) beginAddTask() tea.Cmd {
	target := m.Store.DefaultCategory().ID
	if m.UiState.View() == state.KanbanView {
		if col, ok := m.CurrentColumn(); ok {
			target = col.Category.ID
		}
	}
	return m.beginInput(state.AddTaskMode, "New task", target, "")
}

func (m Model) beginDeleteCategory() {
	c, ok := m.CurrentCategory()
	if !ok {
		return
	}
	if err := blockDelete(c); err != nil {
		m.NotificationState.Add(state.LevelError, err.Error())
		return
	}
	m.ConfirmState.Ask(state.ConfirmDeleteCategory, c.ID, fmt.Sprintf("Delete category '%s'?", c.Name))
	m.UiState.SetMode(state.ConfirmMode)
}

func (m Model) beginInput(mode state.Mode, prompt, targetID, value string) tea.Cmd {
	m.InputState.Begin(prompt, targetID, value)
	m.UiState.SetMode(mode)
	return nil
}

// ============================================================================
// INPUT MODE
// ============================================================================

func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		m.submitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.InputState.Input, cmd = m.InputState.Input.Update(msg)
	return m, cmd
}

func (m Model) submitInput() {
	value := m.InputState.Value()
	target := m.InputState.TargetID
	mode := m.UiState.Mode()
	m.closeInput()

	switch mode {
	case state.AddTaskMode:
		m.addTask(target, value)
	case state.EditTaskMode:
		m.renameTask(target, value)
	case state.AddCategoryMode:
		m.addCategory(value)
	case state.RenameCategoryMode:
		m.renameCategory(target, value)
	}
}

func (m Model) closeInput() {
	m.InputState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

// ============================================================================
// CONFIRM AND HELP MODES
// ============================================================================

func (m Model) handleConfirmMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		pending := *m.ConfirmState
		m.ConfirmState.Clear()
		m.UiState.SetMode(state.NormalMode)

		switch pending.Action {
		case state.ConfirmDeleteTask:
			m.deleteTask(pending.TargetID)
		case state.ConfirmDeleteCategory:
			m.deleteCategory(pending.TargetID)
		case state.ConfirmClearStorage:
			m.clearStorage()
		}
	case "n", "N", "esc":
		m.ConfirmState.Clear()
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.ShowHelp, m.Keys.Quit) || msg.String() == "esc" {
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
