package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	AddTaskMode                    // Typing a new task title
	EditTaskMode                   // Editing the selected task's title
	AddCategoryMode                // Typing a new category name
	RenameCategoryMode             // Renaming the selected category
	ConfirmMode                    // Yes/no dialog, see ConfirmState
	HelpMode                       // Displaying help screen
)

// IsInput reports whether the mode shows the text input dialog
func (m Mode) IsInput() bool {
	return m == AddTaskMode || m == EditTaskMode || m == AddCategoryMode || m == RenameCategoryMode
}

// ViewMode selects the board layout
type ViewMode int

const (
	KanbanView ViewMode = iota
	ListView
)

// UIState manages the user interface state.
// This includes navigation (column/task/row selection), terminal
// dimensions, the active view, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the selected kanban column
	selectedColumn int

	// selectedTask is the index of the selected task within the selected column
	selectedTask int

	// selectedRow is the index of the selected row in the list view
	selectedRow int

	width  int
	height int

	mode Mode
	view ViewMode
}

// NewUIState creates a new UIState with default values.
func NewUIState(view ViewMode) *UIState {
	return &UIState{mode: NormalMode, view: view}
}

func (s *UIState) SelectedColumn() int { return s.selectedColumn }
func (s *UIState) SelectedTask() int   { return s.selectedTask }
func (s *UIState) SelectedRow() int    { return s.selectedRow }
func (s *UIState) Width() int          { return s.width }
func (s *UIState) Height() int         { return s.height }
func (s *UIState) Mode() Mode          { return s.mode }
func (s *UIState) View() ViewMode      { return s.view }

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// SetWindowSize records the terminal dimensions
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// ContentHeight is the height left for the board after the header and
// status bar
func (s *UIState) ContentHeight() int {
	const chrome = 3
	return max(s.height-chrome, 0)
}

// ToggleView switches between the kanban and list views
func (s *UIState) ToggleView() {
	if s.view == KanbanView {
		s.view = ListView
	} else {
		s.view = KanbanView
	}
}

// SetSelectedColumn selects a column and resets the task cursor
func (s *UIState) SetSelectedColumn(i int) {
	s.selectedColumn = max(i, 0)
	s.selectedTask = 0
}

// SetSelectedTask selects a task within the current column
func (s *UIState) SetSelectedTask(i int) { s.selectedTask = max(i, 0) }

// SetSelectedRow selects a list view row
func (s *UIState) SetSelectedRow(i int) { s.selectedRow = max(i, 0) }

// Clamp keeps the cursors inside the board after it shrinks. columns is the
// number of kanban columns, tasks the number of tasks in the selected column
// once the column cursor is fixed, and rows the number of list rows.
func (s *UIState) Clamp(columns int, tasksIn func(col int) int, rows int) {
	s.selectedColumn = clamp(s.selectedColumn, columns)
	s.selectedTask = clamp(s.selectedTask, tasksIn(s.selectedColumn))
	s.selectedRow = clamp(s.selectedRow, rows)
}

func clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	return max(0, min(i, n-1))
}
