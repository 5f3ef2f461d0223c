package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/storage"
	"github.com/thenoetrevino/tasklane/internal/testutil"
	"github.com/thenoetrevino/tasklane/internal/tui/state"
)

func TestNew_DefaultView(t *testing.T) {
	m := setupModel(t)
	assert.Equal(t, state.KanbanView, m.UiState.View())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	cfg := config.Default()
	cfg.DefaultView = config.ViewList
	m = setupModelWithKV(t, storage.NewMemory(), cfg)
	assert.Equal(t, state.ListView, m.UiState.View())
}

func TestAddTask(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "a")
	assert.Equal(t, state.AddTaskMode, m.UiState.Mode())

	m = typeText(t, m, "Buy milk")
	m = press(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []string{"Buy milk"}, titles(m, 0))
	task, ok := m.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, models.StatusTodo, task.Status)
}

func TestAddTask_GoesToSelectedColumn(t *testing.T) {
	m := setupModel(t)
	m = press(t, m, "C")
	m = typeText(t, m, "Work")
	m = press(t, m, "enter")
	require.Equal(t, 1, m.UiState.SelectedColumn())

	m = addTask(t, m, "ship")

	col, ok := m.CurrentColumn()
	require.True(t, ok)
	assert.Equal(t, "Work", col.Category.Name)
	assert.Equal(t, []string{"ship"}, titles(m, 1))
	assert.Empty(t, titles(m, 0))
}

func TestAddTask_EmptyTitleNotifies(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "a", " ", "enter")

	assert.Empty(t, m.Store.Tasks())
	n, ok := m.NotificationState.Last()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestAddTask_EscCancels(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "a", "x", "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, m.Store.Tasks())
	assert.Empty(t, m.InputState.Value())
}

func TestEditTask(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "Buy milk")

	m = press(t, m, "e")
	assert.Equal(t, state.EditTaskMode, m.UiState.Mode())
	assert.Equal(t, "Buy milk", m.InputState.Value())

	m = typeText(t, m, "!")
	m = press(t, m, "enter")

	assert.Equal(t, []string{"Buy milk!"}, titles(m, 0))
}

func TestCycleStatus(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "t")

	want := []models.Status{models.StatusInProgress, models.StatusDone, models.StatusTodo}
	for _, status := range want {
		m = press(t, m, "s")
		task, ok := m.CurrentTask()
		require.True(t, ok)
		assert.Equal(t, status, task.Status)
	}
}

func TestDeleteTask_Confirm(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "keep")
	m = addTask(t, m, "drop")

	m = press(t, m, "d")
	assert.Equal(t, state.ConfirmMode, m.UiState.Mode())
	assert.Equal(t, state.ConfirmDeleteTask, m.ConfirmState.Action)

	m = press(t, m, "n")
	assert.Len(t, m.Store.Tasks(), 2)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m = press(t, m, "d", "y")
	assert.Equal(t, []string{"keep"}, titles(m, 0))
	assert.Equal(t, 0, m.UiState.SelectedTask())
}

func TestMoveTaskAcrossCategories(t *testing.T) {
	m := setupModel(t)
	m = press(t, m, "C")
	m = typeText(t, m, "Work")
	m = press(t, m, "enter")
	m = addTask(t, m, "w1")
	m = press(t, m, "h")
	m = addTask(t, m, "g1")

	m = press(t, m, "L")
	assert.Empty(t, titles(m, 0))
	assert.Equal(t, []string{"w1", "g1"}, titles(m, 1))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, 1, m.UiState.SelectedTask())

	m = press(t, m, "L")
	n, ok := m.NotificationState.Last()
	require.True(t, ok)
	assert.Equal(t, state.LevelInfo, n.Level)

	m = press(t, m, "H")
	assert.Equal(t, []string{"g1"}, titles(m, 0))
	assert.Equal(t, 0, m.UiState.SelectedColumn())
}

func TestReorderWithinCategory(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "a")
	m = addTask(t, m, "b")
	m = addTask(t, m, "c")
	require.Equal(t, 2, m.UiState.SelectedTask())

	m = press(t, m, "K")
	assert.Equal(t, []string{"a", "c", "b"}, titles(m, 0))
	assert.Equal(t, 1, m.UiState.SelectedTask())

	m = press(t, m, "K", "K")
	assert.Equal(t, []string{"c", "a", "b"}, titles(m, 0))

	m = press(t, m, "J")
	assert.Equal(t, []string{"a", "c", "b"}, titles(m, 0))
}

func TestReorder_SkipsFilteredTasks(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "a")
	m = addTask(t, m, "b")
	m = addTask(t, m, "c")
	// b done, a and c todo
	m = press(t, m, "k", "s", "s")

	m = press(t, m, "f") // todo only
	require.Equal(t, []string{"a", "c"}, titles(m, 0))

	m = press(t, m, "K")
	m = press(t, m, "f", "f", "f") // back to all
	assert.Equal(t, []string{"c", "a", "b"}, titles(m, 0))
}

func TestCategoryLifecycle(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "C")
	assert.Equal(t, state.AddCategoryMode, m.UiState.Mode())
	m = typeText(t, m, "Later")
	m = press(t, m, "enter")
	require.Len(t, m.Store.Categories(), 2)

	m = press(t, m, "R")
	assert.Equal(t, "Later", m.InputState.Value())
	m = typeText(t, m, "!")
	m = press(t, m, "enter")
	col, _ := m.CurrentColumn()
	assert.Equal(t, "Later!", col.Category.Name)

	m = press(t, m, "X")
	assert.Equal(t, state.ConfirmDeleteCategory, m.ConfirmState.Action)
	m = press(t, m, "y")
	require.Len(t, m.Store.Categories(), 1)
	assert.Equal(t, 0, m.UiState.SelectedColumn())
}

func TestDeleteCategory_NonEmptyShowsError(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "t")

	m = press(t, m, "X")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	n, ok := m.NotificationState.Last()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "still has tasks")
	assert.Len(t, m.Store.Categories(), 1)
}

func TestClearStorage(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "t")
	m = press(t, m, "C")
	m = typeText(t, m, "Work")
	m = press(t, m, "enter")

	m = press(t, m, "Z", "y")

	assert.Empty(t, m.Store.Tasks())
	require.Len(t, m.Store.Categories(), 1)
	assert.Equal(t, "General", m.Store.Categories()[0].Name)
	assert.Equal(t, 0, m.UiState.SelectedColumn())
}

func TestListView(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "banana")
	m = addTask(t, m, "apple")
	m = addTask(t, m, "Cherry")

	m = press(t, m, "v")
	require.Equal(t, state.ListView, m.UiState.View())

	rowTitles := func() []string {
		out := []string{}
		for _, task := range m.Rows() {
			out = append(out, task.Title)
		}
		return out
	}
	assert.Equal(t, []string{"Cherry", "apple", "banana"}, rowTitles())

	m = press(t, m, "o")
	assert.Equal(t, []string{"apple", "banana", "Cherry"}, rowTitles())

	m = press(t, m, "j")
	task, ok := m.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "banana", task.Title)

	m = press(t, m, "s")
	m = press(t, m, "f", "f")
	assert.Equal(t, []string{"banana"}, rowTitles())
	task, ok = m.CurrentTask()
	require.True(t, ok)
	assert.Equal(t, "banana", task.Title)

	m = press(t, m, "v")
	assert.Equal(t, state.KanbanView, m.UiState.View())
	assert.Equal(t, []string{"banana"}, titles(m, 0))
}

func TestCategoryFilter(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "g1")
	m = press(t, m, "C")
	m = typeText(t, m, "Work")
	m = press(t, m, "enter")
	m = addTask(t, m, "w1")

	m = press(t, m, "g")
	assert.Len(t, m.Columns(), 1)
	assert.Equal(t, "General", m.Columns()[0].Category.Name)

	m = press(t, m, "g")
	assert.Equal(t, "Work", m.Columns()[0].Category.Name)

	m = press(t, m, "g")
	assert.Len(t, m.Columns(), 2)
}

func TestNavigation(t *testing.T) {
	m := setupModel(t)
	m = addTask(t, m, "a")
	m = addTask(t, m, "b")
	m = press(t, m, "C")
	m = typeText(t, m, "Work")
	m = press(t, m, "enter")

	m = press(t, m, "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	m = press(t, m, "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())

	m = press(t, m, "down")
	assert.Equal(t, 1, m.UiState.SelectedTask())
	m = press(t, m, "j")
	assert.Equal(t, 1, m.UiState.SelectedTask())
	m = press(t, m, "k")
	assert.Equal(t, 0, m.UiState.SelectedTask())

	m = press(t, m, "right")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	_, ok := m.CurrentTask()
	assert.False(t, ok)
}

func TestActionsWithoutTask(t *testing.T) {
	m := setupModel(t)

	for _, k := range []string{"e", "s", "d", "L", "K"} {
		m = press(t, m, k)
		assert.Equal(t, state.NormalMode, m.UiState.Mode(), k)
		assert.True(t, m.NotificationState.HasAny(), k)
	}
}

func TestHelpMode(t *testing.T) {
	m := setupModel(t)

	m = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	// keys are inert while help is open
	m = press(t, m, "a")
	assert.Equal(t, state.HelpMode, m.UiState.Mode())

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m := setupModel(t)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCustomKeyMappings(t *testing.T) {
	cfg := config.Default()
	cfg.KeyMappings.AddTask = "n"
	m := setupModelWithKV(t, storage.NewMemory(), cfg)

	m = press(t, m, "a")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m = press(t, m, "n")
	assert.Equal(t, state.AddTaskMode, m.UiState.Mode())
}

func TestStoreFailureIsNotFatal(t *testing.T) {
	kv := testutil.NewFailingKV()
	m := setupModelWithKV(t, kv, config.Default())
	m = addTask(t, m, "saved")

	kv.FailSets(true)
	m = addTask(t, m, "lost")

	assert.Equal(t, []string{"saved"}, titles(m, 0))
	n, ok := m.NotificationState.Last()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, testutil.ErrInjected.Error())

	// notifications clear on the next key
	m = press(t, m, "j")
	assert.False(t, m.NotificationState.HasAny())
}
