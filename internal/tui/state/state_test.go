package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/store"
)

func TestUIState_Clamp(t *testing.T) {
	s := NewUIState(KanbanView)
	s.SetSelectedColumn(4)
	s.SetSelectedTask(7)
	s.SetSelectedRow(9)

	s.Clamp(2, func(col int) int {
		if col == 1 {
			return 3
		}
		return 0
	}, 5)

	assert.Equal(t, 1, s.SelectedColumn())
	assert.Equal(t, 2, s.SelectedTask())
	assert.Equal(t, 4, s.SelectedRow())

	s.Clamp(0, func(int) int { return 0 }, 0)
	assert.Zero(t, s.SelectedColumn())
	assert.Zero(t, s.SelectedTask())
	assert.Zero(t, s.SelectedRow())
}

func TestUIState_ToggleView(t *testing.T) {
	s := NewUIState(KanbanView)
	s.ToggleView()
	assert.Equal(t, ListView, s.View())
	s.ToggleView()
	assert.Equal(t, KanbanView, s.View())
}

func TestUIState_SetSelectedColumnResetsTask(t *testing.T) {
	s := NewUIState(KanbanView)
	s.SetSelectedTask(3)
	s.SetSelectedColumn(1)
	assert.Zero(t, s.SelectedTask())

	s.SetSelectedColumn(-2)
	assert.Zero(t, s.SelectedColumn())
}

func TestMode_IsInput(t *testing.T) {
	for _, m := range []Mode{AddTaskMode, EditTaskMode, AddCategoryMode, RenameCategoryMode} {
		assert.True(t, m.IsInput(), m)
	}
	for _, m := range []Mode{NormalMode, ConfirmMode, HelpMode} {
		assert.False(t, m.IsInput(), m)
	}
}

func TestFilterState_CycleStatus(t *testing.T) {
	s := NewFilterState()
	assert.Nil(t, s.Status())
	assert.Equal(t, "all", s.StatusLabel())

	var seen []models.Status
	for range models.Statuses {
		s.CycleStatus()
		require.NotNil(t, s.Status())
		seen = append(seen, *s.Status())
	}
	assert.Equal(t, models.Statuses, seen)

	s.CycleStatus()
	assert.Nil(t, s.Status())
}

func TestFilterState_CycleCategory(t *testing.T) {
	s := NewFilterState()
	ids := []string{"c1", "c2"}

	s.CycleCategory(ids)
	assert.Equal(t, "c1", s.CategoryID())
	s.CycleCategory(ids)
	assert.Equal(t, "c2", s.CategoryID())
	s.CycleCategory(ids)
	assert.Empty(t, s.CategoryID())

	s.CycleCategory(ids)
	s.CycleCategory([]string{"c3"})
	assert.Empty(t, s.CategoryID(), "stale filter restarts from all")

	s.CycleCategory(nil)
	assert.Empty(t, s.CategoryID())
}

func TestFilterState_QueryAndReset(t *testing.T) {
	s := NewFilterState()
	s.CycleSort()
	s.CycleStatus()
	s.CycleCategory([]string{"c1"})

	q := s.Query()
	assert.Equal(t, store.SortTitle, q.Sort)
	assert.Equal(t, "c1", q.CategoryID)
	require.NotNil(t, q.Status)
	assert.Equal(t, models.Statuses[0], *q.Status)

	s.DropCategory("other")
	assert.Equal(t, "c1", s.CategoryID())
	s.DropCategory("c1")
	assert.Empty(t, s.CategoryID())

	s.CycleCategory([]string{"c1"})
	s.Reset()
	assert.Equal(t, store.Query{Sort: store.SortTitle}, s.Query())
}

func TestInputState(t *testing.T) {
	s := NewInputState()
	assert.True(t, s.IsEmpty())

	s.Begin("Edit task", "t1", "hello")
	assert.Equal(t, "hello", s.Value())
	assert.Equal(t, "t1", s.TargetID)
	assert.True(t, s.Input.Focused())

	s.Input.SetValue("   ")
	assert.True(t, s.IsEmpty())

	s.Clear()
	assert.Empty(t, s.Value())
	assert.Empty(t, s.Prompt)
	assert.False(t, s.Input.Focused())
}

func TestConfirmState(t *testing.T) {
	s := NewConfirmState()
	s.Ask(ConfirmDeleteTask, "t1", "Delete?")
	assert.Equal(t, ConfirmDeleteTask, s.Action)
	assert.Equal(t, "t1", s.TargetID)

	s.Clear()
	assert.Equal(t, ConfirmNone, s.Action)
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	_, ok := s.Last()
	assert.False(t, ok)

	s.Add(LevelInfo, "one")
	s.Add(LevelError, "two")
	assert.Len(t, s.All(), 2)
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, Notification{Level: LevelError, Message: "two"}, last)

	s.Clear()
	assert.False(t, s.HasAny())
}
