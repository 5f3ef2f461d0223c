package cli

import (
	"time"

	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/store"
)

// TaskView is the JSON shape of a task
type TaskView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	CategoryID   string    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Position     int       `json:"position"`
}

func (v TaskView) GetID() string { return v.ID }

// CategoryView is the JSON shape of a category
type CategoryView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	TaskCount int      `json:"task_count"`
	TaskIDs   []string `json:"task_ids"`
}

func (v CategoryView) GetID() string { return v.ID }

// TaskList is a list of tasks; quiet mode prints one id per line
type TaskList []TaskView

func (l TaskList) GetIDs() []string {
	ids := make([]string, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}

// CategoryList is a list of categories; quiet mode prints one id per line
type CategoryList []CategoryView

func (l CategoryList) GetIDs() []string {
	ids := make([]string, len(l))
	for i, c := range l {
		ids[i] = c.ID
	}
	return ids
}

// NewTaskView resolves the task's category name and position from st
func NewTaskView(st *store.Store, t models.Task) TaskView {
	v := TaskView{
		ID:         t.ID,
		Title:      t.Title,
		Status:     t.Status.String(),
		CreatedAt:  t.CreatedAt,
		CategoryID: t.CategoryID,
		Position:   -1,
	}
	if c, ok := st.Category(t.CategoryID); ok {
		v.CategoryName = c.Name
		v.Position = c.IndexOf(t.ID)
	}
	return v
}

// NewTaskList maps tasks to views
func NewTaskList(st *store.Store, tasks []models.Task) TaskList {
	out := make(TaskList, len(tasks))
	for i, t := range tasks {
		out[i] = NewTaskView(st, t)
	}
	return out
}

// NewCategoryView maps a category to its view
func NewCategoryView(c models.Category) CategoryView {
	ids := c.TaskIDs
	if ids == nil {
		ids = []string{}
	}
	return CategoryView{ID: c.ID, Name: c.Name, TaskCount: len(ids), TaskIDs: ids}
}
