package models

import "slices"

// Category represents a named group of tasks (a kanban column)
// TaskIDs defines the display order of the category's tasks
type Category struct {
	ID      string
	Name    string
	TaskIDs []string
}

// Clone returns a copy that does not share the TaskIDs backing array
func (c Category) Clone() Category {
	c.TaskIDs = slices.Clone(c.TaskIDs)
	if c.TaskIDs == nil {
		c.TaskIDs = []string{}
	}
	return c
}

// IndexOf returns the position of taskID in the category's sequence, or -1
func (c Category) IndexOf(taskID string) int {
	return slices.Index(c.TaskIDs, taskID)
}

// IsEmpty reports whether no tasks are assigned to the category
func (c Category) IsEmpty() bool {
	return len(c.TaskIDs) == 0
}
