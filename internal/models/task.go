package models

import "time"

// Task represents a single to-do item owned by exactly one category
type Task struct {
	ID         string
	Title      string
	Status     Status
	CreatedAt  time.Time
	CategoryID string
}

// BoardColumn is a DTO for the kanban view: a category together with its
// tasks in display order
type BoardColumn struct {
	Category Category
	Tasks    []Task
}
