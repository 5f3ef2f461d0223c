package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a task. Any state can be set from any
// other; there is no terminal state.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// DefaultStatus is the status assigned to newly created tasks
const DefaultStatus = StatusTodo

// Statuses lists every status in board order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// ParseStatus maps user or persisted text to a Status (case-insensitive).
// "in progress" is accepted because older data stored it with a space.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to-do", "to do":
		return StatusTodo, nil
	case "in-progress", "in progress", "in_progress", "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q (must be: todo, in-progress, done)", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusTodo || s == StatusInProgress || s == StatusDone
}

// Order is the sort rank used by the list view: todo < in-progress < done
func (s Status) Order() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusDone:
		return 2
	}
	return len(Statuses)
}

// Next cycles todo -> in-progress -> done -> todo
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Label returns the human-readable name ("In Progress")
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

func (s Status) String() string {
	return string(s)
}
