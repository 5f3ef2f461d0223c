package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tasklane/internal/config"
)

// KeyMap holds the bindings built from the configured key mappings. It
// implements help.KeyMap.
type KeyMap struct {
	AddTask       key.Binding
	EditTask      key.Binding
	DeleteTask    key.Binding
	CycleStatus   key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding

	CreateCategory key.Binding
	RenameCategory key.Binding
	DeleteCategory key.Binding

	ToggleView          key.Binding
	CycleSort           key.Binding
	CycleStatusFilter   key.Binding
	CycleCategoryFilter key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	ClearStorage key.Binding
	ShowHelp     key.Binding
	Quit         key.Binding
}

// NewKeyMap builds bindings from km. Arrow keys always navigate and ctrl+c
// always quits.
func NewKeyMap(km config.KeyMappings) KeyMap {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}

	return KeyMap{
		AddTask:       bind("add task", km.AddTask),
		EditTask:      bind("edit title", km.EditTask),
		DeleteTask:    bind("delete task", km.DeleteTask),
		CycleStatus:   bind("cycle status", km.CycleStatus),
		MoveTaskLeft:  bind("move to prev category", km.MoveTaskLeft),
		MoveTaskRight: bind("move to next category", km.MoveTaskRight),
		MoveTaskUp:    bind("move up", km.MoveTaskUp),
		MoveTaskDown:  bind("move down", km.MoveTaskDown),

		CreateCategory: bind("add category", km.CreateCategory),
		RenameCategory: bind("rename category", km.RenameCategory),
		DeleteCategory: bind("delete category", km.DeleteCategory),

		ToggleView:          bind("kanban/list", km.ToggleView),
		CycleSort:           bind("cycle sort", km.CycleSort),
		CycleStatusFilter:   bind("filter status", km.CycleStatusFilter),
		CycleCategoryFilter: bind("filter category", km.CycleCategoryFilter),

		PrevColumn: bind("prev column", km.PrevColumn, "left"),
		NextColumn: bind("next column", km.NextColumn, "right"),
		PrevTask:   bind("prev task", km.PrevTask, "up"),
		NextTask:   bind("next task", km.NextTask, "down"),

		ClearStorage: bind("clear storage", km.ClearStorage),
		ShowHelp:     bind("help", km.ShowHelp),
		Quit:         bind("quit", km.Quit, "ctrl+c"),
	}
}

// ShortHelp is shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.CycleStatus, k.ToggleView, k.ShowHelp, k.Quit}
}

// FullHelp is shown in the help overlay, one column per group
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddTask, k.EditTask, k.DeleteTask, k.CycleStatus},
		{k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown},
		{k.CreateCategory, k.RenameCategory, k.DeleteCategory, k.ClearStorage},
		{k.ToggleView, k.CycleSort, k.CycleStatusFilter, k.CycleCategoryFilter},
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.ShowHelp, k.Quit},
	}
}
