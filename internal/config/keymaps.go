package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	CycleStatus   string `yaml:"cycle_status"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down"`

	// Categories
	CreateCategory string `yaml:"create_category"`
	RenameCategory string `yaml:"rename_category"`
	DeleteCategory string `yaml:"delete_category"`

	// Views
	ToggleView          string `yaml:"toggle_view"`
	CycleSort           string `yaml:"cycle_sort"`
	CycleStatusFilter   string `yaml:"cycle_status_filter"`
	CycleCategoryFilter string `yaml:"cycle_category_filter"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ClearStorage string `yaml:"clear_storage"`
	ShowHelp     string `yaml:"show_help"`
	Quit         string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		CycleStatus:   "s",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",

		CreateCategory: "C",
		RenameCategory: "R",
		DeleteCategory: "X",

		ToggleView:          "v",
		CycleSort:           "o",
		CycleStatusFilter:   "f",
		CycleCategoryFilter: "g",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		ClearStorage: "Z",
		ShowHelp:     "?",
		Quit:         "q",
	}
}

// bindings lists every mapping in declaration order
func (k *KeyMappings) bindings() []*string {
	return []*string{
		&k.AddTask, &k.EditTask, &k.DeleteTask, &k.CycleStatus,
		&k.MoveTaskLeft, &k.MoveTaskRight, &k.MoveTaskUp, &k.MoveTaskDown,
		&k.CreateCategory, &k.RenameCategory, &k.DeleteCategory,
		&k.ToggleView, &k.CycleSort, &k.CycleStatusFilter, &k.CycleCategoryFilter,
		&k.PrevColumn, &k.NextColumn, &k.PrevTask, &k.NextTask,
		&k.ClearStorage, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	dst, src := k.bindings(), defaults.bindings()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// duplicate returns a key bound to two actions, or ""
func (k *KeyMappings) duplicate() string {
	seen := make(map[string]bool)
	for _, b := range k.bindings() {
		if seen[*b] {
			return *b
		}
		seen[*b] = true
	}
	return ""
}
