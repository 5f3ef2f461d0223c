package theme

import "github.com/thenoetrevino/tasklane/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Background       string
	ColumnBackground string
	Highlight        string
	Subtle           string
	Normal           string
	Title            string
	Create           string
	Edit             string
	Delete           string
	ColumnBorder     string
	TaskBorder       string
	TaskBg           string
	SelectedBorder   string
	SelectedBg       string
	StatusTodo       string
	StatusInProgress string
	StatusDone       string
	InfoFg           string
	InfoBg           string
	WarningFg        string
	WarningBg        string
	ErrorFg          string
	ErrorBg          string
	StatusBarBg      string
	StatusBarText    string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Background = scheme.Background
	ColumnBackground = scheme.ColumnBackground
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	TaskBorder = scheme.TaskBorder
	TaskBg = scheme.TaskBackground
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	StatusTodo = scheme.StatusTodo
	StatusInProgress = scheme.StatusInProgress
	StatusDone = scheme.StatusDone
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
	StatusBarBg = scheme.StatusBarBg
	StatusBarText = scheme.StatusBarText
}
