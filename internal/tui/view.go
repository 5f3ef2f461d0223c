package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasklane/internal/models"
	"github.com/thenoetrevino/tasklane/internal/tui/notifications"
	"github.com/thenoetrevino/tasklane/internal/tui/state"
	"github.com/thenoetrevino/tasklane/internal/tui/theme"
)

const (
	columnWidth = 30
	dialogWidth = 50
)

// View renders the board with any dialog layered on top.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	body := m.viewKanban()
	if m.UiState.View() == state.ListView {
		body = m.viewList()
	}
	base := lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), body, m.viewStatusBar())

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if modal := m.modal(); modal != "" {
		x := max((m.UiState.Width()-lipgloss.Width(modal))/2, 0)
		y := max((m.UiState.Height()-lipgloss.Height(modal))/2, 0)
		layers = append(layers, lipgloss.NewLayer(modal).X(x).Y(y).Z(1))
	}

	view.Content = lipgloss.NewCompositor(layers...).Render()
	return view
}

func (m Model) viewHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Render("tasklane")

	viewName := "kanban"
	if m.UiState.View() == state.ListView {
		viewName = "list · sort " + string(m.FilterState.Sort())
	}

	category := "all"
	if c, ok := m.Store.Category(m.FilterState.CategoryID()); ok {
		category = c.Name
	}

	meta := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("  %s · status %s · category %s", viewName, m.FilterState.StatusLabel(), category))

	return title + meta
}

func (m Model) viewStatusBar() string {
	content := m.Help.ShortHelpView(m.Keys.ShortHelp())
	if n, ok := m.NotificationState.Last(); ok {
		content = notifications.RenderInlineFromState(n)
	}

	return lipgloss.NewStyle().
		Width(m.UiState.Width()).
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg)).
		Render(content)
}

// ============================================================================
// KANBAN
// ============================================================================

func (m Model) viewKanban() string {
	cols := m.Columns()
	if len(cols) == 0 {
		return m.placeholder("No categories match the filter")
	}

	// Show the window of columns that fits, keeping the selection in view
	fit := max(m.UiState.Width()/(columnWidth+1), 1)
	start := 0
	if sel := m.UiState.SelectedColumn(); sel >= fit {
		start = sel - fit + 1
	}
	end := min(start+fit, len(cols))

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rendered = append(rendered, m.viewColumn(cols[i], i == m.UiState.SelectedColumn()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewColumn(col models.BoardColumn, selected bool) string {
	border := theme.ColumnBorder
	if selected {
		border = theme.SelectedBorder
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render(fmt.Sprintf("%s (%d)", truncate(col.Category.Name, columnWidth-8), len(col.Tasks)))

	lines := []string{header, ""}
	if len(col.Tasks) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render("empty"))
	}
	for i, t := range col.Tasks {
		lines = append(lines, m.viewCard(t, selected && i == m.UiState.SelectedTask()))
	}

	return lipgloss.NewStyle().
		Width(columnWidth).
		Height(m.UiState.ContentHeight()).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Background(lipgloss.Color(theme.ColumnBackground)).
		Render(strings.Join(lines, "\n"))
}

func (m Model) viewCard(t models.Task, selected bool) string {
	style := lipgloss.NewStyle().
		Width(columnWidth-4).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.TaskBg))
	if selected {
		style = style.
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)).
			Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(statusBadge(t.Status) + " " + truncate(t.Title, columnWidth-8))
}

// ============================================================================
// LIST
// ============================================================================

func (m Model) viewList() string {
	rows := m.Rows()
	if len(rows) == 0 {
		return m.placeholder("No tasks found")
	}

	names := make(map[string]string)
	for _, c := range m.Store.Categories() {
		names[c.ID] = c.Name
	}

	titleWidth := max(m.UiState.Width()-46, 10)
	lines := make([]string, 0, len(rows))
	for i, t := range rows {
		line := fmt.Sprintf("%s  %-*s  %-16s  %s",
			statusBadge(t.Status),
			titleWidth, truncate(t.Title, titleWidth),
			truncate(names[t.CategoryID], 16),
			t.CreatedAt.Local().Format("2006-01-02 15:04"))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
		if i == m.UiState.SelectedRow() {
			style = style.Bold(true).
				Foreground(lipgloss.Color(theme.Highlight)).
				Background(lipgloss.Color(theme.SelectedBg))
		}
		lines = append(lines, style.Render(line))
	}

	return lipgloss.NewStyle().
		Height(m.UiState.ContentHeight()).
		Render(strings.Join(lines, "\n"))
}

// ============================================================================
// DIALOGS
// ============================================================================

func (m Model) modal() string {
	mode := m.UiState.Mode()
	switch {
	case mode.IsInput():
		color := theme.Create
		if mode == state.EditTaskMode || mode == state.RenameCategoryMode {
			color = theme.Edit
		}
		return dialog(color, m.InputState.Prompt, m.InputState.Input.View(), "enter save · esc cancel")
	case mode == state.ConfirmMode:
		return dialog(theme.Delete, "Confirm", m.ConfirmState.Message, "y yes · n no")
	case mode == state.HelpMode:
		return dialog(theme.Highlight, "Keys", m.Help.FullHelpView(m.Keys.FullHelp()), "esc close")
	}
	return ""
}

func dialog(color, title, body, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(title),
		"",
		body,
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(hint),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Background(lipgloss.Color(theme.Background)).
		Padding(1, 2).
		Width(dialogWidth).
		Render(content)
}

func (m Model) placeholder(msg string) string {
	return lipgloss.Place(m.UiState.Width(), m.UiState.ContentHeight(), lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(msg))
}

func statusBadge(s models.Status) string {
	color := theme.StatusTodo
	switch s {
	case models.StatusInProgress:
		color = theme.StatusInProgress
	case models.StatusDone:
		color = theme.StatusDone
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(fmt.Sprintf("%-11s", s.Label()))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-1]) + "…"
}
