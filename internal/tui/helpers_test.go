package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/persist"
	"github.com/thenoetrevino/tasklane/internal/storage"
	"github.com/thenoetrevino/tasklane/internal/store"
	"github.com/thenoetrevino/tasklane/internal/testutil"
)

func setupModel(t *testing.T) Model {
	t.Helper()
	return setupModelWithKV(t, storage.NewMemory(), config.Default())
}

func setupModelWithKV(t *testing.T, kv storage.KV, cfg *config.Config) Model {
	t.Helper()
	st, err := store.Open(context.Background(), persist.New(kv),
		store.WithClock(testutil.Clock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), time.Minute)),
		store.WithIDGenerator(testutil.SequentialIDs("id")),
	)
	require.NoError(t, err)

	m := New(context.Background(), st, cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// keyMsg builds the message a terminal sends for k. Named keys ("enter",
// "esc") map to their codes; anything else is typed text.
func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	}
	return tea.KeyPressMsg(tea.Key{Text: k, Code: []rune(k)[0]})
}

// press sends each key in turn and returns the resulting model
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

// typeText sends s one rune at a time
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func addTask(t *testing.T, m Model, title string) Model {
	t.Helper()
	m = press(t, m, "a")
	m = typeText(t, m, title)
	return press(t, m, "enter")
}

func titles(m Model, col int) []string {
	cols := m.Columns()
	if col >= len(cols) {
		return nil
	}
	out := []string{}
	for _, task := range cols[col].Tasks {
		out = append(out, task.Title)
	}
	return out
}
