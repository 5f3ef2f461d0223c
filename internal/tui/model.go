package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/logging"
	"github.com/thenoetrevino/tasklane/internal/store"
	"github.com/thenoetrevino/tasklane/internal/tui/state"
)

// Model is the bubbletea model for the board. The store is the source of
// truth; the model only keeps cursors, dialogs and filters.
type Model struct {
	Ctx    context.Context
	Store  *store.Store
	Config *config.Config
	Keys   KeyMap
	Help   help.Model

	UiState           *state.UIState
	FilterState       *state.FilterState
	InputState        *state.InputState
	ConfirmState      *state.ConfirmState
	NotificationState *state.NotificationState

	logger zerolog.Logger
}

// New creates the model over st. The initial view comes from
// cfg.DefaultView.
func New(ctx context.Context, st *store.Store, cfg *config.Config) Model {
	view := state.KanbanView
	if cfg.DefaultView == config.ViewList {
		view = state.ListView
	}

	return Model{
		Ctx:               ctx,
		Store:             st,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		Help:              help.New(),
		UiState:           state.NewUIState(view),
		FilterState:       state.NewFilterState(),
		InputState:        state.NewInputState(),
		ConfirmState:      state.NewConfirmState(),
		NotificationState: state.NewNotificationState(),
		logger:            logging.Component("tui"),
	}
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}
