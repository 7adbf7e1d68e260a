package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/leadbook/internal/app"
	"github.com/thenoetrevino/leadbook/internal/tui"
	"github.com/thenoetrevino/leadbook/internal/tui/handlers"
	"github.com/thenoetrevino/leadbook/internal/tui/modelops"
	"github.com/thenoetrevino/leadbook/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
// It delegates updates to tui/handlers and rendering to tui/render.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model and loads leads, the
// note for today and the saved credentials.
func New(ctx context.Context, a *app.App) *App {
	model := tui.InitialModel(ctx, a)
	modelops.LoadAll(&model)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.model.LeadForm.Init()
}

// Update handles all messages and updates the model.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View renders the current state of the application.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
