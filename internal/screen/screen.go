package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/testplus/internal/history"
	"github.com/abhisek/testplus/internal/logger"
	"github.com/abhisek/testplus/internal/stats"
	"github.com/abhisek/testplus/internal/studygen"
	"github.com/abhisek/testplus/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Services are the long-lived collaborators screens are built from.
type Services struct {
	Generator studygen.Generator
	Stats     *stats.Service
	History   *history.Store
	Logger    *logger.Logger
}
