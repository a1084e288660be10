package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/careercompass/compass/internal/store"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/userstate"
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

// Session is the shared mutable state all screens operate on: the
// current user state snapshot plus persistence. Screens replace
// State with engine results and call Save; they never mutate topics
// or projects in place.
type Session struct {
	State userstate.UserState
	Repo  store.UserStateRepo
}

// Save persists the current state snapshot.
func (s *Session) Save(ctx context.Context) error {
	return s.Repo.Save(ctx, s.State)
}
