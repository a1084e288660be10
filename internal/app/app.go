package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/metrics"
	"github.com/careercompass/compass/internal/router"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/screens/home"
	"github.com/careercompass/compass/internal/ui/layout"
)

// Model is the root Bubble Tea model. It owns the window size and the
// screen router; everything inside the frame belongs to the screens.
type Model struct {
	session *screen.Session
	router  *router.Router
	width   int
	height  int
}

func newModel(session *screen.Session) Model {
	return Model{
		session: session,
		router:  router.New(home.New(session)),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc navigates back; the home screen stays put.
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	return m, m.router.Update(msg)
}

// footerHints asks the active screen for its key hints, falling back
// to stack-position defaults.
func (m Model) footerHints() []layout.KeyHint {
	if hinter, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return hinter.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var title string
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	readiness := metrics.Compute(m.session.State).ReadinessScore
	header := layout.RenderHeader(title, readiness, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the TUI and blocks until it exits.
func Run(session *screen.Session) error {
	if _, err := tea.NewProgram(newModel(session)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
