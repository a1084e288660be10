// Package home is the entry screen: a menu into the main views.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/metrics"
	"github.com/careercompass/compass/internal/router"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/screens/dashboard"
	"github.com/careercompass/compass/internal/screens/history"
	"github.com/careercompass/compass/internal/screens/projects"
	"github.com/careercompass/compass/internal/screens/roadmapview"
	"github.com/careercompass/compass/internal/ui/components"
	"github.com/careercompass/compass/internal/ui/theme"
)

// Model is the home screen.
type Model struct {
	session *screen.Session
	menu    components.Menu
}

// New creates the home screen.
func New(session *screen.Session) Model {
	menu := components.NewMenu([]components.MenuItem{
		{Label: "Dashboard", Action: push(func() screen.Screen { return dashboard.New(session) })},
		{Label: "Roadmap", Action: push(func() screen.Screen { return roadmapview.New(session) })},
		{Label: "Projects", Action: push(func() screen.Screen { return projects.New(session) })},
		{Label: "Test History", Action: push(func() screen.Screen { return history.New(session) })},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return Model{session: session, menu: menu}
}

func push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: build()}
		}
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	menu, cmd := m.menu.Update(msg)
	m.menu = menu
	return m, cmd
}

func (m Model) View(width, height int) string {
	name := m.session.State.Profile.Name
	if name == "" {
		name = m.session.State.UserID
	}
	d := metrics.Compute(m.session.State)

	greeting := theme.Title.Render(fmt.Sprintf("Welcome back, %s", name))
	status := theme.Subtitle.Render(fmt.Sprintf(
		"Readiness %d%%  ·  %d/%d topics  ·  %d projects done",
		d.ReadinessScore, d.CompletedTopicsCount, d.TotalTopicsCount, d.CompletedProjectsCount,
	))

	body := greeting + "\n" + status + "\n\n" + m.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (m Model) Title() string { return "Home" }
