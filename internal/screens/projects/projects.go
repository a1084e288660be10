// Package projects lists portfolio projects and toggles completion.
package projects

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/router"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/screens/projectform"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/ui/theme"
	"github.com/careercompass/compass/internal/userstate"
)

// Model is the projects screen.
type Model struct {
	session  *screen.Session
	selected int
	errMsg   string
}

// New creates the projects screen.
func New(session *screen.Session) Model {
	return Model{session: session}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	list := m.session.State.Projects

	switch kmsg.String() {
	case "a":
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: projectform.New(m.session)}
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		m.errMsg = ""
	case "down", "j":
		if m.selected < len(list)-1 {
			m.selected++
		}
		m.errMsg = ""
	case "enter", " ":
		if m.selected >= len(list) {
			return m, nil
		}
		p := list[m.selected]
		next, err := userstate.SetProjectCompletion(m.session.State, p.ID, !p.Completed, time.Now())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.session.State = next
		if err := m.session.Save(context.Background()); err != nil {
			m.errMsg = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.errMsg = ""
	}

	return m, nil
}

func (m Model) View(width, height int) string {
	list := m.session.State.Projects
	if len(list) == 0 {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No projects yet. Press 'a' to add one."))
	}

	var b strings.Builder
	for i, p := range list {
		mark := "○"
		style := theme.Unselected
		if p.Completed {
			mark = "●"
			style = theme.Done
		}

		stack := ""
		if len(p.TechStack) > 0 {
			stack = "  [" + strings.Join(p.TechStack, ", ") + "]"
		}
		line := fmt.Sprintf("%s %-30s%s", mark, p.Title, stack)

		if i == m.selected {
			style = theme.Selected
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
		if i == m.selected && p.Description != "" {
			b.WriteString(theme.Hint.Render("      " + p.Description))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render(m.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (m Model) Title() string { return "Projects" }

// KeyHints provides footer hints for this screen.
func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle done"},
		{Key: "a", Description: "Add"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
