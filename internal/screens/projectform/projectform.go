// Package projectform is a small form for adding a portfolio project.
package projectform

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/router"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/ui/components"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/ui/theme"
	"github.com/careercompass/compass/internal/userstate"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldTech
	fieldCount
)

// Model is the add-project form.
type Model struct {
	session *screen.Session
	inputs  [fieldCount]components.TextInput
	focused int
	errMsg  string
}

// New creates the form with the title field focused.
func New(session *screen.Session) Model {
	m := Model{session: session}
	m.inputs[fieldTitle] = components.NewTextInput("Project title", 60)
	m.inputs[fieldDescription] = components.NewTextInput("Short description", 120)
	m.inputs[fieldTech] = components.NewTextInput("Tech stack, comma-separated", 120)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.inputs[fieldTitle].Init()
}

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return m.focusField((m.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return m.focusField((m.focused + fieldCount - 1) % fieldCount)
		case "enter":
			if m.focused < fieldCount-1 {
				return m.focusField(m.focused + 1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) focusField(i int) (screen.Screen, tea.Cmd) {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m, m.inputs[i].Focus()
}

func (m Model) submit() (screen.Screen, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.errMsg = "Title is required."
		m.inputs[fieldTitle].Submit(false)
		return m.focusField(fieldTitle)
	}

	var tech []string
	for _, t := range strings.Split(m.inputs[fieldTech].Value(), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tech = append(tech, t)
		}
	}

	next, err := userstate.AddProject(m.session.State, userstate.ProjectInput{
		Title:       title,
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		TechStack:   tech,
	}, time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.session.State = next
	if err := m.session.Save(context.Background()); err != nil {
		m.errMsg = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}

	return m, func() tea.Msg { return router.PopScreenMsg{} }
}

func (m Model) View(width, height int) string {
	labels := [fieldCount]string{"Title", "Description", "Tech stack"}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render("Add a project"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		style := theme.Unselected
		if i == m.focused {
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%-12s", labels[i])))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(theme.Warning.Render(m.errMsg))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (m Model) Title() string { return "Add Project" }

// KeyHints provides footer hints for this screen.
func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Cancel"},
	}
}
