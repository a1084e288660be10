// Package roadmapview lists roadmap topics with their unlock states and
// lets the user toggle completion. Locked topics cannot be completed;
// the unlock rule (all prerequisites done) is enforced by the engine,
// not the view.
package roadmapview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/ui/theme"
	"github.com/careercompass/compass/internal/userstate"
)

// Model is the roadmap screen.
type Model struct {
	session  *screen.Session
	selected int
	errMsg   string
}

// New creates the roadmap screen.
func New(session *screen.Session) Model {
	return Model{session: session}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	topics := m.session.State.Roadmap.Topics

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		m.errMsg = ""
	case "down", "j":
		if m.selected < len(topics)-1 {
			m.selected++
		}
		m.errMsg = ""
	case "enter", " ":
		if m.selected >= len(topics) {
			return m, nil
		}
		topic := topics[m.selected]
		next, err := userstate.SetTopicCompletion(m.session.State, topic.ID, !topic.Completed, time.Now())
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
	topics := m.session.State.Roadmap.Topics
	if len(topics) == 0 {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No roadmap yet. Run `compass roadmap generate` to create one."))
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Source: %s", m.session.State.Roadmap.Source)))
	b.WriteString("\n\n")

	for i, t := range topics {
		state := roadmap.StateOf(t, topics, nil)
		line := fmt.Sprintf("%s %-32s %-14s %-8s %s",
			state.Icon(), t.Title, t.Category.DisplayName(), t.Difficulty, state.Label())

		style := theme.Unselected
		switch state {
		case roadmap.StateCompleted:
			style = theme.Done
		case roadmap.StateLocked:
			style = theme.Locked
		}
		if i == m.selected {
			style = theme.Selected
			line = "▸ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
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

func (m Model) Title() string { return "Roadmap" }

// KeyHints provides footer hints for this screen.
func (m Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle done"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
