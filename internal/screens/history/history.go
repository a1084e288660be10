// Package history shows the mock test history, newest first.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/ui/theme"
)

// Model is the test history screen.
type Model struct {
	session *screen.Session
}

// New creates the history screen.
func New(session *screen.Session) Model {
	return Model{session: session}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return m, nil
}

func (m Model) View(width, height int) string {
	tests := m.session.State.MockTests
	if len(tests) == 0 {
		return lipgloss.NewStyle().
			Width(width).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Hint.Render("No mock tests taken yet. Run `compass test generate` to start."))
	}

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf(
		"%-20s  %-16s  %-10s  %-7s  %s", "Date", "Topic", "Category", "Score", "Answers")))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(strings.Repeat("─", min(width-8, 70))))
	b.WriteString("\n")

	// Newest first.
	for i := len(tests) - 1; i >= 0; i-- {
		t := tests[i]
		style := theme.Body
		if t.Score >= 70 {
			style = theme.Done
		} else if t.Score < 40 {
			style = theme.Warning
		}
		b.WriteString(style.Render(fmt.Sprintf(
			"%-20s  %-16s  %-10s  %6d%%  %d/%d",
			t.CompletedAt.Local().Format("2006-01-02 15:04"),
			t.Topic,
			t.Category,
			t.Score,
			t.CorrectAnswers, t.TotalQuestions,
		)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (m Model) Title() string { return "Test History" }
