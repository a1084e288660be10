// Package dashboard renders the readiness overview: the composite
// score, per-skill bars, and progress counters. Everything here is
// derived on the fly; nothing is read from storage beyond the state
// snapshot in the session.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/metrics"
	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/ui/components"
	"github.com/careercompass/compass/internal/ui/theme"
)

// Model is the dashboard screen.
type Model struct {
	session *screen.Session
}

// New creates the dashboard screen.
func New(session *screen.Session) Model {
	return Model{session: session}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return m, nil
}

func (m Model) View(width, height int) string {
	d := metrics.Compute(m.session.State)
	barWidth := min(width-20, 50)

	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Placement Readiness: %d%%", d.ReadinessScore)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Bold(true).Render("Skills"))
	b.WriteString("\n")
	for _, c := range roadmap.Categories() {
		v := m.session.State.Skills.Get(c)
		label := fmt.Sprintf("%-15s", c.DisplayName())
		bar := components.NewProgressBar(label, float64(v)/100, true, barWidth)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Bold(true).Render("Progress"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Roadmap   %d/%d topics (%d%%)",
		d.CompletedTopicsCount, d.TotalTopicsCount, d.RoadmapProgress)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Projects  %d completed (score %d)",
		d.CompletedProjectsCount, d.ProjectsScore)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Tests     average %d%%", d.AverageMockTestScore)))
	b.WriteString("\n\n")

	b.WriteString(theme.Done.Render(fmt.Sprintf("Strongest: %s (%d)", d.StrongestSkill.Name, d.StrongestSkill.Value)))
	b.WriteString("\n")
	b.WriteString(theme.Warning.Render(fmt.Sprintf("Weakest:   %s (%d)", d.WeakestSkill.Name, d.WeakestSkill.Value)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Focus suggestion: work on %s next.", d.WeakestSkill.Name)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Render(b.String())
}

func (m Model) Title() string { return "Dashboard" }
