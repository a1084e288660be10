package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

const minBarWidth = 4

// ProgressBar renders a single-line horizontal bar. The bar shrinks to
// fit Width after the label and optional percentage take their share.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6 // "  100%"
	}
	barWidth := max(p.Width-reserved, minBarWidth)

	filled := int(float64(barWidth) * p.Percent)
	filled = min(max(filled, 0), barWidth)

	b.WriteString(lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}
