package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf(
		"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(msg)
}

// bar wraps content in the rounded bordered strip used by the header
// and footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the top bar: app name on the left, screen title
// centered, readiness score on the right.
func RenderHeader(title string, readiness int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Compass")
	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("◎ %d%% ready", readiness))

	inner := max(width-4, 0) // border padding

	// Center the title against the full inner width, then distribute
	// the remainder around it.
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	used := lipgloss.Width(left) + leftGap + lipgloss.Width(center) + lipgloss.Width(right)
	rightGap := max(inner-used, 1)

	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter draws the bottom bar listing the active key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content, and footer into a full-height
// frame, stretching the content region to fill the middle.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
