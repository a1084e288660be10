package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

// MenuItem is one entry in a vertical menu. Disabled items render
// dimmed and the cursor skips over them.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a keyboard-driven vertical menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu builds a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// move steps the cursor by delta, skipping disabled items. The cursor
// stays put when no enabled item exists in that direction.
func (m *Menu) move(delta int) {
	for i := m.Selected + delta; i >= 0 && i < len(m.Items); i += delta {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}

	return m, nil
}

func (m Menu) View() string {
	cursor := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	normal := lipgloss.NewStyle().Foreground(theme.Text)
	dimmed := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(cursor.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(dimmed.Render("    " + item.Label))
		default:
			b.WriteString(normal.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
