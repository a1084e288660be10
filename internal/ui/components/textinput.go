package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

// TextInput wraps bubbles/textinput and adds a pass/fail marker shown
// after submission.
type TextInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	if !t.submitted {
		return view
	}
	mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	if t.valid {
		mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view + " " + mark
}

func (t TextInput) Value() string { return t.Model.Value() }

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }

func (t *TextInput) Blur() { t.Model.Blur() }

// Submit records the validation outcome so View can show the marker.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
