package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Dark, focused, closer to an IDE than a game.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#FB923C") // Orange
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E5E7EB") // Light Gray
	TextDim   = lipgloss.Color("#6B7280") // Gray
	BgDark    = lipgloss.Color("#0F1117") // Near Black
	BgCard    = lipgloss.Color("#1F2430") // Dark Gray
	Border    = lipgloss.Color("#373E4D") // Gray Blue
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Done = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
