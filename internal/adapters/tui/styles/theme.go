package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Category rows
	CategoryName = lipgloss.NewStyle().
			Foreground(Secondary)

	CategoryCount = lipgloss.NewStyle().
			Foreground(Muted)

	CategorySelected = lipgloss.NewStyle().
				Background(Primary).
				Foreground(White).
				Bold(true)

	SensitiveName = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	FileRow = lipgloss.NewStyle().
		Foreground(Muted)

	// Messages
	SuccessMsg = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error)

	// Help bar
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	InputLabel = lipgloss.NewStyle().
			Bold(true)
)
