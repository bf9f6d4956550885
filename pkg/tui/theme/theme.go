package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar CalendarTheme
	Footer   FooterTheme
}

// CalendarTheme groups styles used by the schedule views.
type CalendarTheme struct {
	Title    lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Today    lipgloss.Style
	Proceed  lipgloss.Style
	Pending  lipgloss.Style
	Stop     lipgloss.Style
	Overflow lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Weekday:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Proceed:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Stop:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			Overflow: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}
