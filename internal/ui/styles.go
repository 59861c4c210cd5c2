package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for headings

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	// Markdown elements
	StyleH1 = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)
	StyleH2     = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleH3     = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	StyleBullet = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleLabel  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleCode   = lipgloss.NewStyle().Foreground(ColorSecondary)

	// Form
	StyleFocused = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleBlurred = lipgloss.NewStyle().Foreground(ColorSecondary)

	StyleInputBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
