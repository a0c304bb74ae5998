package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	enabledColor  = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}
	disabledColor = lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#8b949e"}

	enabledStyle  = lipgloss.NewStyle().Bold(true).Foreground(enabledColor)
	disabledStyle = lipgloss.NewStyle().Foreground(disabledColor)
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// StatusLabel renders a split status, styled only in terminal mode.
func StatusLabel(enabled bool, f Format) string {
	label := "disabled"
	style := disabledStyle
	if enabled {
		label = "enabled"
		style = enabledStyle
	}
	if f != FormatTerminal {
		return label
	}
	return style.Render(label)
}

// Heading renders a section heading, styled only in terminal mode.
func Heading(s string, f Format) string {
	if f != FormatTerminal {
		return s
	}
	return headingStyle.Render(s)
}
