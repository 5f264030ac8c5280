package main

import "github.com/charmbracelet/lipgloss"

// Styles mirror the palette convention other cobra-based tools in this
// corpus use for terminal diagnostics: bold red for errors, muted gray for
// supporting detail, green for success.
var (
	colorError   = lipgloss.Color("#ef4444")
	colorMuted   = lipgloss.Color("#6b7280")
	colorSuccess = lipgloss.Color("#10b981")
	colorLine    = lipgloss.Color("#f59e0b")

	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	lineStyle    = lipgloss.NewStyle().Foreground(colorLine).Bold(true)
)

// renderDecodeError highlights the "line N:" prefix a DecodingError carries
// so the offending line number stands out in a terminal.
func renderDecodeError(msg string, colorize bool) string {
	if !colorize {
		return "error: " + msg
	}
	if idx := indexOfLineColon(msg); idx >= 0 {
		return errorStyle.Render("error: ") + lineStyle.Render(msg[:idx]) + errorStyle.Render(msg[idx:])
	}
	return errorStyle.Render("error: " + msg)
}

func indexOfLineColon(msg string) int {
	if len(msg) < 6 || msg[:5] != "line " {
		return -1
	}
	for i := 5; i < len(msg); i++ {
		if msg[i] == ':' {
			return i + 1
		}
	}
	return -1
}
