package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderHeader renders the app title bar with the server address and its
// reachability status ("connected"/"offline", empty while the startup
// banner check is still in flight).
func RenderHeader(serverURL, status string, width int) string {
	title := TitleStyle.Render(fmt.Sprintf("%s v%s", AppName, AppVersion()))
	sub := SubtitleStyle.Render(serverURL)

	parts := []string{title, "  ", sub}
	switch status {
	case "connected":
		parts = append(parts, "  ", StatusActiveStyle.Render(status))
	case "offline":
		parts = append(parts, "  ", StatusInactiveStyle.Render(status))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if width >= MinTerminalWidth {
		contentWidth := width
		if contentWidth > MaxContentWidth {
			contentWidth = MaxContentWidth
		}
		return lipgloss.PlaceHorizontal(contentWidth, lipgloss.Left, line)
	}
	return line
}
