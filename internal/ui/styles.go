package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/version"
)

// Application branding constants
const (
	AppName   = "TYPEPOLISH"
	GitHubURL = "github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style for the app header
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Pane label style ("Input", "Polished")
	PaneLabelStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Input pane border
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	// Output pane border
	OutputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Changes summary line
	SummaryStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	// Transient notice (failures)
	NoticeStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Status bar segments
	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	StatusValueStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	StatusActiveStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	StatusInactiveStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Tone chips
	ToneStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	SelectedToneStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				Padding(0, 1)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)
