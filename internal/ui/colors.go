package ui

import "github.com/charmbracelet/lipgloss"

var Colors = struct {
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
}{
	Success: lipgloss.Color("#10B981"),
	Warning: lipgloss.Color("#F59E0B"),
	Error:   lipgloss.Color("#EF4444"),
	Info:    lipgloss.Color("#3B82F6"),

	TextPrimary:   lipgloss.Color("#E5E7EB"),
	TextSecondary: lipgloss.Color("#9CA3AF"),
	TextMuted:     lipgloss.Color("#6B7280"),
}

func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Colors.Success).Bold(true)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Colors.Error).Bold(true)
}

func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Colors.Warning).Bold(true)
}

func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Colors.Info).Bold(true)
}

func MutedTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Colors.TextMuted)
}
