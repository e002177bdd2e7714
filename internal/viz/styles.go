package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	CanvasStyle = lipgloss.NewStyle().Padding(0, 1)

	StatsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(42)

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))

	WarnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))

	HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Separator renders a dim horizontal rule.
func Separator(width int) string {
	return HelpStyle.Render(strings.Repeat("─", width))
}
