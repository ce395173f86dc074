package theme

import "github.com/charmbracelet/lipgloss"

// Output styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)
)

// Ranking styles
var (
	NeverStyle = lipgloss.NewStyle().
			Foreground(ColorNever).
			Bold(true)

	RankStyle = lipgloss.NewStyle().
			Foreground(ColorRank).
			Bold(true)
)

// SuccessStyle renders confirmations
var SuccessStyle = lipgloss.NewStyle().
	Foreground(ColorSuccess).
	Bold(true)

// ErrorStyle renders error messages
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// Highlight renders s emphasised
func Highlight(s string) string {
	return lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Render(s)
}
