package preview

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing and sizing, in terminal cells.
const (
	SpaceXS = 1
	SpaceSM = 2

	CardWidth    = 38
	CardGap      = 2
	MinWidth     = CardWidth
	DefaultWidth = 3*CardWidth + 2*CardGap
)

var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#B45309",
		Dark:  "#F59E0B",
	}
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#4B5563",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#D1D5DB",
		Dark:  "#404040",
	}
	ColorLabelBackground = lipgloss.AdaptiveColor{
		Light: "#262626",
		Dark:  "#262626",
	}
)

var (
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorLabelBackground).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary).
			Padding(0, SpaceSM).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	monoMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	monoPrimaryStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS).
			Width(CardWidth - 2)

	focusedCardStyle = cardStyle.
				Border(lipgloss.DoubleBorder()).
				BorderForeground(ColorPrimary)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	specLabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	sectionLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorLabelBackground).
			Padding(0, SpaceSM).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
