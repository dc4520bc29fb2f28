package tui

import (
	"github.com/charmbracelet/lipgloss"

	"kmzexport/internal/kml"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	hoverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))

	// one glyph color per map symbol; anything else renders plain
	symbolStyles = map[kml.Symbol]lipgloss.Style{
		kml.PurpleTriangle: lipgloss.NewStyle().Foreground(lipgloss.Color("#A855F7")),
		kml.YellowDot:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15")),
		kml.RedFlag:        lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
)

func symbolStyle(s kml.Symbol) lipgloss.Style {
	if st, ok := symbolStyles[s]; ok {
		return st
	}
	return appStyle
}
