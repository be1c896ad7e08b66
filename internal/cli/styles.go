package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleBlue   = lipgloss.NewStyle().Foreground(colorBlue)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleFg     = lipgloss.NewStyle().Foreground(colorFg)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
)

// header renders a section header with an underline.
func header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", styleHeader.Render(upper), styleDim.Render(line))
}

func dim(text string) string { return styleDim.Render(text) }

// completionStyle colors a completion rate: green on track, yellow
// short of the adjustment threshold, red well under it.
func completionStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 0.70:
		return styleGreen
	case rate >= 0.40:
		return styleYellow
	default:
		return styleRed
	}
}

// renderProgress draws a fixed-width bar like ▰▰▰▱▱▱ for a 0..1 rate.
func renderProgress(rate float64, width int) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	filled := int(rate*float64(width) + 0.5)
	bar := strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
	return completionStyle(rate).Render(bar)
}
