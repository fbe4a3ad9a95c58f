package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/greetcards/internal/deck"
)

// Catppuccin Mocha.
const (
	colorRose   lipgloss.Color = "#f38ba8"
	colorPeach  lipgloss.Color = "#fab387"
	colorMauve  lipgloss.Color = "#cba6f7"
	colorSky    lipgloss.Color = "#89dceb"
	colorGreen  lipgloss.Color = "#a6e3a1"
	colorBlue   lipgloss.Color = "#89b4fa"
	colorText   lipgloss.Color = "#cdd6f4"
	colorMuted  lipgloss.Color = "#a6adc8"
	colorBorder lipgloss.Color = "#585b70"
	colorMantle lipgloss.Color = "#181825"
)

var variantAccent = map[deck.Variant]lipgloss.Color{
	deck.VariantRose:  colorRose,
	deck.VariantPeach: colorPeach,
	deck.VariantMauve: colorMauve,
	deck.VariantSky:   colorSky,
	deck.VariantGreen: colorGreen,
}

func accentFor(v deck.Variant) lipgloss.Color {
	if c, ok := variantAccent[v]; ok {
		return c
	}
	return colorBlue
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	arrowStyle    = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	arrowOffStyle = lipgloss.NewStyle().Foreground(colorBorder)
	continueStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorGreen).
			Bold(true).
			Padding(0, 2)
	keyStyle      = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
