package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
	colorBorder  = colorSurface1
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	labelStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	labelFocusStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	labelErrStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	inputBoxFocusStyle = inputBoxStyle.BorderForeground(colorFocus)
	inputBoxErrStyle   = inputBoxStyle.BorderForeground(colorError)

	errorTextStyle = lipgloss.NewStyle().Foreground(colorError)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorAccent).
			Bold(true).
			Padding(0, 2)

	fullNameStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	footerStyle   = lipgloss.NewStyle().Background(colorSurface0).Padding(0, 1)
	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)

	appStyle = lipgloss.NewStyle().Foreground(colorText).Padding(1, 3)
)
