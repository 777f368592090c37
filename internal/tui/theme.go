package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// semantic aliases
const (
	colorBrand    = colorPink
	colorFocus    = colorLavender
	colorDigit    = colorText
	colorOperator = colorPeach
	colorEqual    = colorGreen
	colorClear    = colorRed
	colorResult   = colorTeal
	colorWarning  = colorYellow
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	displayStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true).
			Align(lipgloss.Right)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorResult).
			Align(lipgloss.Right)

	expressionStyle = lipgloss.NewStyle().
			Foreground(colorOverlay1).
			Align(lipgloss.Right)

	buttonStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Padding(0, 1).
			MarginRight(1)

	pressedStyle = buttonStyle.
			Background(colorFocus).
			Foreground(colorBase).
			Bold(true)

	tapeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Padding(0, 1)

	tapeChainStyle = lipgloss.NewStyle().Foreground(colorBlue)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorMantle).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)
)

// buttonColor picks the face color for a board button label.
func buttonColor(label string) lipgloss.Color {
	switch label {
	case "+", "-", "*", "/":
		return colorOperator
	case "=":
		return colorEqual
	case "c":
		return colorClear
	default:
		return colorDigit
	}
}
