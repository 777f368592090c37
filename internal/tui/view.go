package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/arith"
	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database/repository"
)

const screenWidth = 24

var boardRows = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
	{"c"},
}

func (a *App) View() string {
	calcView := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("jaskcalc"),
		a.renderScreen(),
		a.renderBoard(),
	)
	body := calcView
	if a.showTape {
		body = lipgloss.JoinHorizontal(lipgloss.Top, calcView, "  ", a.renderTape())
	}

	var footer string
	if a.confirm {
		footer = warningStyle.Render("Wipe the whole tape?") + " " + a.help.View(confirmKeyMap{a.keys})
	} else {
		footer = a.help.View(a.keys)
	}
	parts := []string{body}
	if a.status != "" {
		parts = append(parts, statusStyle.Render(a.status))
	}
	parts = append(parts, footer)
	return strings.Join(parts, "\n")
}

func (a *App) renderScreen() string {
	s := a.machine.State()
	lines := []string{
		expressionStyle.Width(screenWidth).Render(expression(s)),
		displayStyle.Width(screenWidth).Render(orZero(a.display)),
		resultStyle.Width(screenWidth).Render("= " + a.result),
	}
	return screenStyle.Render(strings.Join(lines, "\n"))
}

// expression is the pending "first op" prefix shown above the display.
func expression(s calc.State) string {
	if !s.HasPending() {
		return ""
	}
	first := s.FirstOperand
	if first == "" {
		first = "0"
	}
	return first + " " + s.Pending.Symbol()
}

func orZero(text string) string {
	if text == "" {
		return "0"
	}
	return text
}

func (a *App) renderBoard() string {
	pending := a.machine.State().Pending
	rows := make([]string, 0, len(boardRows))
	for _, row := range boardRows {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			cells = append(cells, a.renderButton(label, pending))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderButton(label string, pending arith.Operator) string {
	if label == a.pressed || (pending.Valid() && label == pending.Symbol()) {
		return pressedStyle.Render(label)
	}
	return buttonStyle.Foreground(buttonColor(label)).Render(label)
}

func (a *App) renderTape() string {
	lines := []string{titleStyle.Render("Tape")}
	if len(a.tape) == 0 {
		lines = append(lines, expressionStyle.Render("(empty)"))
	}
	for _, e := range a.tape {
		lines = append(lines, tapeLine(e))
	}
	return tapeStyle.Render(strings.Join(lines, "\n"))
}

// calculation is the "left op right" part of a tape entry.
func calculation(e repository.Entry) string {
	symbol := e.Operator
	if op, err := arith.ParseOperator(e.Operator); err == nil {
		symbol = op.Symbol()
	}
	return e.Left + " " + symbol + " " + e.Right
}

func tapeLine(e repository.Entry) string {
	line := calculation(e) + " = " + e.Result
	if e.Chained {
		return tapeChainStyle.Render("» " + line)
	}
	return "  " + line
}
