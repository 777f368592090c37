package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jask/jaskcalc/internal/database/repository"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	tableResultStyle = tableCellStyle.Foreground(colorResult).Align(lipgloss.Right)
	tableMutedStyle  = tableCellStyle.Foreground(colorOverlay1)
)

const (
	colWhen = iota
	colCalculation
	colResult
	colChained
)

// TapeTable renders entries, newest first, for the history command.
func TapeTable(entries []repository.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		chained := ""
		if e.Chained {
			chained = "chained"
		}
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			calculation(e),
			e.Result,
			chained,
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorSurface1)).
		Headers("when", "calculation", "result", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == colResult:
				return tableResultStyle
			case col == colWhen, col == colChained:
				return tableMutedStyle
			}
			return tableCellStyle
		}).
		Render()
}
