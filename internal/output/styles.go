package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette shared by the console formatters.
var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorText   = lipgloss.Color("#FFFCF0")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorRed    = lipgloss.Color("#D14D41")
	colorMuted  = lipgloss.Color("#6F6E69")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Foreground(colorText).Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)

// gradeStyle colors a readiness grade from green (A) to red (F).
func gradeStyle(g string) lipgloss.Style {
	switch g {
	case "A", "B":
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	case "C", "D":
		return lipgloss.NewStyle().Bold(true).Foreground(colorOrange)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	}
}

// renderTable draws a rounded table whose first column is left aligned and
// the rest right aligned.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numericStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
