package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"multimodel/internal/model"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableRuleStyle   = lipgloss.NewStyle().Faint(true)
)

// Table renders records as a bordered grid in canonical column order, the
// tabular counterpart of Results used by the scripted queries. Cells longer
// than maxCellWidth are cut with an ellipsis marker so a verbose
// description column cannot blow up the layout.
func Table(records []model.Record, maxCellWidth int) string {
	if len(records) == 0 {
		return "No results found matching your criteria."
	}

	columns := Columns(records)

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = clip(cellText(r[col]), maxCellWidth)
		}
		rows = append(rows, row)
	}

	// Column widths from header and cell content.
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += 2 // cell padding
	}

	var sb strings.Builder

	for i, col := range columns {
		sb.WriteString(tableHeaderStyle.Width(widths[i]).Render(col))
		if i < len(columns)-1 {
			sb.WriteString(tableRuleStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	total := len(columns) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(tableRuleStyle.Render(strings.Repeat("-", total)) + "\n")

	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(tableCellStyle.Width(widths[i]).Render(cell))
			if i < len(row)-1 {
				sb.WriteString(tableRuleStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func clip(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
