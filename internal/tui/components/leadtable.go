package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/leadbook/internal/models"
	leadservice "github.com/thenoetrevino/leadbook/internal/services/lead"
)

// LeadTableProps configures RenderLeadTable
type LeadTableProps struct {
	Leads []*models.Lead
	// Row and Col are the selected lead and field (index into leadservice.Fields)
	Row, Col int
	Width    int
	Height   int
	EditMode bool
}

// ColumnWidths returns the display width of each field column, padding included
func ColumnWidths(leads []*models.Lead) []int {
	widths := make([]int, len(leadservice.Fields))
	for i, field := range leadservice.Fields {
		w := lipgloss.Width(leadservice.FieldLabels[field])
		for _, l := range leads {
			w = max(w, lipgloss.Width(leadservice.FieldValue(l, field)))
		}
		widths[i] = min(max(w+2, MinColumnWidth), MaxColumnWidth)
	}
	return widths
}

// ColumnOffset returns the first visible field column so that col is on screen.
// The id column is always shown and is not counted.
func ColumnOffset(widths []int, col, width int) int {
	avail := width - IDColumnWidth
	for offset := 0; offset < col; offset++ {
		used := 0
		for i := offset; i <= col; i++ {
			used += widths[i]
		}
		if used <= avail {
			return offset
		}
	}
	return col
}

// RowOffset returns the first visible row so that row is on screen
func RowOffset(row, visibleRows int) int {
	if visibleRows <= 0 {
		return row
	}
	return max(0, row-visibleRows+1)
}

// RenderLeadTable renders the visible window of the lead table
func RenderLeadTable(props LeadTableProps) string {
	if len(props.Leads) == 0 {
		return SubtleStyle.Render("No leads yet. Add one on the Leads Input tab.")
	}

	widths := ColumnWidths(props.Leads)
	colOffset := ColumnOffset(widths, props.Col, props.Width)

	// visible field columns
	var cols []int
	used := IDColumnWidth
	for i := colOffset; i < len(widths); i++ {
		if used+widths[i] > props.Width && len(cols) > 0 {
			break
		}
		cols = append(cols, i)
		used += widths[i]
	}

	var b strings.Builder

	header := []string{cell(HeaderCellStyle, "ID", IDColumnWidth)}
	for _, i := range cols {
		header = append(header, cell(HeaderCellStyle, leadservice.FieldLabels[leadservice.Fields[i]], widths[i]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(TableBorderColor)).Render(strings.Repeat("─", min(used, props.Width))))

	visibleRows := props.Height - tableChromeLines
	rowOffset := RowOffset(props.Row, visibleRows)
	for r := rowOffset; r < len(props.Leads) && r-rowOffset < visibleRows; r++ {
		l := props.Leads[r]
		rowStyle := CellStyle
		if r == props.Row {
			rowStyle = SelectedRowStyle
		}

		cells := []string{cell(rowStyle, strconv.Itoa(l.ID), IDColumnWidth)}
		for _, i := range cols {
			style := rowStyle
			if r == props.Row && i == props.Col {
				style = SelectedCellStyle
			}
			value := leadservice.FieldValue(l, leadservice.Fields[i])
			if hex := StatusColor(l.LeadStatus); hex != "" && leadservice.Fields[i] == "lead_status" && !(r == props.Row && i == props.Col) {
				style = style.Foreground(lipgloss.Color(hex))
			}
			cells = append(cells, cell(style, value, widths[i]))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return b.String()
}

// RenderLeadDetail renders the selected lead's composed name, address and notes
func RenderLeadDetail(l *models.Lead, width int) string {
	if l == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(orDash(l.DisplayName())))
	b.WriteString("  ")
	b.WriteString(SubtleStyle.Render(orDash(l.DisplayAddress())))
	if l.Notes != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(l.Notes, max(width-2, 10)))
	}
	return b.String()
}

// cell pads or truncates text to exactly width cells, padding included
func cell(style lipgloss.Style, text string, width int) string {
	inner := max(width-2, 1)
	text = strings.ReplaceAll(text, "\n", " ")
	text = truncate.StringWithTail(text, uint(inner), "…")
	text = padding.String(text, uint(inner))
	return style.Render(text)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
