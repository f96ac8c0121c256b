package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"gdpchart/internal/chart"
)

// refreshTable rebuilds the data table from the current layout: one row per
// bar with its source values and drawn geometry.
func (m *Model) refreshTable() {
	bars := m.layout.Bars()
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Date", Width: 12},
		{Title: "GDP (Billions)", Width: 16},
		{Title: "Bar height px", Width: 14},
	}
	rows := make([]table.Row, 0, len(bars))
	for _, b := range bars {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", b.Index+1),
			b.Point.Raw,
			"$" + chart.FormatValue(b.Point.Value),
			fmt.Sprintf("%.1f", b.Height),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	if m.hoverIdx >= 0 && m.hoverIdx < len(rows) {
		m.tbl.SetCursor(m.hoverIdx)
	}
}
