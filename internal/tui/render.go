package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gdpchart/internal/chart"
)

const (
	headerHeight = 1
	footerHeight = 2
	sidebarWidth = 28
)

// plotGeom locates the canvas and the plot area on screen, in cells.
type plotGeom struct {
	canvasX, canvasY int
	canvasW, canvasH int
	axisW            int // columns left of the plot, holding y tick labels
	x, y             int // top-left of the plot
	cols, rows       int
}

// geometry is shared by View and the mouse handler so both agree on where
// the plot is.
func (m Model) geometry() plotGeom {
	var g plotGeom
	contentW := max(10, m.width)
	contentH := max(4, m.height-headerHeight-footerHeight)
	if m.showSidebar {
		g.canvasX = sidebarWidth + 1
	}
	g.canvasY = headerHeight
	g.canvasW = max(10, contentW-g.canvasX)
	g.canvasH = contentH

	cfg := m.renderer.Config
	if m.hasLayout {
		cfg = m.layout.Config
	}
	g.axisW = int(cfg.Margin.Left / cellPxW)
	g.x = g.canvasX + g.axisW
	g.y = g.canvasY + 1 // caption row
	if m.hasLayout {
		g.cols = min(int(m.layout.Width/cellPxW), g.canvasW-g.axisW-1)
		g.rows = min(int(m.layout.Height/cellPxH), g.canvasH-3)
	}
	g.cols = max(0, g.cols)
	g.rows = max(0, g.rows)
	return g
}

// renderChart draws caption, y axis with labels, bars, gridlines and the
// x axis into a canvas of exactly g.canvasW x g.canvasH cells.
func (m Model) renderChart(g plotGeom) string {
	l := m.layout
	lines := make([]string, 0, g.canvasH)

	lines = append(lines, strings.Repeat(" ", g.axisW)+captionStyle.Render(l.Config.Caption))

	wMic, hMic := g.cols*2, g.rows*4
	microX := func(px float64) int { return int(px / l.Width * float64(wMic)) }
	microY := func(px float64) int { return int(px / l.Height * float64(hMic)) }

	bars := newBrailleBuf(g.cols, g.rows)
	hover := newBrailleBuf(g.cols, g.rows)
	grid := newBrailleBuf(g.cols, g.rows)
	if l.Width > 0 && l.Height > 0 {
		for _, b := range l.Bars() {
			x0 := microX(b.X)
			x1 := max(x0, microX(b.X+b.Width)-1)
			buf := bars
			if b.Index == m.hoverIdx {
				buf = hover
			}
			buf.fillRect(x0, microY(b.Y), x1, hMic-1)
		}
	}

	// y tick label per row, gridline per tick
	labels := make(map[int]string)
	for _, t := range l.YTicks() {
		yy := min(hMic-1, microY(t.Pos))
		if l.Height <= 0 || yy < 0 {
			continue
		}
		grid.dashedHLine(yy, 0, wMic-1, 3)
		labels[yy/4] = t.Label
	}

	for row := 0; row < g.rows; row++ {
		var rb runBuilder
		label, tick := labels[row]
		for _, ch := range padLeft(label, g.axisW-1) {
			rb.add(ch, &dimStyle)
		}
		if tick {
			rb.add('┤', &dimStyle)
		} else {
			rb.add('│', &dimStyle)
		}
		for col := 0; col < g.cols; col++ {
			switch {
			case hover.cell(col, row) != ' ':
				rb.add(hover.cell(col, row), &hoverStyle)
			case bars.cell(col, row) != ' ':
				rb.add(bars.cell(col, row), &barStyle)
			case grid.cell(col, row) != ' ':
				rb.add(grid.cell(col, row), &gridStyle)
			default:
				rb.add(' ', nil)
			}
		}
		lines = append(lines, rb.String())
	}

	// x axis: baseline with tick marks, then year labels
	axis := []rune(strings.Repeat("─", g.cols))
	yearRow := []rune(strings.Repeat(" ", g.cols+8))
	lastEnd := -1
	for _, t := range l.XTicks() {
		col := int(t.Pos / l.Width * float64(g.cols))
		if l.Width <= 0 || col < 0 || col >= g.cols {
			continue
		}
		axis[col] = '┬'
		start := col - len(t.Label)/2
		if start <= lastEnd || start < 0 || start+len(t.Label) > len(yearRow) {
			continue
		}
		copy(yearRow[start:], []rune(t.Label))
		lastEnd = start + len(t.Label)
	}
	lines = append(lines,
		dimStyle.Render(strings.Repeat(" ", max(0, g.axisW-1))+"└"+string(axis)),
		dimStyle.Render(strings.Repeat(" ", g.axisW)+string(yearRow)),
	)

	canvas := lipgloss.NewStyle().Width(g.canvasW).Height(g.canvasH).MaxWidth(g.canvasW).MaxHeight(g.canvasH).
		Render(strings.Join(lines, "\n"))
	return m.renderTooltip(canvas, g)
}

// renderTooltip places the tooltip box at the position computed by
// chart.Enter, translated from chart pixels to canvas cells.
func (m Model) renderTooltip(canvas string, g plotGeom) string {
	tt := m.interaction.Tooltip
	if !tt.Visible {
		return canvas
	}
	box := tooltipStyle.Render(tt.Text())
	x := int(tt.Left/cellPxW) - g.canvasX
	y := int(tt.Top/cellPxH) - g.canvasY
	x = min(x, g.canvasW-lipgloss.Width(box))
	y = max(0, min(y, g.canvasH-lipgloss.Height(box)))
	return overlay(canvas, box, x, y)
}

// hitTest maps a screen cell to the bar drawn there, if any. A cell hits a
// bar when any part of the cell overlaps the bar rectangle.
func (m Model) hitTest(cx, cy int) (chart.Bar, bool) {
	g := m.geometry()
	if !m.hasLayout || g.cols == 0 || g.rows == 0 {
		return chart.Bar{}, false
	}
	if cx < g.x || cx >= g.x+g.cols || cy < g.y || cy >= g.y+g.rows {
		return chart.Bar{}, false
	}
	l := m.layout
	px := (float64(cx-g.x) + 0.5) / float64(g.cols) * l.Width
	cellBottom := float64(cy-g.y+1) / float64(g.rows) * l.Height
	b, ok := l.BarAt(px)
	if !ok || cellBottom < b.Y || b.Height <= 0 {
		return chart.Bar{}, false
	}
	return b, true
}
