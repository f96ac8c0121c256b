package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	g := m.geometry()
	contentWidth := max(10, m.width)

	// Header
	name := m.srcLabel
	if m.hasLayout && m.layout.Dataset.Name != "" {
		name = m.layout.Dataset.Name
	}
	header := titleStyle.Render(" gdpchart ─ " + name + " ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var canvas string
	switch {
	case m.showTable:
		m.tbl.SetWidth(min(g.canvasW-4, 56))
		m.tbl.SetHeight(max(3, min(g.canvasH-2, 20)))
		box := boxStyle.Render(m.tbl.View())
		canvas = lipgloss.Place(g.canvasW, g.canvasH, lipgloss.Center, lipgloss.Center, box)
	case m.loading:
		msg := m.spin.View() + " loading " + m.srcLabel
		canvas = lipgloss.Place(g.canvasW, g.canvasH, lipgloss.Center, lipgloss.Center, msg)
	case m.errMsg != "":
		box := boxStyle.MaxWidth(g.canvasW).Render(errorStyle.Render(m.errMsg))
		canvas = lipgloss.Place(g.canvasW, g.canvasH, lipgloss.Center, lipgloss.Center, box)
	case m.hasLayout:
		canvas = m.renderChart(g)
	default:
		canvas = lipgloss.Place(g.canvasW, g.canvasH, lipgloss.Left, lipgloss.Top, "")
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvas)
	} else {
		body = canvas
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// hovered bar at bottom-right
	info := ""
	if m.interaction.Tooltip.Visible {
		info = dimStyle.Render("  " + m.interaction.Tooltip.Date + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(info))
	right := lipgloss.Place(spacerW+lipgloss.Width(info), 1, lipgloss.Right, lipgloss.Center, info)
	footer := lipgloss.NewStyle().Width(contentWidth).MaxHeight(footerHeight).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).MaxHeight(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"r reload",
		"t table",
		"Tab datasets",
		"Enter open",
		"u remote",
		"s save svg",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
