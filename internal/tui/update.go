package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gdpchart/internal/chart"
)

// renderedMsg carries the outcome of one Renderer.Render call.
type renderedMsg struct {
	layout chart.Layout
	err    error
}

// startRender cancels any in-flight render and starts a fresh one: the
// container is cleared, data is loaded again and the layout recomputed for
// the current width.
func (m *Model) startRender(reason string) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loading = true
	m.hasLayout = false
	m.errMsg = ""
	m.hoverIdx = -1
	m.interaction = chart.Interaction{}
	m.status = "loading " + m.srcLabel

	r, c, vw := m.renderer, m.container, m.viewportPx()
	m.log.Debug("render requested", zap.String("reason", reason), zap.Int("viewport", vw), zap.String("source", m.srcLabel))
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		l, err := r.Render(ctx, c, vw)
		return renderedMsg{layout: l, err: err}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
		cmd := m.startRender("resize")
		return m, cmd
	case renderedMsg:
		return m.applyRender(msg), nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "t", "esc":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
			default:
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case "r":
			cmd := m.startRender("reload")
			return m, cmd
		case "u":
			if m.local {
				m.setSource(m.remote, m.remoteLabel)
				m.local = false
				cmd := m.startRender("remote")
				return m, cmd
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			if m.hasLayout {
				m.refreshTable()
				m.showTable = true
			} else {
				m.status = "no data to tabulate"
			}
		case "s":
			m.saveSVG()
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
			}
			// the plot moved; recompute hover on the next mouse event
			m.hoverIdx = -1
			m.interaction = chart.Interaction{}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					cmd := m.loadPath(it.path)
					return m, cmd
				}
			}
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) applyRender(msg renderedMsg) Model {
	// superseded renders; the newer one reports for both
	if errors.Is(msg.err, chart.ErrStale) || errors.Is(msg.err, context.Canceled) {
		return m
	}
	m.loading = false
	if msg.err != nil {
		m.hasLayout = false
		m.errMsg = msg.err.Error()
		if errors.Is(msg.err, chart.ErrEmptyDataset) {
			m.status = "dataset is empty"
		} else {
			m.status = "render failed"
		}
		return m
	}
	m.layout = msg.layout
	m.hasLayout = true
	m.status = fmt.Sprintf("%s: %d quarters, %.0fx%.0f px", m.srcLabel, len(m.layout.Bars()), m.layout.OuterWidth, m.layout.OuterHeight)
	if m.showTable {
		m.refreshTable()
	}
	return m
}

// hover turns a pointer position into enter/leave interactions.
func (m *Model) hover(cx, cy int) {
	b, ok := m.hitTest(cx, cy)
	switch {
	case ok && b.Index == m.hoverIdx:
		// still on the same bar; the tooltip stays where it was opened
	case ok:
		m.interaction = chart.Enter(m.layout.Config, b, chart.Pointer{X: float64(cx) * cellPxW, Y: float64(cy) * cellPxH})
		m.hoverIdx = b.Index
	case m.hoverIdx >= 0:
		bars := m.layout.Bars()
		if m.hoverIdx < len(bars) {
			m.interaction = chart.Leave(bars[m.hoverIdx])
		} else {
			m.interaction = chart.Interaction{}
		}
		m.hoverIdx = -1
	}
}

func (m *Model) saveSVG() {
	content := m.container.Content()
	if len(content) == 0 {
		m.status = "nothing to save"
		return
	}
	p := filepath.Join(m.cwd, "gdp-chart.svg")
	if err := os.WriteFile(p, content, 0o644); err != nil {
		m.status = "save error: " + err.Error()
		m.log.Error("save svg", zap.Error(err))
		return
	}
	m.status = "saved " + p
}
