package tui

import (
	"context"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"gdpchart/internal/chart"
	"gdpchart/internal/dataset"
)

// A terminal cell stands in for this many chart pixels, so the chart's
// pixel geometry (margins, width cap) carries over unchanged.
const (
	cellPxW = 8.0
	cellPxH = 16.0
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	errMsg string

	log *zap.Logger

	// Rendering
	remote      dataset.Source
	remoteLabel string
	local       bool // a file from the picker replaced the remote source
	srcLabel    string
	renderer    *chart.Renderer
	container   *chart.Container
	cancel      context.CancelFunc
	loading     bool
	spin        spinner.Model

	layout    chart.Layout
	hasLayout bool

	// File explorer
	cwd   string
	l     list.Model
	items []list.Item

	// data table
	showTable bool
	tbl       table.Model

	// hover state
	hoverIdx    int
	interaction chart.Interaction
}

// New builds a model that renders src once the terminal size is known.
func New(src dataset.Source, label string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		helpVisible: true,
		status:      "gdpchart ready",
		log:         log,
		remote:      src,
		remoteLabel: label,
		loading:     true,
		container:   chart.NewContainer("chart"),
		hoverIdx:    -1,
	}
	m.setSource(src, label)
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle))
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

func (m *Model) setSource(src dataset.Source, label string) {
	m.srcLabel = label
	m.renderer = chart.NewRenderer(src, m.log)
}

// Init waits for the first WindowSizeMsg: the viewport width is an input
// to the layout, so nothing can be drawn before it arrives.
func (m Model) Init() tea.Cmd { return m.spin.Tick }

// viewportPx is the terminal width expressed in chart pixels.
func (m Model) viewportPx() int {
	return int(float64(m.width) * cellPxW)
}
