package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdpchart/internal/chart"
	"gdpchart/internal/dataset"
)

func sample() dataset.Dataset {
	day := func(y int, mo time.Month) time.Time { return time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC) }
	return dataset.Dataset{
		Name: "Gross Domestic Product",
		Points: []dataset.DataPoint{
			{Date: day(1947, 1), Raw: "1947-01-01", Value: 243.1},
			{Date: day(1960, 1), Raw: "1960-01-01", Value: 542.6},
			{Date: day(1985, 7), Raw: "1985-07-01", Value: 4386.8},
			{Date: day(2015, 7), Raw: "2015-07-01", Value: 18064.7},
		},
	}
}

// collect runs cmd and every command nested in batches, returning the
// produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// settle feeds every renderedMsg produced by cmd back into the model.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range collect(cmd) {
		if rm, ok := msg.(renderedMsg); ok {
			next, _ := m.Update(rm)
			m = next.(Model)
		}
	}
	return m
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, cmd := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return settle(t, next.(Model), cmd)
}

func TestResizeRendersChart(t *testing.T) {
	m := New(dataset.Static(sample()), "sample", nil)
	assert.Equal(t, "", m.View())

	m = resize(t, m, 120, 40)
	require.True(t, m.hasLayout)
	assert.False(t, m.loading)
	assert.Len(t, m.layout.Bars(), 4)
	assert.Equal(t, 960, m.layout.Viewport)
	assert.Equal(t, 740.0, m.layout.Width)

	view := m.View()
	assert.Contains(t, view, "Gross Domestic Product (Billions)")
	assert.Contains(t, view, "$18,000B")
	assert.Contains(t, view, "1950")
	assert.Contains(t, m.status, "4 quarters")
}

func TestResizeTwiceKeepsOneChart(t *testing.T) {
	m := New(dataset.Static(sample()), "sample", nil)
	m = resize(t, m, 120, 40)
	m = resize(t, m, 90, 30)

	content := string(m.container.Content())
	assert.Equal(t, 1, strings.Count(content, "<svg"))
	assert.Equal(t, 4, strings.Count(content, `class="bar"`))
	assert.Equal(t, 720, m.layout.Viewport)
	assert.Equal(t, 500.0, m.layout.Width)
}

func TestHoverEnterAndLeave(t *testing.T) {
	m := New(dataset.Static(sample()), "sample", nil)
	m = resize(t, m, 120, 40)
	g := m.geometry()

	row := g.y + g.rows - 1
	hitX := -1
	var want chart.Bar
	for cx := g.x; cx < g.x+g.cols; cx++ {
		if b, ok := m.hitTest(cx, row); ok {
			hitX, want = cx, b
			break
		}
	}
	require.GreaterOrEqual(t, hitX, 0, "no bar on the baseline row")

	next, _ := m.Update(tea.MouseMsg{X: hitX, Y: row, Action: tea.MouseActionMotion})
	m = next.(Model)
	assert.Equal(t, want.Index, m.hoverIdx)
	assert.True(t, m.interaction.Tooltip.Visible)
	assert.Equal(t, 0.8, m.interaction.Opacity)
	assert.Equal(t, float64(hitX)*cellPxW+15, m.interaction.Tooltip.Left)
	assert.Contains(t, m.View(), "Billion")

	next, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	m = next.(Model)
	assert.Equal(t, -1, m.hoverIdx)
	assert.False(t, m.interaction.Tooltip.Visible)
	assert.Equal(t, 1.0, m.interaction.Opacity)
}

func TestEmptyDatasetStatus(t *testing.T) {
	m := New(dataset.Static(dataset.Dataset{}), "empty", nil)
	m = resize(t, m, 120, 40)
	assert.False(t, m.hasLayout)
	assert.Equal(t, "dataset is empty", m.status)
	assert.Contains(t, m.View(), "empty dataset")
}

func TestStaleRenderIgnored(t *testing.T) {
	m := New(dataset.Static(sample()), "sample", nil)
	m.loading = true
	next, _ := m.Update(renderedMsg{err: chart.ErrStale})
	m = next.(Model)
	assert.True(t, m.loading)
	assert.Empty(t, m.errMsg)
}

func TestSaveSVGAndTable(t *testing.T) {
	m := New(dataset.Static(sample()), "sample", nil)
	m.cwd = t.TempDir()
	m = resize(t, m, 120, 40)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	b, err := os.ReadFile(filepath.Join(m.cwd, "gdp-chart.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `data-date="2015-07-01"`)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = next.(Model)
	require.True(t, m.showTable)
	require.Len(t, m.tbl.Rows(), 4)
	assert.Equal(t, "$18,064.7", m.tbl.Rows()[3][2])
}

func TestOpenLocalDataset(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "quarters.csv")
	require.NoError(t, os.WriteFile(csv, []byte("date,gdp\n2000-01-01,10\n2000-04-01,12\n"), 0o644))

	m := New(dataset.Static(sample()), "sample", nil)
	m.cwd = dir
	m.refreshDir()
	require.Len(t, m.items, 1)
	m = resize(t, m, 120, 40)

	cmd := m.loadPath(csv)
	m = settle(t, m, cmd)
	require.True(t, m.hasLayout)
	assert.Len(t, m.layout.Bars(), 2)
	assert.True(t, m.local)
	assert.Contains(t, m.status, "quarters.csv")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	m = settle(t, next.(Model), cmd)
	assert.False(t, m.local)
	assert.Len(t, m.layout.Bars(), 4)
}
