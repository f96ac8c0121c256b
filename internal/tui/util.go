package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func padLeft(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}

// runBuilder joins cells into a line, emitting one styled span per run of
// equal style instead of one escape sequence per cell.
type runBuilder struct {
	sb    strings.Builder
	run   []rune
	style *lipgloss.Style
}

func (r *runBuilder) add(ch rune, st *lipgloss.Style) {
	if st != r.style {
		r.flush()
		r.style = st
	}
	r.run = append(r.run, ch)
}

func (r *runBuilder) flush() {
	if len(r.run) == 0 {
		return
	}
	if r.style == nil {
		r.sb.WriteString(string(r.run))
	} else {
		r.sb.WriteString(r.style.Render(string(r.run)))
	}
	r.run = r.run[:0]
}

func (r *runBuilder) String() string {
	r.flush()
	return r.sb.String()
}

// overlay draws fg on top of bg with its top-left corner at (x, y) cells.
// Both may contain ANSI sequences; fg lines that fall outside bg are cut.
func overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	x = max(0, x)
	for i, fl := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		base := bgLines[row]
		if w := ansi.StringWidth(base); w < x {
			base += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(fl), "")
		bgLines[row] = left + fl + right
	}
	return strings.Join(bgLines, "\n")
}
