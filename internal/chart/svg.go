package chart

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
)

// svgWriter remembers the first write error so the drawing code can stay
// linear.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// num trims coordinates to two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func attr(s string) string { return html.EscapeString(s) }

// RenderSVG writes the complete chart subtree: axes, caption, bars and
// gridlines. Every bar carries data-date, data-gdp and a pre-formatted
// data-tooltip so a host can show the tooltip without re-formatting.
func RenderSVG(w io.Writer, l Layout) error {
	s := &svgWriter{w: bufio.NewWriter(w)}
	cfg := l.Config

	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" class="gdp-chart" width="%s" height="%s">`+"\n",
		num(l.OuterWidth), num(l.OuterHeight))
	s.printf(`<g transform="translate(%s,%s)">`+"\n", num(cfg.Margin.Left), num(cfg.Margin.Top))

	// x axis
	s.printf(`<g id="x-axis" class="axis" transform="translate(0,%s)" fill="none" font-size="10" text-anchor="middle">`+"\n", num(l.Height))
	s.printf(`<path class="domain" stroke="currentColor" d="M0.5,6V0.5H%sV6"></path>`+"\n", num(l.Width+0.5))
	for _, t := range l.XTicks() {
		s.printf(`<g class="tick" transform="translate(%s,0)"><line stroke="currentColor" y2="6"></line>`, num(t.Pos))
		s.printf(`<text fill="currentColor" y="9" dx="-.8em" dy=".15em" transform="rotate(-45)" style="text-anchor: end">%s</text></g>`+"\n", attr(t.Label))
	}
	s.printf("</g>\n")

	// y axis
	s.printf(`<g id="y-axis" class="axis" fill="none" font-size="10" text-anchor="end">` + "\n")
	s.printf(`<path class="domain" stroke="currentColor" d="M-6,%sH0.5V0.5H-6"></path>`+"\n", num(l.Height+0.5))
	for _, t := range l.YTicks() {
		s.printf(`<g class="tick" transform="translate(0,%s)"><line stroke="currentColor" x2="-6"></line>`, num(t.Pos))
		s.printf(`<text fill="currentColor" x="-9" dy=".32em">%s</text></g>`+"\n", attr(t.Label))
	}
	s.printf("</g>\n")

	s.printf(`<text transform="rotate(-90)" y="%s" x="%s" dy="1em" style="text-anchor: middle; fill: %s">%s</text>`+"\n",
		num(-cfg.Margin.Left), num(-l.Height/2), attr(cfg.CaptionColor), attr(cfg.Caption))

	for _, b := range l.Bars() {
		title, body := TooltipContent(b.Point)
		s.printf(`<rect class="bar" fill="%s" x="%s" y="%s" width="%s" height="%s" data-index="%d" data-date="%s" data-gdp="%s" data-tooltip="%s"></rect>`+"\n",
			attr(cfg.BarColor), num(b.X), num(b.Y), num(b.Width), num(b.Height), b.Index,
			attr(b.Point.Raw), strconv.FormatFloat(b.Point.Value, 'f', -1, 64),
			attr(Tooltip{Title: title, Body: body}.HTML()))
	}

	// gridlines: y ticks spanning the plot, no labels
	s.printf(`<g class="grid" fill="none" style="stroke-dasharray: 3,3; stroke-opacity: 0.1">` + "\n")
	for _, t := range l.YTicks() {
		s.printf(`<g class="tick" transform="translate(0,%s)"><line stroke="currentColor" x2="%s"></line></g>`+"\n", num(t.Pos), num(l.Width))
	}
	s.printf("</g>\n</g>\n</svg>\n")

	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}
