package chart

import (
	"html"

	"gdpchart/internal/dataset"
)

// Pointer is a pointer position in page (or screen) coordinates.
type Pointer struct {
	X, Y float64
}

// Tooltip is the transient overlay state. It has no backing store: hosts
// apply it to whatever element or popup they draw.
type Tooltip struct {
	Visible bool
	Left    float64
	Top     float64
	Date    string // raw source date, mirrors data-date
	Title   string
	Body    string
}

// Text is the plain rendering used by terminal hosts.
func (t Tooltip) Text() string {
	return t.Title + "\n" + t.Body
}

// HTML is the markup placed in the #tooltip element.
func (t Tooltip) HTML() string {
	return "<strong>" + html.EscapeString(t.Title) + "</strong><br>" + html.EscapeString(t.Body)
}

// Interaction is the full state change for one pointer event: the tooltip
// and the opacity of the bar that received the event.
type Interaction struct {
	Tooltip  Tooltip
	BarIndex int
	Opacity  float64
}

// TooltipContent returns the title and body lines for a point.
func TooltipContent(p dataset.DataPoint) (title, body string) {
	return FormatDate(p.Date), "GDP: $" + FormatValue(p.Value) + " Billion"
}

// Enter is applied when the pointer moves onto a bar.
func Enter(cfg Config, b Bar, p Pointer) Interaction {
	title, body := TooltipContent(b.Point)
	return Interaction{
		Tooltip: Tooltip{
			Visible: true,
			Left:    p.X + cfg.TooltipOffsetX,
			Top:     p.Y + cfg.TooltipOffsetY,
			Date:    b.Point.Raw,
			Title:   title,
			Body:    body,
		},
		BarIndex: b.Index,
		Opacity:  cfg.HoverOpacity,
	}
}

// Leave is applied when the pointer leaves a bar.
func Leave(b Bar) Interaction {
	return Interaction{BarIndex: b.Index, Opacity: 1}
}
