package chart

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Snapshot writes a PNG of the layout's dataset with the same outer size,
// ticks and labels as the SVG chart. The series is drawn as a filled area
// under the line rather than as discrete bars; at hundreds of quarterly
// points the two read the same.
func Snapshot(w io.Writer, l Layout) error {
	pts := l.Dataset.Points
	if len(pts) < 2 {
		return errors.New("snapshot: need at least two points")
	}
	cfg := l.Config
	barCol := drawing.ColorFromHex(strings.TrimPrefix(cfg.BarColor, "#"))

	series := gochart.TimeSeries{
		Name:    l.Dataset.Name,
		XValues: make([]time.Time, len(pts)),
		YValues: make([]float64, len(pts)),
		Style: gochart.Style{
			StrokeColor: barCol,
			StrokeWidth: 1,
			FillColor:   barCol.WithAlpha(160),
		},
	}
	for i, p := range pts {
		series.XValues[i] = p.Date
		series.YValues[i] = p.Value
	}

	var xTicks []gochart.Tick
	for _, t := range l.X.Ticks(cfg.XTickYears) {
		xTicks = append(xTicks, gochart.Tick{Value: gochart.TimeToFloat64(t), Label: FormatYear(t)})
	}
	var yTicks []gochart.Tick
	for _, v := range l.Y.Ticks(cfg.YTicks) {
		yTicks = append(yTicks, gochart.Tick{Value: v, Label: FormatTick(v)})
	}

	ch := gochart.Chart{
		Width:  int(l.OuterWidth),
		Height: int(l.OuterHeight),
		Background: gochart.Style{Padding: gochart.Box{
			Top:    int(cfg.Margin.Top),
			Left:   int(cfg.Margin.Left),
			Right:  int(cfg.Margin.Right),
			Bottom: int(cfg.Margin.Bottom),
		}},
		XAxis: gochart.XAxis{Ticks: xTicks},
		YAxis: gochart.YAxis{
			Name:  cfg.Caption,
			Range: &gochart.ContinuousRange{Min: l.Y.D0, Max: l.Y.D1},
			Ticks: yTicks,
		},
		Series: []gochart.Series{series},
	}
	if err := ch.Render(gochart.PNG, w); err != nil {
		return errors.Wrap(err, "render png")
	}
	return nil
}
