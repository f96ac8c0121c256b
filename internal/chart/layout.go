package chart

import (
	"sort"

	"github.com/pkg/errors"

	"gdpchart/internal/dataset"
)

// ErrEmptyDataset is returned when there is nothing to divide the plot
// width by.
var ErrEmptyDataset = errors.New("chart: empty dataset")

// Bar is the geometry of one data point, in plot coordinates.
type Bar struct {
	Index  int
	Point  dataset.DataPoint
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether plot x falls inside the bar horizontally.
func (b Bar) Contains(x float64) bool { return x >= b.X && x < b.X+b.Width }

// Layout is everything needed to draw one chart: sizes, scales and bars.
// It is computed once per render and never mutated.
type Layout struct {
	Config      Config
	Viewport    int
	Width       float64 // plot width
	Height      float64 // plot height
	OuterWidth  float64
	OuterHeight float64
	X           TimeScale
	Y           LinearScale
	Dataset     dataset.Dataset

	bars []Bar
}

// ComputeLayout derives dimensions, scales and bar geometry from the
// viewport width and the dataset. It has no side effects.
func ComputeLayout(cfg Config, viewportWidth int, ds dataset.Dataset) (Layout, error) {
	ext, ok := ds.TimeExtent()
	if !ok {
		return Layout{}, ErrEmptyDataset
	}
	w, h := cfg.Dimensions(viewportWidth)
	top := ds.MaxValue()
	if top <= 0 {
		// keep value(0) on the baseline when there is nothing above it
		top = 1
	}
	l := Layout{
		Config:      cfg,
		Viewport:    viewportWidth,
		Width:       w,
		Height:      h,
		OuterWidth:  w + cfg.Margin.Left + cfg.Margin.Right,
		OuterHeight: h + cfg.Margin.Top + cfg.Margin.Bottom,
		X:           TimeScale{D0: ext.Min, D1: ext.Max, R0: 0, R1: w},
		Y:           LinearScale{D0: 0, D1: top, R0: h, R1: 0},
		Dataset:     ds,
	}
	bw := w / float64(ds.Len())
	l.bars = make([]Bar, ds.Len())
	for i, p := range ds.Points {
		y := l.Y.Map(p.Value)
		l.bars[i] = Bar{
			Index:  i,
			Point:  p,
			X:      l.X.Map(p.Date),
			Y:      y,
			Width:  bw,
			Height: h - y,
		}
	}
	return l, nil
}

// Bars returns the bars in dataset order. Callers must not modify the slice.
func (l Layout) Bars() []Bar { return l.bars }

// BarAt finds the bar under plot x. Bars are assumed to be in chronological
// order, as the source delivers them.
func (l Layout) BarAt(x float64) (Bar, bool) {
	i := sort.Search(len(l.bars), func(i int) bool { return l.bars[i].X > x }) - 1
	if i < 0 {
		return Bar{}, false
	}
	if b := l.bars[i]; b.Contains(x) {
		return b, true
	}
	return Bar{}, false
}

// XTicks returns the x-axis tick dates.
func (l Layout) XTicks() []Tick {
	var out []Tick
	for _, t := range l.X.Ticks(l.Config.XTickYears) {
		out = append(out, Tick{Pos: l.X.Map(t), Label: FormatYear(t)})
	}
	return out
}

// YTicks returns the y-axis ticks, also used for the gridlines.
func (l Layout) YTicks() []Tick {
	var out []Tick
	for _, v := range l.Y.Ticks(l.Config.YTicks) {
		out = append(out, Tick{Pos: l.Y.Map(v), Label: FormatTick(v), Value: v})
	}
	return out
}

// Tick is a labeled axis position in plot coordinates.
type Tick struct {
	Pos   float64
	Value float64
	Label string
}
