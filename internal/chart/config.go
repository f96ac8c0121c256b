package chart

// Margin is the space reserved around the plot area, in pixels.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Config holds the fixed geometry and formatting rules of the chart.
type Config struct {
	Margin          Margin
	MaxWidth        float64 // outer width cap
	ViewportPadding float64 // subtracted from the viewport width before capping
	Height          float64 // outer height
	XTickYears      int
	YTicks          int
	Caption         string
	TooltipOffsetX  float64
	TooltipOffsetY  float64
	HoverOpacity    float64
	BarColor        string
	CaptionColor    string
}

// DefaultConfig returns the GDP chart constants.
func DefaultConfig() Config {
	return Config{
		Margin:          Margin{Top: 40, Right: 40, Bottom: 60, Left: 80},
		MaxWidth:        1000,
		ViewportPadding: 100,
		Height:          500,
		XTickYears:      5,
		YTicks:          10,
		Caption:         "Gross Domestic Product (Billions)",
		TooltipOffsetX:  15,
		TooltipOffsetY:  -15,
		HoverOpacity:    0.8,
		BarColor:        "#4682b4",
		CaptionColor:    "#64748b",
	}
}

// Dimensions returns the plot width and height for a viewport width.
// Both are clamped at zero.
func (c Config) Dimensions(viewportWidth int) (width, height float64) {
	outer := min(c.MaxWidth, float64(viewportWidth)-c.ViewportPadding)
	width = outer - c.Margin.Left - c.Margin.Right
	height = c.Height - c.Margin.Top - c.Margin.Bottom
	return max(0, width), max(0, height)
}
