package dataset

import "time"

// DataPoint is one observation of the series: a quarter start date and the
// GDP value in billions of dollars.
type DataPoint struct {
	Date  time.Time
	Raw   string // date exactly as it appeared in the source
	Value float64
}

// Dataset is an ordered, chronological series. It is not modified after
// loading; every render works on its own copy.
type Dataset struct {
	Name        string
	Description string
	Source      string
	FromDate    string
	ToDate      string
	Points      []DataPoint
}

// Extent is the [min, max] pair of the time dimension.
type Extent struct {
	Min time.Time
	Max time.Time
}

// Len returns the number of points.
func (d Dataset) Len() int { return len(d.Points) }

// TimeExtent scans all points; ok is false for an empty dataset.
func (d Dataset) TimeExtent() (ext Extent, ok bool) {
	for i, p := range d.Points {
		if i == 0 {
			ext = Extent{Min: p.Date, Max: p.Date}
			continue
		}
		if p.Date.Before(ext.Min) {
			ext.Min = p.Date
		}
		if p.Date.After(ext.Max) {
			ext.Max = p.Date
		}
	}
	return ext, len(d.Points) > 0
}

// MaxValue returns the largest value, or 0 for an empty dataset.
func (d Dataset) MaxValue() float64 {
	m := 0.0
	for i, p := range d.Points {
		if i == 0 || p.Value > m {
			m = p.Value
		}
	}
	return m
}
