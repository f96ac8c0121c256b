package chart

import (
	"math"
	"time"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// LinearScale maps [D0, D1] onto [R0, R1] by linear interpolation.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

// Map returns the range value for v. A zero-width domain maps to the
// middle of the range.
func (s LinearScale) Map(v float64) float64 {
	d := s.D1 - s.D0
	t := 0.5
	if d != 0 {
		t = (v - s.D0) / d
	}
	return s.R0 + t*(s.R1-s.R0)
}

// Invert is the inverse of Map.
func (s LinearScale) Invert(r float64) float64 {
	d := s.R1 - s.R0
	t := 0.5
	if d != 0 {
		t = (r - s.R0) / d
	}
	return s.D0 + t*(s.D1-s.D0)
}

// Ticks returns roughly count round values (1, 2 or 5 times a power of ten)
// inside the domain.
func (s LinearScale) Ticks(count int) []float64 {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	return niceTicks(lo, hi, count)
}

func niceTicks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	raw := (stop - start) / float64(count)
	power := math.Floor(math.Log10(raw))
	rel := raw / math.Pow(10, power)
	factor := 1.0
	switch {
	case rel >= e10:
		factor = 10
	case rel >= e5:
		factor = 5
	case rel >= e2:
		factor = 2
	}
	var out []float64
	if power < 0 {
		// divide by the inverse step so decimal ticks come out exact
		inv := math.Pow(10, -power) / factor
		for i := math.Ceil(start * inv); i <= math.Floor(stop*inv); i++ {
			out = append(out, i/inv)
		}
		return out
	}
	step := factor * math.Pow(10, power)
	for i := math.Ceil(start / step); i <= math.Floor(stop/step); i++ {
		out = append(out, i*step)
	}
	return out
}

// TimeScale maps [D0, D1] onto [R0, R1] linearly in time.
type TimeScale struct {
	D0, D1 time.Time
	R0, R1 float64
}

// Map interpolates in float seconds; time.Duration saturates past about
// 292 years.
func (s TimeScale) Map(t time.Time) float64 {
	d0 := unixSeconds(s.D0)
	d := unixSeconds(s.D1) - d0
	f := 0.5
	if d != 0 {
		f = (unixSeconds(t) - d0) / d
	}
	return s.R0 + f*(s.R1-s.R0)
}

func (s TimeScale) Invert(r float64) time.Time {
	d := s.R1 - s.R0
	f := 0.5
	if d != 0 {
		f = (r - s.R0) / d
	}
	d0 := unixSeconds(s.D0)
	secs := d0 + f*(unixSeconds(s.D1)-d0)
	whole := math.Floor(secs)
	return time.Unix(int64(whole), int64(math.Round((secs-whole)*1e9))).In(s.D0.Location())
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Ticks returns January 1st of every year divisible by every that falls
// inside the domain.
func (s TimeScale) Ticks(every int) []time.Time {
	if every <= 0 {
		return nil
	}
	lo, hi := s.D0, s.D1
	if lo.After(hi) {
		lo, hi = hi, lo
	}
	y := lo.Year()
	if r := y % every; r != 0 {
		y += every - r
	}
	var out []time.Time
	for ; y <= hi.Year(); y += every {
		t := time.Date(y, time.January, 1, 0, 0, 0, 0, lo.Location())
		if t.Before(lo) || t.After(hi) {
			continue
		}
		out = append(out, t)
	}
	return out
}
