package tui

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// fillRect sets every micro-pixel in [x0,x1]x[y0,y1], inclusive.
func (b *brailleBuf) fillRect(x0, y0, x1, y1 int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := max(0, y0); y <= y1; y++ {
		for x := max(0, x0); x <= x1; x++ {
			b.setPixel(x, y)
		}
	}
}

// dashedHLine draws a horizontal line with on/off runs of dash micro-pixels.
func (b *brailleBuf) dashedHLine(y, x0, x1, dash int) {
	if dash <= 0 {
		dash = 1
	}
	for x := x0; x <= x1; x++ {
		if ((x-x0)/dash)%2 == 0 {
			b.setPixel(x, y)
		}
	}
}

func (b *brailleBuf) cell(cx, cy int) rune {
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w || b.m[cy][cx] == 0 {
		return ' '
	}
	return rune(0x2800 + int(b.m[cy][cx]))
}
