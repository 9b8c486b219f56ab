package render

// Layer is a braille raster: each terminal cell holds a 2x4 grid of dots
// stored as an 8-bit mask, plus the color of the last dot written to it.
type Layer struct {
	w, h  int // in cells
	m     [][]uint8
	color [][]string
}

// NewLayer allocates a layer of w by h cells.
func NewLayer(w, h int) *Layer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m := make([][]uint8, h)
	c := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]string, w)
	}
	return &Layer{w: w, h: h, m: m, color: c}
}

func (l *Layer) Width() int  { return l.w }
func (l *Layer) Height() int { return l.h }

// Mask returns the dot mask of cell (cx, cy); zero outside the layer.
func (l *Layer) Mask(cx, cy int) uint8 {
	if cy < 0 || cy >= l.h || cx < 0 || cx >= l.w {
		return 0
	}
	return l.m[cy][cx]
}

// Color returns the color of cell (cx, cy).
func (l *Layer) Color(cx, cy int) string {
	if cy < 0 || cy >= l.h || cx < 0 || cx >= l.w {
		return ""
	}
	return l.color[cy][cx]
}

// Rune returns the braille glyph of cell (cx, cy), or a space when empty.
func (l *Layer) Rune(cx, cy int) rune {
	mask := l.Mask(cx, cy)
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (l *Layer) setPixel(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= l.h || cx >= l.w {
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
	l.m[cy][cx] |= bit
	l.color[cy][cx] = color
}

// stamp sets a square of dots of side 2r+1 centered on (mx, my).
func (l *Layer) stamp(mx, my, r int, color string) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			l.setPixel(mx+dx, my+dy, color)
		}
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (l *Layer) drawLineMicro(x0, y0, x1, y1, r int, color string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		l.stamp(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines returns the layer as plain text rows.
func (l *Layer) Lines() []string {
	out := make([]string, l.h)
	for y := 0; y < l.h; y++ {
		row := make([]rune, l.w)
		for x := 0; x < l.w; x++ {
			row[x] = l.Rune(x, y)
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
