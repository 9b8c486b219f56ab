package render

import (
	"math"
	"sort"

	"vecsketch/internal/geom"
)

// Bounds is the canvas size in canvas units (braille dots).
type Bounds struct {
	W int
	H int
}

// BoundsForCells returns the bounds of a w by h cell area.
func BoundsForCells(w, h int) Bounds { return Bounds{W: w * 2, H: h * 4} }

// Cells returns the layer size in terminal cells needed to cover b.
func (b Bounds) Cells() (int, int) { return (b.W + 1) / 2, (b.H + 3) / 4 }

// Rasterizer turns path commands into a layer.
type Rasterizer interface {
	Rasterize(b Bounds, paths []Path) *Layer
}

// BrailleRasterizer draws paths onto braille dots: Bresenham strokes and
// even-odd scanline fills.
type BrailleRasterizer struct{}

func (BrailleRasterizer) Rasterize(b Bounds, paths []Path) *Layer {
	l := NewLayer(b.Cells())
	for _, p := range paths {
		subs := flatten(p.Commands)
		if p.Fill {
			fillEvenOdd(l, subs, b.H, p.Color)
		}
		r := strokeRadius(p.Width)
		for _, sp := range subs {
			strokeSubpath(l, b, sp, r, p.Color)
		}
	}
	return l
}

type subpath struct {
	pts    []geom.Point
	closed bool
}

const (
	quadSegments      = 16
	minCircleSegments = 12
	maxCircleSegments = 1024
)

// circleSegments picks the flattening resolution of a circle of radius r:
// about one segment per dot of circumference, within fixed limits.
func circleSegments(r float64) int {
	n := math.Ceil(math.Pi * r)
	if !(n >= minCircleSegments) {
		return minCircleSegments
	}
	if n > maxCircleSegments {
		return maxCircleSegments
	}
	return int(n)
}

// flatten converts commands into polylines.
func flatten(cmds []Command) []subpath {
	var out []subpath
	var cur subpath
	flush := func() {
		if len(cur.pts) > 0 {
			out = append(out, cur)
		}
		cur = subpath{}
	}
	for _, c := range cmds {
		switch c.Op {
		case OpMoveTo:
			flush()
			cur.pts = []geom.Point{c.P}
		case OpLineTo:
			cur.pts = append(cur.pts, c.P)
		case OpQuadTo:
			if len(cur.pts) == 0 {
				cur.pts = []geom.Point{c.P}
				continue
			}
			from := cur.pts[len(cur.pts)-1]
			for i := 1; i <= quadSegments; i++ {
				cur.pts = append(cur.pts, geom.QuadPoint(from, c.C, c.P, float64(i)/quadSegments))
			}
		case OpClose:
			cur.closed = true
			flush()
		case OpCircle:
			flush()
			sh := geom.Shape{Kind: geom.Circle, From: c.P, Radius: c.R}
			pts, _ := geom.Outline(sh, circleSegments(c.R))
			out = append(out, subpath{pts: pts, closed: true})
		case OpRect:
			flush()
			out = append(out, subpath{pts: []geom.Point{
				c.P,
				{X: c.P.X + c.W, Y: c.P.Y},
				{X: c.P.X + c.W, Y: c.P.Y + c.H},
				{X: c.P.X, Y: c.P.Y + c.H},
			}, closed: true})
		}
	}
	flush()
	return out
}

func strokeRadius(width float64) int {
	if width <= 1 {
		return 0
	}
	return int(math.Round((width - 1) / 2))
}

func round(v float64) int { return int(math.Round(v)) }

// strokeSubpath draws sp clipped to b, widened by the stroke radius so
// thick strokes along the edge keep their outer dots.
func strokeSubpath(l *Layer, b Bounds, sp subpath, r int, color string) {
	pts := sp.pts
	if len(pts) == 1 {
		if pts[0].Finite() {
			l.stamp(round(pts[0].X), round(pts[0].Y), r, color)
		}
		return
	}
	pad := float64(r)
	minX, minY := -pad, -pad
	maxX, maxY := float64(b.W-1)+pad, float64(b.H-1)+pad
	segment := func(a, c geom.Point) {
		a, c, ok := clipSegment(a, c, minX, minY, maxX, maxY)
		if !ok {
			return
		}
		l.drawLineMicro(round(a.X), round(a.Y), round(c.X), round(c.Y), r, color)
	}
	for i := 0; i+1 < len(pts); i++ {
		segment(pts[i], pts[i+1])
	}
	if sp.closed && len(pts) > 2 {
		segment(pts[len(pts)-1], pts[0])
	}
}

// clipSegment clips a-b to the box [minX,maxX]x[minY,maxY] (Liang-Barsky).
// ok is false when nothing of the segment is inside, or when an endpoint
// is not finite.
func clipSegment(a, b geom.Point, minX, minY, maxX, maxY float64) (geom.Point, geom.Point, bool) {
	if !a.Finite() || !b.Finite() {
		return a, b, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return geom.Point{X: a.X + t0*dx, Y: a.Y + t0*dy},
		geom.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}

// fillEvenOdd fills every subpath as a closed ring using the even-odd rule
// per scanline on the microgrid.
func fillEvenOdd(l *Layer, subs []subpath, hMic int, color string) {
	wMic := l.Width() * 2
	for yMic := 0; yMic < hMic; yMic++ {
		y := float64(yMic)
		var xs []float64
		for _, sp := range subs {
			ring := sp.pts
			if len(ring) < 3 {
				continue
			}
			for i := range ring {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				if a.Y == b.Y { // horizontal edge: skip
					continue
				}
				if (y >= a.Y && y < b.Y) || (y >= b.Y && y < a.Y) {
					t := (y - a.Y) / (b.Y - a.Y)
					if x := a.X + t*(b.X-a.X); !math.IsNaN(x) {
						xs = append(xs, x)
					}
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			lo, hi := clampSpan(xs[i], wMic), clampSpan(xs[i+1], wMic)
			for xMic := max(0, lo); xMic <= hi && xMic < wMic; xMic++ {
				l.setPixel(xMic, yMic, color)
			}
		}
	}
}

// clampSpan rounds a span end to a dot column in [-1, wMic].
func clampSpan(x float64, wMic int) int {
	switch {
	case x < -1:
		return -1
	case x > float64(wMic):
		return wMic
	}
	return round(x)
}
