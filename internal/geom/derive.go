package geom

import "math"

// RectFromCorners returns the top-left corner and size of the axis-aligned
// rectangle spanned by two opposite corners. The result does not depend on
// which corner was placed first. When the corners share an x or y
// coordinate the rectangle is degenerate and to is reported as top-left.
func RectFromCorners(from, to Point) (topLeft Point, width, height float64) {
	width = math.Abs(to.X - from.X)
	height = math.Abs(to.Y - from.Y)
	switch {
	case from.X < to.X && from.Y > to.Y:
		topLeft = Point{X: from.X, Y: from.Y - height}
	case from.X > to.X && from.Y > to.Y:
		topLeft = Point{X: from.X - width, Y: to.Y}
	case from.X > to.X && from.Y < to.Y:
		topLeft = Point{X: to.X, Y: from.Y}
	case from.X < to.X && from.Y < to.Y:
		topLeft = from
	default:
		topLeft = to
	}
	return topLeft, width, height
}

// RegularPolygon returns the vertices of a regular n-gon centered on center
// whose circumradius is the distance from center to to. The first vertex is
// rotated pi/n from straight up, so the polygon sits on a flat edge.
func RegularPolygon(center, to Point, n int) []Point {
	if n < 3 {
		panic("geom: polygon needs at least 3 sides")
	}
	r := center.Dist(to)
	step := 2 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i := range pts {
		theta := float64(i)*step - (-math.Pi / float64(n))
		pts[i] = Point{
			X: center.X + r*math.Sin(theta),
			Y: center.Y + r*math.Cos(theta),
		}
	}
	return pts
}

// QuadPoint evaluates the quadratic bezier from..to with control c at t.
func QuadPoint(from, c, to Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*from.X + 2*u*t*c.X + t*t*to.X,
		Y: u*u*from.Y + 2*u*t*c.Y + t*t*to.Y,
	}
}

// Outline flattens s into a polyline. closed reports whether the last point
// joins back to the first. segments controls curve and circle resolution.
func Outline(s Shape, segments int) (pts []Point, closed bool) {
	if segments < 4 {
		segments = 4
	}
	switch s.Kind {
	case Line:
		return []Point{s.From, s.To}, false
	case Bezier:
		pts = make([]Point, 0, segments+1)
		for i := 0; i <= segments; i++ {
			pts = append(pts, QuadPoint(s.From, s.Control, s.To, float64(i)/float64(segments)))
		}
		return pts, false
	case Circle:
		pts = make([]Point, segments)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(segments)
			pts[i] = Point{X: s.From.X + s.Radius*math.Cos(a), Y: s.From.Y + s.Radius*math.Sin(a)}
		}
		return pts, true
	case Triangle, RightTriangle:
		return []Point{s.From, s.To, s.Control}, true
	case Rectangle:
		tl := s.TopLeft
		return []Point{
			tl,
			{X: tl.X + s.Width, Y: tl.Y},
			{X: tl.X + s.Width, Y: tl.Y + s.Height},
			{X: tl.X, Y: tl.Y + s.Height},
		}, true
	case Polygon:
		return append([]Point(nil), s.Points...), s.Closed
	default:
		return nil, false
	}
}
