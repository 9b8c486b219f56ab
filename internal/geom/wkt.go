package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnsupportedWKT = errors.New("unsupported wkt type")
	ErrNonFinite      = errors.New("coordinate is not finite")
)

const wktSegments = 32

// ParseWKT parses one WKT geometry per line into shapes.
// Supported: LINESTRING(x y, ...), POLYGON((x y, ...)). POINT and MULTIPOINT
// carry no shape and are skipped. Holes of a polygon are ignored.
func ParseWKT(wkt string) ([]Shape, error) {
	var out []Shape
	for n, line := range strings.Split(wkt, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		sh, ok, err := parseWKTGeometry(s)
		if err != nil {
			return nil, fmt.Errorf("wkt line %d: %w", n+1, err)
		}
		if ok {
			out = append(out, sh)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("wkt: no shapes parsed")
	}
	return out, nil
}

// parseTuples reads "x y, x y, ..." coordinate lists. Malformed tuples are
// skipped; a NaN or infinite coordinate is an error.
func parseTuples(block string) ([]Point, error) {
	var out []Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		p := Point{X: x, Y: y}
		if !p.Finite() {
			return nil, fmt.Errorf("%q: %w", strings.TrimSpace(tup), ErrNonFinite)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseWKTGeometry(s string) (Shape, bool, error) {
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
		return Shape{}, false, nil
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Shape{}, false, errors.New("linestring: invalid")
		}
		pts, err := parseTuples(s[i+1 : j])
		if err != nil {
			return Shape{}, false, fmt.Errorf("linestring: %w", err)
		}
		sh, err := shapeFromLine(pts)
		return sh, err == nil, err
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return Shape{}, false, errors.New("polygon: invalid")
		}
		// normalize spaces around ring separators, keep the outer ring
		rings := strings.ReplaceAll(s[i+2:j], "), (", "),(")
		rings = strings.ReplaceAll(rings, ") , (", "),(")
		pts, err := parseTuples(strings.Split(rings, "),(")[0])
		if err != nil {
			return Shape{}, false, fmt.Errorf("polygon: %w", err)
		}
		sh, err := shapeFromRing(pts)
		return sh, err == nil, err
	}
	return Shape{}, false, ErrUnsupportedWKT
}

// shapeFromLine maps an open point list: two points make a Line, more make
// an open Polygon.
func shapeFromLine(pts []Point) (Shape, error) {
	switch {
	case len(pts) < 2:
		return Shape{}, errors.New("linestring: need at least 2 points")
	case len(pts) == 2:
		return Shape{Kind: Line, From: pts[0], To: pts[1], Visible: true}, nil
	}
	return polygonFromRing(pts, false), nil
}

// shapeFromRing maps a ring to a closed Polygon. A repeated closing point
// is dropped.
func shapeFromRing(pts []Point) (Shape, error) {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return Shape{}, errors.New("polygon: need at least 3 points")
	}
	return polygonFromRing(pts, true), nil
}

func polygonFromRing(pts []Point, closed bool) Shape {
	var c Point
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Scale(1 / float64(len(pts)))
	return Shape{
		Kind:    Polygon,
		From:    c,
		To:      pts[0],
		Radius:  c.Dist(pts[0]),
		Sides:   len(pts),
		Points:  pts,
		Closed:  closed,
		Visible: true,
	}
}

// FormatWKT renders s as a single WKT geometry. Curves are flattened.
func FormatWKT(s Shape) string {
	pts, closed := Outline(s, wktSegments)
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	coord := func(p Point) {
		b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	if closed {
		b.WriteString("POLYGON ((")
	} else {
		b.WriteString("LINESTRING (")
	}
	for i, p := range pts {
		if i > 0 {
			b.WriteString(", ")
		}
		coord(p)
	}
	if closed {
		b.WriteString(", ")
		coord(pts[0])
		b.WriteString("))")
	} else {
		b.WriteString(")")
	}
	return b.String()
}

// MarshalWKT renders shapes one geometry per line, in order.
func MarshalWKT(shapes []Shape) string {
	lines := make([]string, 0, len(shapes))
	for _, s := range shapes {
		if w := FormatWKT(s); w != "" {
			lines = append(lines, w)
		}
	}
	return strings.Join(lines, "\n")
}
