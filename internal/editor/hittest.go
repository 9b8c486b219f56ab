package editor

import (
	"fmt"

	"vecsketch/internal/geom"
)

// DefaultHitThreshold is the pick radius around an anchor, in canvas units.
const DefaultHitThreshold = 5.0

// Hit locates an anchor: Point indexes Shape.Anchors of shapes[Shape].
type Hit struct {
	Shape int
	Point int
}

// HitTest scans shapes in store order and returns the first anchor strictly
// closer than threshold to cursor. Hidden shapes are skipped.
func HitTest(shapes []geom.Shape, cursor geom.Point, threshold float64) (Hit, bool) {
	for i, s := range shapes {
		if !s.Visible {
			continue
		}
		for j, a := range s.Anchors() {
			if cursor.Dist(a) < threshold {
				return Hit{Shape: i, Point: j}, true
			}
		}
	}
	return Hit{}, false
}

// BeginEdit builds the pending curve that drags anchor h.Point of s, which
// sits at index h.Shape in the store.
func BeginEdit(s geom.Shape, h Hit) PendingCurve {
	p := PendingCurve{
		Kind:      s.Kind,
		Mode:      ModeEdit,
		Status:    StatusEdit,
		Closed:    s.Closed,
		Sides:     s.Sides,
		Style:     s.Style,
		EditPoint: h.Point,
		EditIndex: h.Shape,
	}
	switch s.Kind {
	case geom.Polygon:
		p.From = ptr(s.From)
		p.Points = append([]geom.Point(nil), s.Points...)
	case geom.Line, geom.Circle, geom.Rectangle:
		p.From, p.To = ptr(s.From), ptr(s.To)
	case geom.Bezier, geom.Triangle, geom.RightTriangle:
		p.From, p.To, p.Control = ptr(s.From), ptr(s.To), ptr(s.Control)
	default:
		panic(fmt.Sprintf("editor: edit unsupported %v", s.Kind))
	}
	return p
}

// Drag moves the bound anchor of an editing p to pt. Nothing else changes.
func Drag(p PendingCurve, pt geom.Point) PendingCurve {
	if p.Status != StatusEdit {
		return p
	}
	if p.Kind == geom.Polygon {
		p.Points = append([]geom.Point(nil), p.Points...)
		p.Points[p.EditPoint] = pt
		return p
	}
	switch p.EditPoint {
	case 0:
		p.From = ptr(pt)
	case 1:
		p.To = ptr(pt)
	case 2:
		p.Control = ptr(pt)
	default:
		panic(fmt.Sprintf("editor: edit point %d on %v", p.EditPoint, p.Kind))
	}
	return p
}

// EditedPoint is the current position of the anchor bound by p.
func (p PendingCurve) EditedPoint() geom.Point {
	if p.Kind == geom.Polygon {
		return p.Points[p.EditPoint]
	}
	var pt *geom.Point
	switch p.EditPoint {
	case 0:
		pt = p.From
	case 1:
		pt = p.To
	case 2:
		pt = p.Control
	}
	return must(pt, p.Kind, fmt.Sprintf("edit point %d", p.EditPoint))
}

// ApplyEdit writes the dragged anchor of p back into s.
func ApplyEdit(s geom.Shape, p PendingCurve) geom.Shape {
	return s.WithAnchor(p.EditPoint, p.EditedPoint())
}
