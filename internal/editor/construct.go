package editor

import (
	"fmt"

	"vecsketch/internal/geom"
)

// Advance feeds one confirmed press at click into p. kind is the shape kind
// selected on the canvas; it is only consulted when p is idle. Presses with
// no kind selected, and presses on an unimplemented kind, leave p unchanged.
func Advance(p PendingCurve, kind geom.Kind, click geom.Point) PendingCurve {
	if p.Status == StatusComplete || p.Status == StatusEdit {
		return p
	}
	if p.Kind == geom.KindNone {
		if !kind.Implemented() {
			return p
		}
		p.Kind = kind
		p.Status = StatusInProgress
		p.From = ptr(click)
		return p
	}
	switch p.Kind {
	case geom.Line, geom.Circle, geom.Rectangle, geom.Polygon:
		p.To = ptr(click)
		p.Status = StatusComplete
	case geom.Bezier, geom.Triangle:
		if p.To == nil {
			p.To = ptr(click)
		} else {
			p.Control = ptr(click)
			p.Status = StatusComplete
		}
	case geom.RightTriangle:
		if p.To == nil {
			p.To = &geom.Point{X: p.From.X, Y: click.Y}
		} else {
			p.Control = &geom.Point{X: click.X, Y: p.To.Y}
			p.Status = StatusComplete
		}
	case geom.Ellipse:
	default:
		panic(fmt.Sprintf("editor: advance on unknown %v", p.Kind))
	}
	return p
}

func must(pt *geom.Point, kind geom.Kind, name string) geom.Point {
	if pt == nil {
		panic(fmt.Sprintf("editor: %v finalized without %s anchor", kind, name))
	}
	return *pt
}

// Finalize derives the committed record from a complete p. A missing anchor
// means the state machine was bypassed and panics.
func Finalize(p PendingCurve, canvas geom.CanvasID) geom.Shape {
	if p.Status != StatusComplete {
		panic(fmt.Sprintf("editor: finalize in status %v", p.Status))
	}
	s := geom.Shape{
		Canvas:  canvas,
		Kind:    p.Kind,
		Style:   p.Style,
		Visible: true,
	}
	s.From = must(p.From, p.Kind, "from")
	s.To = must(p.To, p.Kind, "to")
	switch p.Kind {
	case geom.Line:
	case geom.Circle:
		s.Radius = s.From.Dist(s.To)
	case geom.Bezier, geom.Triangle, geom.RightTriangle:
		s.Control = must(p.Control, p.Kind, "control")
	case geom.Rectangle:
		s.TopLeft, s.Width, s.Height = geom.RectFromCorners(s.From, s.To)
	case geom.Polygon:
		s.Radius = s.From.Dist(s.To)
		s.Sides = p.Sides
		s.Points = geom.RegularPolygon(s.From, s.To, p.Sides)
		s.Closed = true
	default:
		panic(fmt.Sprintf("editor: finalize unsupported %v", p.Kind))
	}
	return s
}
