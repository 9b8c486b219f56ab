package editor

import (
	"vecsketch/internal/geom"
)

// Preview is what the overlay shows for a pending curve: shapes drawn as
// outlines and anchor markers.
type Preview struct {
	Shapes  []geom.Shape
	Markers []geom.Point
}

// Preview describes the live overlay of c. While building, the last pointer
// position stands in for the next anchor so the user sees the shape the
// next press would produce.
func (e *Editor) Preview(c geom.CanvasID) Preview {
	s := e.get(c)
	p := s.pending
	switch {
	case p.Kind == geom.KindNone:
		return Preview{}
	case p.Status == StatusEdit:
		cur, ok := e.store.At(c, p.EditIndex)
		if !ok {
			return Preview{}
		}
		return Preview{
			Shapes:  []geom.Shape{ApplyEdit(cur, p)},
			Markers: []geom.Point{p.EditedPoint()},
		}
	}

	var pv Preview
	if p.From != nil {
		pv.Markers = append(pv.Markers, *p.From)
	}
	if p.To != nil {
		pv.Markers = append(pv.Markers, *p.To)
	}
	if s.hover != nil {
		next := Advance(p, p.Kind, *s.hover)
		if next.Status == StatusComplete {
			pv.Shapes = append(pv.Shapes, Finalize(next, c))
			return pv
		}
		p = next
	}
	if sh, ok := partial(p, c); ok {
		pv.Shapes = append(pv.Shapes, sh)
	}
	return pv
}

// partial returns the segment From-To of a three-anchor shape that has its
// first two anchors.
func partial(p PendingCurve, c geom.CanvasID) (geom.Shape, bool) {
	if p.From == nil || p.To == nil {
		return geom.Shape{}, false
	}
	return geom.Shape{
		Canvas:  c,
		Kind:    geom.Line,
		From:    *p.From,
		To:      *p.To,
		Style:   p.Style,
		Visible: true,
	}, true
}
