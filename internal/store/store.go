// Package store keeps the committed shapes of every canvas.
package store

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"vecsketch/internal/geom"
)

type canvas struct {
	shapes  []geom.Shape
	version uint64
}

// Store is the per-canvas ordered list of committed shapes. Insertion order
// is z-order and is never changed by edits. Every mutation bumps the
// canvas version, which renderers use as a dirty flag.
//
// A Store is owned by one editor session and is not safe for concurrent use.
type Store struct {
	canvases map[geom.CanvasID]*canvas
	order    []geom.CanvasID
}

func New() *Store {
	return &Store{canvases: make(map[geom.CanvasID]*canvas)}
}

func (s *Store) get(id geom.CanvasID) *canvas {
	c, ok := s.canvases[id]
	if !ok {
		c = &canvas{}
		s.canvases[id] = c
		s.order = append(s.order, id)
	}
	return c
}

// Ensure registers an empty canvas so it shows up in Canvases.
func (s *Store) Ensure(id geom.CanvasID) {
	s.get(id)
}

// Canvases lists known canvas ids in creation order.
func (s *Store) Canvases() []geom.CanvasID {
	return append([]geom.CanvasID(nil), s.order...)
}

// Add appends a shape to the canvas and returns the stored record. A ULID is
// assigned when the shape has no id.
func (s *Store) Add(id geom.CanvasID, shape geom.Shape) geom.Shape {
	c := s.get(id)
	shape = shape.Clone()
	shape.Canvas = id
	if shape.ID == "" {
		shape.ID = ulid.Make().String()
	}
	c.shapes = append(c.shapes, shape)
	c.version++
	logrus.WithFields(logrus.Fields{
		"canvas_id": id,
		"shape_id":  shape.ID,
		"kind":      shape.Kind.String(),
		"index":     len(c.shapes) - 1,
	}).Debug("Shape committed")
	return shape.Clone()
}

// Replace overwrites the shape at index idx in place. An index outside the
// canvas is a broken editor invariant and panics.
func (s *Store) Replace(id geom.CanvasID, idx int, shape geom.Shape) {
	c, ok := s.canvases[id]
	if !ok || idx < 0 || idx >= len(c.shapes) {
		n := 0
		if ok {
			n = len(c.shapes)
		}
		panic(fmt.Sprintf("store: replace index %d out of range on canvas %q with %d shapes", idx, id, n))
	}
	shape = shape.Clone()
	shape.Canvas = id
	c.shapes[idx] = shape
	c.version++
	logrus.WithFields(logrus.Fields{
		"canvas_id": id,
		"shape_id":  shape.ID,
		"index":     idx,
	}).Debug("Shape edited")
}

// Geometries returns a snapshot of the canvas shapes. Unknown canvases yield
// an empty list.
func (s *Store) Geometries(id geom.CanvasID) []geom.Shape {
	c, ok := s.canvases[id]
	if !ok {
		return []geom.Shape{}
	}
	out := make([]geom.Shape, len(c.shapes))
	for i, sh := range c.shapes {
		out[i] = sh.Clone()
	}
	return out
}

// At returns the shape at idx.
func (s *Store) At(id geom.CanvasID, idx int) (geom.Shape, bool) {
	c, ok := s.canvases[id]
	if !ok || idx < 0 || idx >= len(c.shapes) {
		return geom.Shape{}, false
	}
	return c.shapes[idx].Clone(), true
}

func (s *Store) Len(id geom.CanvasID) int {
	if c, ok := s.canvases[id]; ok {
		return len(c.shapes)
	}
	return 0
}

// Version is a counter bumped on every mutation of the canvas.
func (s *Store) Version(id geom.CanvasID) uint64 {
	if c, ok := s.canvases[id]; ok {
		return c.version
	}
	return 0
}
