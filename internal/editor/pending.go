// Package editor turns pointer events into shapes: it builds new shapes
// press by press and drags the anchors of committed ones.
package editor

import (
	"fmt"

	"vecsketch/internal/geom"
)

// Status is the state of the in-progress shape.
type Status int

const (
	StatusNew Status = iota
	StatusInProgress
	StatusComplete
	StatusEdit
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusInProgress:
		return "in-progress"
	case StatusComplete:
		return "complete"
	case StatusEdit:
		return "edit"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Mode selects what a press does on a canvas.
type Mode int

const (
	ModeNew Mode = iota
	ModeEdit
	ModeFreehand
	ModePickAndPlace
)

func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeEdit:
		return "edit"
	case ModeFreehand:
		return "freehand"
	case ModePickAndPlace:
		return "pick-and-place"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Modes lists every mode in cycling order.
func Modes() []Mode {
	return []Mode{ModeNew, ModeEdit, ModeFreehand, ModePickAndPlace}
}

// PendingCurve is the single shape under construction or under edit on a
// canvas. The zero value is the idle state: no kind, status New.
//
// EditPoint and EditIndex are meaningful only while Status is StatusEdit:
// EditIndex is the shape's position in the store and EditPoint the anchor
// being dragged (0 From, 1 To, 2 Control, or a polygon vertex index).
type PendingCurve struct {
	Kind   geom.Kind
	Mode   Mode
	Status Status

	From    *geom.Point
	To      *geom.Point
	Control *geom.Point
	Points  []geom.Point
	Closed  bool
	Sides   int

	geom.Style

	EditPoint int
	EditIndex int
}

// Idle reports whether nothing is being built or edited.
func (p PendingCurve) Idle() bool {
	return p.Kind == geom.KindNone && p.Status == StatusNew
}

func ptr(p geom.Point) *geom.Point { return &p }
