package editor

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"vecsketch/internal/geom"
	"vecsketch/internal/store"
)

var (
	ErrModeNotImplemented = errors.New("mode not implemented")
	ErrKindNotImplemented = errors.New("shape kind not implemented")
	ErrInvalidSides       = errors.New("polygon needs at least 3 sides")
)

const DefaultPolygonSides = 5

type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerRelease
	PointerMove
)

// PointerEvent is a pointer action at a canvas position.
type PointerEvent struct {
	Action PointerAction
	Pos    geom.Point
}

// session is the per-canvas editing state.
type session struct {
	mode    Mode
	kind    geom.Kind
	sides   int
	style   geom.Style
	pending PendingCurve
	hover   *geom.Point
}

// Editor owns the geometry store and the pending curve of every canvas.
// Events are processed one at a time; an Editor is not safe for concurrent use.
type Editor struct {
	store     *store.Store
	threshold float64
	sides     int
	sessions  map[geom.CanvasID]*session
}

type Option func(*Editor)

func WithHitThreshold(t float64) Option {
	return func(e *Editor) { e.threshold = t }
}

// WithPolygonSides sets the side count new canvases start with.
func WithPolygonSides(n int) Option {
	return func(e *Editor) { e.sides = n }
}

func New(st *store.Store, opts ...Option) *Editor {
	e := &Editor{
		store:     st,
		threshold: DefaultHitThreshold,
		sides:     DefaultPolygonSides,
		sessions:  make(map[geom.CanvasID]*session),
	}
	for _, o := range opts {
		o(e)
	}
	if e.sides < 3 {
		e.sides = DefaultPolygonSides
	}
	return e
}

func (e *Editor) Store() *store.Store { return e.store }

func (e *Editor) session(c geom.CanvasID) *session {
	s, ok := e.sessions[c]
	if !ok {
		s = &session{mode: ModeNew, sides: e.sides}
		e.sessions[c] = s
		e.store.Ensure(c)
	}
	return s
}

// lookup returns the state of c without creating it. An unknown canvas
// reads as a fresh session.
func (e *Editor) lookup(c geom.CanvasID) (*session, bool) {
	if s, ok := e.sessions[c]; ok {
		return s, true
	}
	return &session{mode: ModeNew, sides: e.sides}, false
}

// Geometries returns a read-only snapshot of the committed shapes of c.
func (e *Editor) Geometries(c geom.CanvasID) []geom.Shape {
	return e.store.Geometries(c)
}

// SetMode switches the mode of c and discards any pending curve. Freehand
// and PickAndPlace can be selected, but presses in them report
// ErrModeNotImplemented.
func (e *Editor) SetMode(c geom.CanvasID, m Mode) {
	s := e.session(c)
	s.mode = m
	s.pending = PendingCurve{}
	logrus.WithFields(logrus.Fields{"canvas_id": c, "mode": m.String()}).Debug("Mode changed")
}

// SetShapeKind selects the kind built by presses in New mode. KindNone
// deselects. Changing kind discards a half-built shape.
func (e *Editor) SetShapeKind(c geom.CanvasID, k geom.Kind) error {
	if k != geom.KindNone && !k.Implemented() {
		return fmt.Errorf("%v: %w", k, ErrKindNotImplemented)
	}
	s := e.session(c)
	s.kind = k
	if s.pending.Status != StatusEdit {
		s.pending = PendingCurve{}
	}
	logrus.WithFields(logrus.Fields{"canvas_id": c, "kind": k.String()}).Debug("Shape kind changed")
	return nil
}

// SetPolygonSides sets the side count of polygons started after the call.
func (e *Editor) SetPolygonSides(c geom.CanvasID, n int) error {
	if n < 3 {
		return fmt.Errorf("%d sides: %w", n, ErrInvalidSides)
	}
	e.session(c).sides = n
	return nil
}

// SetStyle sets the style given to shapes started after the call.
func (e *Editor) SetStyle(c geom.CanvasID, st geom.Style) {
	e.session(c).style = st
}

// get is lookup for single-field reads.
func (e *Editor) get(c geom.CanvasID) *session {
	s, _ := e.lookup(c)
	return s
}

func (e *Editor) Mode(c geom.CanvasID) Mode            { return e.get(c).mode }
func (e *Editor) ShapeKind(c geom.CanvasID) geom.Kind  { return e.get(c).kind }
func (e *Editor) PolygonSides(c geom.CanvasID) int     { return e.get(c).sides }
func (e *Editor) Style(c geom.CanvasID) geom.Style     { return e.get(c).style }
func (e *Editor) Pending(c geom.CanvasID) PendingCurve { return e.get(c).pending }

// Cancel discards the pending curve of c. The store is not touched, so an
// edit in progress leaves its shape as it was. Reports whether anything
// was discarded.
func (e *Editor) Cancel(c geom.CanvasID) bool {
	s, ok := e.lookup(c)
	if !ok || s.pending.Idle() {
		return false
	}
	s.pending = PendingCurve{}
	return true
}

// Import appends shapes to c as committed records.
func (e *Editor) Import(c geom.CanvasID, shapes []geom.Shape) {
	e.session(c)
	for _, sh := range shapes {
		e.store.Add(c, sh)
	}
	logrus.WithFields(logrus.Fields{"canvas_id": c, "count": len(shapes)}).Info("Shapes imported")
}

// OnPointerEvent routes ev according to the mode of c. handled reports that
// the event was consumed; redraw that the canvas needs repainting.
func (e *Editor) OnPointerEvent(c geom.CanvasID, ev PointerEvent) (handled, redraw bool, err error) {
	s := e.session(c)
	switch s.mode {
	case ModeNew:
		handled, redraw = e.construct(c, s, ev)
		return handled, redraw, nil
	case ModeEdit:
		handled, redraw = e.edit(c, s, ev)
		return handled, redraw, nil
	case ModeFreehand, ModePickAndPlace:
		if ev.Action != PointerPress {
			return false, false, nil
		}
		logrus.WithFields(logrus.Fields{"canvas_id": c, "mode": s.mode.String()}).Warn("Press in unimplemented mode")
		return false, false, fmt.Errorf("%v: %w", s.mode, ErrModeNotImplemented)
	default:
		panic(fmt.Sprintf("editor: unknown %v", s.mode))
	}
}

func (e *Editor) construct(c geom.CanvasID, s *session, ev PointerEvent) (bool, bool) {
	switch ev.Action {
	case PointerMove:
		s.hover = ptr(ev.Pos)
		return true, !s.pending.Idle()
	case PointerPress:
		if s.kind == geom.KindNone {
			return false, false
		}
		p := s.pending
		if p.Idle() {
			p = PendingCurve{Mode: ModeNew, Sides: s.sides, Style: s.style}
		}
		s.pending = Advance(p, s.kind, ev.Pos)
		if s.pending.Status == StatusComplete {
			e.store.Add(c, Finalize(s.pending, c))
			s.pending = PendingCurve{}
		}
		return true, true
	}
	return false, false
}

func (e *Editor) edit(c geom.CanvasID, s *session, ev PointerEvent) (bool, bool) {
	switch ev.Action {
	case PointerMove:
		s.hover = ptr(ev.Pos)
		if s.pending.Status == StatusEdit {
			s.pending = Drag(s.pending, ev.Pos)
		}
		return true, true
	case PointerPress:
		if s.pending.Status == StatusEdit {
			// no release arrived for the previous drag; the press confirms it
			s.pending = Drag(s.pending, ev.Pos)
			e.commitEdit(c, s)
			return true, true
		}
		hit, ok := HitTest(e.store.Geometries(c), ev.Pos, e.threshold)
		if !ok {
			return false, false
		}
		sh, _ := e.store.At(c, hit.Shape)
		s.pending = BeginEdit(sh, hit)
		return true, true
	case PointerRelease:
		if s.pending.Status != StatusEdit {
			return false, false
		}
		s.pending = Drag(s.pending, ev.Pos)
		e.commitEdit(c, s)
		return true, true
	}
	return false, false
}

func (e *Editor) commitEdit(c geom.CanvasID, s *session) {
	p := s.pending
	cur, ok := e.store.At(c, p.EditIndex)
	if !ok {
		panic(fmt.Sprintf("editor: edit index %d out of range on canvas %q", p.EditIndex, c))
	}
	e.store.Replace(c, p.EditIndex, ApplyEdit(cur, p))
	s.pending = PendingCurve{}
}

// HoverHit returns the anchor an Edit-mode press at the last pointer
// position would pick.
func (e *Editor) HoverHit(c geom.CanvasID) (geom.Point, bool) {
	s := e.get(c)
	if s.mode != ModeEdit || s.hover == nil || s.pending.Status == StatusEdit {
		return geom.Point{}, false
	}
	shapes := e.store.Geometries(c)
	hit, ok := HitTest(shapes, *s.hover, e.threshold)
	if !ok {
		return geom.Point{}, false
	}
	return shapes[hit.Shape].Anchors()[hit.Point], true
}
