package geom

import "fmt"

// Kind is the closed set of shapes the editor can construct.
type Kind int

const (
	KindNone Kind = iota
	Bezier
	Circle
	Ellipse
	Line
	Polygon
	Rectangle
	Triangle
	RightTriangle
)

var kindNames = map[Kind]string{
	KindNone:      "none",
	Bezier:        "bezier",
	Circle:        "circle",
	Ellipse:       "ellipse",
	Line:          "line",
	Polygon:       "polygon",
	Rectangle:     "rectangle",
	Triangle:      "triangle",
	RightTriangle: "right-triangle",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Anchors is the number of presses needed to construct a shape of kind k.
// Ellipse has no construction protocol and reports zero.
func (k Kind) Anchors() int {
	switch k {
	case Line, Circle, Rectangle, Polygon:
		return 2
	case Bezier, Triangle, RightTriangle:
		return 3
	default:
		return 0
	}
}

// Implemented reports whether shapes of kind k can be constructed.
func (k Kind) Implemented() bool { return k.Anchors() > 0 }

// Kinds lists every constructible kind in menu order.
func Kinds() []Kind {
	return []Kind{Line, Circle, Bezier, Triangle, RightTriangle, Rectangle, Polygon}
}

// Style is the per-shape appearance. Empty StrokeColor and zero StrokeWidth
// mean "unset" and are resolved by the theme at draw time.
type Style struct {
	StrokeColor string
	Fill        bool
	StrokeWidth float64
}

// Shape is a committed geometry record. Which fields carry meaning depends on Kind:
//
//	Line           From, To
//	Circle         From (center), To, Radius
//	Bezier         From, To (endpoints), Control
//	Triangle       From, To, Control
//	RightTriangle  From, To, Control (axis-aligned)
//	Rectangle      From, To, TopLeft, Width, Height
//	Polygon        From (center), To, Radius, Sides, Points, Closed
type Shape struct {
	ID     string
	Canvas CanvasID
	Kind   Kind

	From    Point
	To      Point
	Control Point

	Radius  float64
	TopLeft Point
	Width   float64
	Height  float64

	Sides  int
	Points []Point
	Closed bool

	Style
	Visible bool
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	if s.Points != nil {
		s.Points = append([]Point(nil), s.Points...)
	}
	return s
}

// Anchors returns the editable points of s in hit-test order.
func (s Shape) Anchors() []Point {
	switch s.Kind {
	case Line, Circle, Rectangle:
		return []Point{s.From, s.To}
	case Bezier, Triangle, RightTriangle:
		return []Point{s.From, s.To, s.Control}
	case Polygon:
		return s.Points
	case KindNone, Ellipse:
		return nil
	default:
		panic(fmt.Sprintf("geom: anchors of unknown %v", s.Kind))
	}
}

// WithAnchor returns a copy of s with anchor i moved to p. Geometry derived
// from the moved anchor (circle radius, rectangle corner) is recomputed; no
// other field changes. An out of range index is a programming error.
func (s Shape) WithAnchor(i int, p Point) Shape {
	out := s.Clone()
	n := len(s.Anchors())
	if i < 0 || i >= n {
		panic(fmt.Sprintf("geom: anchor %d out of range for %v with %d anchors", i, s.Kind, n))
	}
	switch s.Kind {
	case Polygon:
		out.Points[i] = p
		return out
	}
	switch i {
	case 0:
		out.From = p
	case 1:
		out.To = p
	case 2:
		out.Control = p
	}
	switch s.Kind {
	case Circle:
		out.Radius = out.From.Dist(out.To)
	case Rectangle:
		out.TopLeft, out.Width, out.Height = RectFromCorners(out.From, out.To)
	}
	return out
}
