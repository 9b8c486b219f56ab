package render

import (
	"fmt"

	"vecsketch/internal/geom"
)

// Op is a path command opcode understood by every rasterizer backend.
type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpClose
	OpCircle
	OpRect
)

// Command is one path command:
//
//	OpMoveTo, OpLineTo  P
//	OpQuadTo            C (control), P (end)
//	OpCircle            P (center), R
//	OpRect              P (top-left), W, H
type Command struct {
	Op   Op
	P    geom.Point
	C    geom.Point
	R    float64
	W, H float64
}

// Path is a styled list of commands, either stroked or filled.
type Path struct {
	Commands []Command
	Fill     bool
	Color    string
	Width    float64
}

func moveTo(p geom.Point) Command { return Command{Op: OpMoveTo, P: p} }
func lineTo(p geom.Point) Command { return Command{Op: OpLineTo, P: p} }

// ShapePath turns a committed shape into path commands, filling unset style
// fields from styles.
func ShapePath(s geom.Shape, styles StyleResolver) Path {
	def := styles.ResolveStyle(s.Kind)
	p := Path{Fill: s.Fill, Color: s.StrokeColor, Width: s.StrokeWidth}
	if p.Color == "" {
		p.Color = def.Color
	}
	if p.Width <= 0 {
		p.Width = def.Width
	}
	p.Commands = shapeCommands(s)
	return p
}

func shapeCommands(s geom.Shape) []Command {
	switch s.Kind {
	case geom.Line:
		return []Command{moveTo(s.From), lineTo(s.To)}
	case geom.Circle:
		return []Command{{Op: OpCircle, P: s.From, R: s.Radius}}
	case geom.Bezier:
		return []Command{moveTo(s.From), {Op: OpQuadTo, C: s.Control, P: s.To}}
	case geom.Triangle, geom.RightTriangle:
		return []Command{moveTo(s.From), lineTo(s.To), lineTo(s.Control), {Op: OpClose}}
	case geom.Rectangle:
		return []Command{{Op: OpRect, P: s.TopLeft, W: s.Width, H: s.Height}}
	case geom.Polygon:
		if len(s.Points) == 0 {
			return nil
		}
		cmds := make([]Command, 0, len(s.Points)+1)
		cmds = append(cmds, moveTo(s.Points[0]))
		for _, v := range s.Points[1:] {
			cmds = append(cmds, lineTo(v))
		}
		if s.Closed {
			cmds = append(cmds, Command{Op: OpClose})
		}
		return cmds
	case geom.KindNone, geom.Ellipse:
		return nil
	default:
		panic(fmt.Sprintf("render: no path for %v", s.Kind))
	}
}

// borderPath strokes the edge of the canvas.
func borderPath(b Bounds, st Style) Path {
	return Path{
		Commands: []Command{{Op: OpRect, P: geom.Pt(0, 0), W: float64(b.W - 1), H: float64(b.H - 1)}},
		Color:    st.Color,
		Width:    st.Width,
	}
}

// markerPath is a small filled dot on an anchor.
func markerPath(p geom.Point, st Style) Path {
	return Path{
		Commands: []Command{{Op: OpCircle, P: p, R: 1.5}},
		Fill:     true,
		Color:    st.Color,
		Width:    1,
	}
}
