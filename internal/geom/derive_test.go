package geom

import (
	"math"
	"testing"
)

func TestRectFromCorners_Quadrants(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		topLeft  Point
		w, h     float64
	}{
		{"down-right", Pt(10, 10), Pt(30, 50), Pt(10, 10), 20, 40},
		{"up-right", Pt(10, 50), Pt(30, 10), Pt(10, 10), 20, 40},
		{"up-left", Pt(30, 50), Pt(10, 10), Pt(10, 10), 20, 40},
		{"down-left", Pt(30, 10), Pt(10, 50), Pt(10, 10), 20, 40},
		{"degenerate", Pt(10, 10), Pt(10, 40), Pt(10, 40), 0, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, w, h := RectFromCorners(tt.from, tt.to)
			if tl != tt.topLeft || w != tt.w || h != tt.h {
				t.Errorf("RectFromCorners(%v, %v) = %v %v %v, want %v %v %v",
					tt.from, tt.to, tl, w, h, tt.topLeft, tt.w, tt.h)
			}
		})
	}
}

func TestRectFromCorners_Symmetric(t *testing.T) {
	a, aw, ah := RectFromCorners(Pt(100, 100), Pt(50, 50))
	b, bw, bh := RectFromCorners(Pt(50, 50), Pt(100, 100))
	if a != b || aw != bw || ah != bh {
		t.Fatalf("swapped corners differ: %v %v %v vs %v %v %v", a, aw, ah, b, bw, bh)
	}
	if a != Pt(50, 50) || aw != 50 || ah != 50 {
		t.Errorf("got %v %v %v, want (50,50) 50 50", a, aw, ah)
	}
}

func TestRegularPolygon(t *testing.T) {
	center := Pt(50, 50)
	pts := RegularPolygon(center, Pt(100, 50), 5)
	if len(pts) != 5 {
		t.Fatalf("got %d vertices, want 5", len(pts))
	}
	for i, p := range pts {
		if d := center.Dist(p); math.Abs(d-50) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want 50", i, d)
		}
	}
	// first vertex is rotated pi/5 from straight up
	want := Pt(50+50*math.Sin(math.Pi/5), 50+50*math.Cos(math.Pi/5))
	if pts[0].Dist(want) > 1e-9 {
		t.Errorf("first vertex %v, want %v", pts[0], want)
	}
}

func TestRegularPolygon_FlatEdge(t *testing.T) {
	pts := RegularPolygon(Pt(0, 0), Pt(0, 10), 4)
	// a square rotated by pi/4 has two vertices sharing the maximal y
	if math.Abs(pts[0].Y-pts[3].Y) > 1e-9 {
		t.Errorf("expected flat edge between vertex 3 and 0: %v %v", pts[3], pts[0])
	}
}

func TestRegularPolygon_PanicsOnTooFewSides(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for 2 sides")
		}
	}()
	RegularPolygon(Pt(0, 0), Pt(1, 0), 2)
}

func TestOutline(t *testing.T) {
	bez := Shape{Kind: Bezier, From: Pt(0, 0), Control: Pt(5, 10), To: Pt(10, 0)}
	pts, closed := Outline(bez, 8)
	if closed {
		t.Error("bezier outline should be open")
	}
	if len(pts) != 9 || pts[0] != bez.From || pts[8] != bez.To {
		t.Errorf("bezier outline endpoints wrong: %v", pts)
	}

	tl, w, h := RectFromCorners(Pt(0, 0), Pt(4, 2))
	rect := Shape{Kind: Rectangle, TopLeft: tl, Width: w, Height: h}
	pts, closed = Outline(rect, 8)
	if !closed || len(pts) != 4 || pts[2] != Pt(4, 2) {
		t.Errorf("rectangle outline = %v closed=%v", pts, closed)
	}
}
