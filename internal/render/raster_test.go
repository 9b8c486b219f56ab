package render

import (
	"math"
	"testing"
	"time"

	"vecsketch/internal/geom"
)

func TestLayer_SetPixelBits(t *testing.T) {
	l := NewLayer(2, 1)
	l.setPixel(0, 0, "a")
	l.setPixel(1, 3, "b")
	if got := l.Mask(0, 0); got != 0x01|0x80 {
		t.Errorf("mask = %#x, want %#x", got, 0x81)
	}
	if l.Color(0, 0) != "b" {
		t.Errorf("color = %q, want last writer b", l.Color(0, 0))
	}
	if l.Rune(1, 0) != ' ' {
		t.Error("empty cell should render as space")
	}
	l.setPixel(-1, 0, "x")
	l.setPixel(4, 0, "x")
	if l.Mask(1, 0) != 0 {
		t.Error("out of range pixel was written")
	}
}

func TestBounds_Cells(t *testing.T) {
	w, h := Bounds{W: 5, H: 9}.Cells()
	if w != 3 || h != 3 {
		t.Errorf("Cells() = %d,%d want 3,3", w, h)
	}
	if b := BoundsForCells(10, 4); b != (Bounds{W: 20, H: 16}) {
		t.Errorf("BoundsForCells = %+v", b)
	}
}

func TestRasterize_HorizontalLine(t *testing.T) {
	l := BrailleRasterizer{}.Rasterize(Bounds{W: 20, H: 8}, []Path{{
		Commands: []Command{moveTo(geom.Pt(0, 0)), lineTo(geom.Pt(19, 0))},
		Color:    "#fff",
		Width:    1,
	}})
	for cx := 0; cx < 10; cx++ {
		if l.Mask(cx, 0) != 0x01|0x08 {
			t.Errorf("cell %d mask = %#x, want top row set", cx, l.Mask(cx, 0))
		}
		if l.Mask(cx, 1) != 0 {
			t.Errorf("cell %d of second row should be empty", cx)
		}
	}
}

func TestRasterize_FillCoversInterior(t *testing.T) {
	rect := Path{Commands: []Command{{Op: OpRect, P: geom.Pt(0, 0), W: 15, H: 15}}, Fill: true, Color: "#fff", Width: 1}
	outline := rect
	outline.Fill = false

	filled := BrailleRasterizer{}.Rasterize(Bounds{W: 16, H: 16}, []Path{rect})
	stroked := BrailleRasterizer{}.Rasterize(Bounds{W: 16, H: 16}, []Path{outline})
	if filled.Mask(3, 2) != 0xFF {
		t.Errorf("interior cell mask = %#x, want full", filled.Mask(3, 2))
	}
	if stroked.Mask(3, 2) != 0 {
		t.Errorf("stroked interior cell mask = %#x, want empty", stroked.Mask(3, 2))
	}
}

func TestRasterize_WideStroke(t *testing.T) {
	thin := BrailleRasterizer{}.Rasterize(Bounds{W: 20, H: 20}, []Path{{
		Commands: []Command{moveTo(geom.Pt(2, 10)), lineTo(geom.Pt(18, 10))}, Width: 1,
	}})
	wide := BrailleRasterizer{}.Rasterize(Bounds{W: 20, H: 20}, []Path{{
		Commands: []Command{moveTo(geom.Pt(2, 10)), lineTo(geom.Pt(18, 10))}, Width: 3,
	}})
	if wide.Mask(4, 2) == thin.Mask(4, 2) {
		t.Error("width 3 stroke should set more dots than width 1")
	}
}

func TestFlatten(t *testing.T) {
	subs := flatten([]Command{
		moveTo(geom.Pt(0, 0)),
		{Op: OpQuadTo, C: geom.Pt(5, 10), P: geom.Pt(10, 0)},
		moveTo(geom.Pt(1, 1)), lineTo(geom.Pt(2, 2)), lineTo(geom.Pt(3, 1)), {Op: OpClose},
		{Op: OpCircle, P: geom.Pt(10, 10), R: 2},
	})
	if len(subs) != 3 {
		t.Fatalf("got %d subpaths, want 3", len(subs))
	}
	if len(subs[0].pts) != quadSegments+1 || subs[0].closed {
		t.Errorf("quad subpath = %d pts closed=%v", len(subs[0].pts), subs[0].closed)
	}
	if !subs[1].closed || len(subs[1].pts) != 3 {
		t.Errorf("triangle subpath = %+v", subs[1])
	}
	if !subs[2].closed || len(subs[2].pts) < 12 {
		t.Errorf("circle subpath has %d pts", len(subs[2].pts))
	}
}

func TestRasterize_FarGeometryIsClipped(t *testing.T) {
	b := Bounds{W: 20, H: 8}
	inf := math.Inf(1)
	paths := []Path{
		{Commands: []Command{moveTo(geom.Pt(0, 0)), lineTo(geom.Pt(1e9, 0))}, Width: 1},
		{Commands: []Command{moveTo(geom.Pt(0, 4)), lineTo(geom.Pt(inf, 4))}, Width: 1},
		{Commands: []Command{moveTo(geom.Pt(math.NaN(), 0))}, Width: 1},
		{Commands: []Command{{Op: OpCircle, P: geom.Pt(0, 0), R: 1e12}}, Width: 3},
		{Commands: []Command{{Op: OpRect, P: geom.Pt(-1e9, -1e9), W: 2e9, H: 2e9}}, Fill: true, Width: 1},
	}
	done := make(chan *Layer, 1)
	go func() { done <- BrailleRasterizer{}.Rasterize(b, paths) }()

	var l *Layer
	select {
	case l = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("rasterizing far geometry did not finish")
	}
	w, _ := b.Cells()
	if l.Mask(0, 0) == 0 || l.Mask(w-1, 0) == 0 {
		t.Errorf("row 0 masks = %#x..%#x, want dots at both ends", l.Mask(0, 0), l.Mask(w-1, 0))
	}
}

func TestRasterize_LineCrossingCanvas(t *testing.T) {
	l := BrailleRasterizer{}.Rasterize(Bounds{W: 20, H: 8}, []Path{{
		Commands: []Command{moveTo(geom.Pt(-1e6, 0)), lineTo(geom.Pt(1e6, 0))},
		Width:    1,
	}})
	for cx := 0; cx < 10; cx++ {
		if l.Mask(cx, 0) != 0x01|0x08 {
			t.Errorf("cell %d mask = %#x, want top row set", cx, l.Mask(cx, 0))
		}
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name   string
		a, b   geom.Point
		ok     bool
		ca, cb geom.Point
	}{
		{"inside", geom.Pt(1, 1), geom.Pt(5, 5), true, geom.Pt(1, 1), geom.Pt(5, 5)},
		{"crosses right edge", geom.Pt(0, 0), geom.Pt(20, 0), true, geom.Pt(0, 0), geom.Pt(10, 0)},
		{"crosses both sides", geom.Pt(-10, 5), geom.Pt(30, 5), true, geom.Pt(0, 5), geom.Pt(10, 5)},
		{"outside", geom.Pt(-5, -5), geom.Pt(-1, 20), false, geom.Point{}, geom.Point{}},
		{"parallel outside", geom.Pt(0, 11), geom.Pt(10, 11), false, geom.Point{}, geom.Point{}},
		{"infinite end", geom.Pt(0, 0), geom.Pt(math.Inf(1), 0), false, geom.Point{}, geom.Point{}},
		{"nan end", geom.Pt(math.NaN(), 0), geom.Pt(5, 5), false, geom.Point{}, geom.Point{}},
	}
	for _, tt := range tests {
		ca, cb, ok := clipSegment(tt.a, tt.b, 0, 0, 10, 10)
		if ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && (ca != tt.ca || cb != tt.cb) {
			t.Errorf("%s: got %v-%v, want %v-%v", tt.name, ca, cb, tt.ca, tt.cb)
		}
	}
}

func TestCircleSegments(t *testing.T) {
	if n := circleSegments(1); n != minCircleSegments {
		t.Errorf("small circle: %d segments", n)
	}
	if n := circleSegments(1e12); n != maxCircleSegments {
		t.Errorf("huge circle: %d segments", n)
	}
	if n := circleSegments(math.NaN()); n != minCircleSegments {
		t.Errorf("NaN radius: %d segments", n)
	}
}
