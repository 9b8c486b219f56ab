package render

import (
	"testing"
	"time"

	"vecsketch/internal/geom"
	"vecsketch/internal/store"
)

type countingRasterizer struct {
	calls int
	inner Rasterizer
}

func (c *countingRasterizer) Rasterize(b Bounds, paths []Path) *Layer {
	c.calls++
	return c.inner.Rasterize(b, paths)
}

// newTestPipeline counts every rasterize call. The overlay is rasterized on
// each Draw, so a cache hit still costs one call.
func newTestPipeline(st *store.Store) (*Pipeline, *countingRasterizer) {
	cr := &countingRasterizer{inner: BrailleRasterizer{}}
	th := DefaultTheme()
	return NewPipeline(st, th, th, cr), cr
}

func TestDraw_CachesCommittedPass(t *testing.T) {
	st := store.New()
	st.Add("c", geom.Shape{Kind: geom.Line, From: geom.Pt(2, 2), To: geom.Pt(30, 20), Visible: true})
	p, cr := newTestPipeline(st)
	b := Bounds{W: 40, H: 40}

	f1 := p.Draw("c", b, Overlay{})
	if cr.calls != 2 {
		t.Fatalf("first draw: %d rasterize calls, want 2", cr.calls)
	}
	f2 := p.Draw("c", b, Overlay{})
	if cr.calls != 3 {
		t.Fatalf("second draw: %d rasterize calls, want 3 (overlay only)", cr.calls)
	}
	if f1.Committed != f2.Committed {
		t.Error("committed layer not reused on cache hit")
	}
	if f1.Overlay == f2.Overlay {
		t.Error("overlay layer must not be cached")
	}
}

func TestDraw_InvalidatesOnMutation(t *testing.T) {
	st := store.New()
	s := st.Add("c", geom.Shape{Kind: geom.Line, From: geom.Pt(2, 2), To: geom.Pt(30, 20), Visible: true})
	p, cr := newTestPipeline(st)
	b := Bounds{W: 40, H: 40}

	p.Draw("c", b, Overlay{})
	st.Replace("c", 0, s.WithAnchor(1, geom.Pt(10, 30)))
	p.Draw("c", b, Overlay{})
	if cr.calls != 4 {
		t.Errorf("after edit: %d calls, want 4", cr.calls)
	}

	p.Draw("c", Bounds{W: 60, H: 40}, Overlay{})
	if cr.calls != 6 {
		t.Errorf("after resize: %d calls, want 6", cr.calls)
	}

	p.Invalidate("c")
	p.Draw("c", Bounds{W: 60, H: 40}, Overlay{})
	if cr.calls != 8 {
		t.Errorf("after invalidate: %d calls, want 8", cr.calls)
	}
}

func TestDraw_CanvasesCachedSeparately(t *testing.T) {
	st := store.New()
	st.Add("a", geom.Shape{Kind: geom.Line, From: geom.Pt(0, 0), To: geom.Pt(8, 8), Visible: true})
	p, cr := newTestPipeline(st)
	b := Bounds{W: 20, H: 20}
	p.Draw("a", b, Overlay{})
	p.Draw("b", b, Overlay{})
	p.Draw("a", b, Overlay{})
	p.Draw("b", b, Overlay{})
	// 4 overlays + 2 committed
	if cr.calls != 6 {
		t.Errorf("got %d calls, want 6", cr.calls)
	}
}

func TestCommittedPaths_OrderStyleAndBorder(t *testing.T) {
	st := store.New()
	st.Add("c", geom.Shape{Kind: geom.Circle, From: geom.Pt(10, 10), Radius: 4, Visible: true})
	st.Add("c", geom.Shape{Kind: geom.Line, From: geom.Pt(0, 0), To: geom.Pt(5, 5)})
	st.Add("c", geom.Shape{Kind: geom.Line, From: geom.Pt(0, 0), To: geom.Pt(5, 5), Visible: true,
		Style: geom.Style{StrokeColor: "#ff0000", StrokeWidth: 3, Fill: true}})
	p, _ := newTestPipeline(st)
	th := DefaultTheme()

	paths := p.CommittedPaths("c", Bounds{W: 20, H: 20})
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3 (hidden shape skipped, border last)", len(paths))
	}
	if paths[0].Color != th.Kinds[geom.Circle].Color || paths[0].Width != 1 {
		t.Errorf("default style not resolved: %+v", paths[0])
	}
	if paths[1].Color != "#ff0000" || paths[1].Width != 3 || !paths[1].Fill {
		t.Errorf("explicit style lost: %+v", paths[1])
	}
	last := paths[2]
	if last.Color != th.Border.Color || last.Commands[0].Op != OpRect {
		t.Errorf("border not last: %+v", last)
	}
}

func TestDraw_OverlayContent(t *testing.T) {
	st := store.New()
	p, _ := newTestPipeline(st)
	f := p.Draw("c", Bounds{W: 20, H: 20}, Overlay{Markers: []geom.Point{geom.Pt(10, 10)}})
	if f.Overlay.Mask(5, 2) == 0 {
		t.Error("marker not drawn in overlay")
	}
	if f.Committed.Mask(5, 2) != 0 {
		t.Error("marker leaked into committed layer")
	}
}

func TestDraw_FarOffCanvasLine(t *testing.T) {
	shapes, err := geom.ParseWKT("LINESTRING (0 0, 1e9 0)")
	if err != nil {
		t.Fatalf("ParseWKT() failed: %v", err)
	}
	st := store.New()
	st.Add("c", shapes[0])
	p, _ := newTestPipeline(st)

	done := make(chan Frame, 1)
	go func() { done <- p.Draw("c", BoundsForCells(80, 24), Overlay{}) }()
	select {
	case f := <-done:
		if f.Committed.Mask(40, 0) == 0 {
			t.Error("visible part of the line not drawn")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("drawing a far off-canvas line did not finish")
	}
}
