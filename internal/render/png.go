package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
)

// EncodePNG rasterizes paths with the gg software renderer at scale pixels
// per canvas unit and writes the image to w.
func EncodePNG(w io.Writer, b Bounds, paths []Path, scale float64, background string) error {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(float64(b.W)*scale), int(float64(b.H)*scale))
	defer dc.Close()
	dc.ClearWithColor(gg.Hex(background))

	for i, p := range paths {
		for _, c := range p.Commands {
			switch c.Op {
			case OpMoveTo:
				dc.MoveTo(c.P.X*scale, c.P.Y*scale)
			case OpLineTo:
				dc.LineTo(c.P.X*scale, c.P.Y*scale)
			case OpQuadTo:
				dc.QuadraticTo(c.C.X*scale, c.C.Y*scale, c.P.X*scale, c.P.Y*scale)
			case OpClose:
				dc.ClosePath()
			case OpCircle:
				dc.DrawCircle(c.P.X*scale, c.P.Y*scale, c.R*scale)
			case OpRect:
				dc.DrawRectangle(c.P.X*scale, c.P.Y*scale, c.W*scale, c.H*scale)
			}
		}
		dc.SetHexColor(p.Color)
		dc.SetLineWidth(p.Width * scale)
		var err error
		if p.Fill {
			err = dc.Fill()
		} else {
			err = dc.Stroke()
		}
		if err != nil {
			return fmt.Errorf("png path %d: %w", i, err)
		}
	}
	return dc.EncodePNG(w)
}
