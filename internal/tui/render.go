package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vecsketch/internal/editor"
	"vecsketch/internal/geom"
	"vecsketch/internal/render"
)

const sidebarWidth = 28

type layout struct {
	contentWidth  int
	contentHeight int
	sidebarWidth  int
	mapWidth      int
	mapHeight     int
	mapOriginX    int
	mapOriginY    int
}

// layout computes the canvas placement; View and mouse handling share it.
func (m Model) layout() layout {
	lo := layout{}
	if m.showSidebar {
		lo.sidebarWidth = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	lo.contentHeight = m.height - headerHeight - footerHeight
	if lo.contentHeight < 4 {
		lo.contentHeight = 4
	}
	lo.contentWidth = max(10, m.width)
	lo.mapWidth = lo.contentWidth - lo.sidebarWidth - 1
	if lo.mapWidth < 10 {
		lo.mapWidth = 10
	}
	lo.mapHeight = lo.contentHeight
	lo.mapOriginX = lo.sidebarWidth
	if m.showSidebar {
		lo.mapOriginX++
	}
	lo.mapOriginY = headerHeight
	return lo
}

// cellToCanvas maps a canvas cell to canvas units: the top-left dot of the cell.
func cellToCanvas(cx, cy int) geom.Point {
	return geom.Pt(float64(cx*2), float64(cy*4))
}

// hoverCell maps a canvas point to the cell holding it, reporting false
// when the point lies outside a w×h cell grid.
func hoverCell(pt geom.Point, w, h int) (int, int, bool) {
	if !pt.Finite() {
		return 0, 0, false
	}
	fx, fy := math.Floor(pt.X/2), math.Floor(pt.Y/4)
	if fx < 0 || fy < 0 || fx >= float64(w) || fy >= float64(h) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

func previewOverlay(pv editor.Preview) render.Overlay {
	return render.Overlay{Shapes: pv.Shapes, Markers: pv.Markers}
}

// renderCanvas draws the committed layer with the pending overlay on top.
func (m Model) renderCanvas(w, h int) string {
	b := render.BoundsForCells(w, h)
	frame := m.pipe.Draw(m.canvas, b, previewOverlay(m.ed.Preview(m.canvas)))

	// Hover highlight: the anchor an Edit-mode press would pick
	hx, hy := -1, -1
	if pt, ok := m.ed.HoverHit(m.canvas); ok {
		if cx, cy, in := hoverCell(pt, w, h); in {
			hx, hy = cx, cy
		}
	}

	styles := map[string]lipgloss.Style{}
	paint := func(color, s string) string {
		if color == "" {
			return s
		}
		st, ok := styles[color]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = st
		}
		return st.Render(s)
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		var run []rune
		runColor := ""
		flush := func() {
			if len(run) > 0 {
				sb.WriteString(paint(runColor, string(run)))
				run = run[:0]
			}
		}
		for x := 0; x < w; x++ {
			if x == hx && y == hy {
				flush()
				sb.WriteString(lipgloss.NewStyle().Foreground(hoverFg).Render("◯"))
				continue
			}
			r, color := frame.Committed.Rune(x, y), frame.Committed.Color(x, y)
			if frame.Overlay.Mask(x, y) != 0 {
				r, color = frame.Overlay.Rune(x, y), frame.Overlay.Color(x, y)
			}
			if r == ' ' {
				color = ""
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run = append(run, r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
