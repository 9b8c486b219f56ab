package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"vecsketch/internal/editor"
	"vecsketch/internal/geom"
)

var kindKeys = map[string]geom.Kind{
	"0": geom.KindNone,
	"l": geom.Line,
	"c": geom.Circle,
	"b": geom.Bezier,
	"t": geom.Triangle,
	"r": geom.RightTriangle,
	"x": geom.Rectangle,
	"g": geom.Polygon,
	"o": geom.Ellipse,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		m.mapW, m.mapH = lo.mapWidth, lo.mapHeight
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export error: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				if m.importWKT(w, "paste") {
					m.pasteMode = false
					m.ta.Blur()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showAttrs {
			switch msg.String() {
			case "up", "down", "k", "j", "pgup", "pgdown":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		lo := m.layout()
		// Update list size with accurate content height when sidebar visible
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, lo.contentHeight-2)
		}
		// mouse cell within canvas?
		cx, cy := msg.X, msg.Y
		inside := cx >= lo.mapOriginX && cx < lo.mapOriginX+lo.mapWidth && cy >= lo.mapOriginY && cy < lo.mapOriginY+lo.mapHeight
		if !inside {
			m.hovering = false
			break
		}
		if m.pasteMode || m.showAttrs {
			break
		}
		m.hovering = true
		m.hoverCellX = cx - lo.mapOriginX
		m.hoverCellY = cy - lo.mapOriginY
		if ev, ok := pointerEvent(msg, m.hoverCellX, m.hoverCellY); ok {
			handled, redraw, err := m.ed.OnPointerEvent(m.canvas, ev)
			switch {
			case err != nil:
				m.status = err.Error()
			case handled && redraw && ev.Action != editor.PointerMove:
				m.refreshCanvases()
				m.status = m.describePending()
			}
		}
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pointerEvent translates a terminal mouse event over canvas cell (cx, cy).
// Only the left button presses; wheel and other buttons are ignored.
func pointerEvent(msg tea.MouseMsg, cx, cy int) (editor.PointerEvent, bool) {
	ev := editor.PointerEvent{Pos: cellToCanvas(cx, cy)}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Action = editor.PointerPress
	case tea.MouseActionRelease:
		ev.Action = editor.PointerRelease
	case tea.MouseActionMotion:
		ev.Action = editor.PointerMove
	default:
		return ev, false
	}
	return ev, true
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if k, ok := kindKeys[key]; ok {
		if err := m.ed.SetShapeKind(m.canvas, k); err != nil {
			m.status = err.Error()
		} else {
			m.status = "shape: " + k.String()
		}
		return m, nil
	}
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.closeShapesTable() {
			return m, nil
		}
		if m.ed.Cancel(m.canvas) {
			m.status = "cancelled"
		}
	case "m":
		modes := editor.Modes()
		next := modes[(int(m.ed.Mode(m.canvas))+1)%len(modes)]
		m.ed.SetMode(m.canvas, next)
		m.status = "mode: " + next.String()
	case "e":
		next := editor.ModeEdit
		if m.ed.Mode(m.canvas) == editor.ModeEdit {
			next = editor.ModeNew
		}
		m.ed.SetMode(m.canvas, next)
		m.status = "mode: " + next.String()
	case "+", "=":
		m.setSides(m.ed.PolygonSides(m.canvas) + 1)
	case "-", "_":
		m.setSides(m.ed.PolygonSides(m.canvas) - 1)
	case "f":
		m.fill = !m.fill
		m.ed.SetStyle(m.canvas, m.style())
		m.status = fmt.Sprintf("fill: %v", m.fill)
	case "k":
		m.colorIdx++
		if m.colorIdx >= len(palette) {
			m.colorIdx = -1
		}
		m.ed.SetStyle(m.canvas, m.style())
		m.status = "color: " + m.colorName()
	case "]":
		if m.strokeWidth < 9 {
			m.strokeWidth++
		}
		m.ed.SetStyle(m.canvas, m.style())
		m.status = fmt.Sprintf("stroke width: %g", m.strokeWidth)
	case "[":
		if m.strokeWidth > 1 {
			m.strokeWidth--
		}
		m.ed.SetStyle(m.canvas, m.style())
		m.status = fmt.Sprintf("stroke width: %g", m.strokeWidth)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshCanvases()
			m.l.SetSize(sidebarWidth-2, m.height-1-2)
		}
		lo := m.layout()
		m.mapW, m.mapH = lo.mapWidth, lo.mapHeight
	case "N":
		m.newCanvas()
		m.refreshCanvases()
		m.status = "canvas: " + string(m.canvas)
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(canvasItem); ok {
				m.switchCanvas(it.id)
				m.ed.SetStyle(m.canvas, m.style())
			}
		}
	case "p":
		m.pasteMode = !m.pasteMode
		if m.pasteMode {
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		} else {
			m.status = "draw mode"
			m.ta.Blur()
		}
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshShapesTable()
		}
	case "w":
		m.exportWKT()
	case "s":
		return m, m.exportPNG()
	case "h":
		m.helpVisible = !m.helpVisible
	}
	// Pass keys to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// closeShapesTable hides the shapes table and reports whether it was open.
func (m *Model) closeShapesTable() bool {
	if !m.showAttrs {
		return false
	}
	m.showAttrs = false
	return true
}

func (m *Model) setSides(n int) {
	if err := m.ed.SetPolygonSides(m.canvas, n); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("polygon sides: %d", n)
}

func (m Model) colorName() string {
	if m.colorIdx < 0 {
		return "theme"
	}
	return palette[m.colorIdx]
}

// describePending summarizes the editor state after a press.
func (m Model) describePending() string {
	p := m.ed.Pending(m.canvas)
	switch p.Status {
	case editor.StatusInProgress:
		return fmt.Sprintf("%v: %d/%d anchors", p.Kind, placed(p), p.Kind.Anchors())
	case editor.StatusEdit:
		return fmt.Sprintf("editing %v #%d anchor %d", p.Kind, p.EditIndex+1, p.EditPoint)
	}
	return fmt.Sprintf("%d shapes", m.ed.Store().Len(m.canvas))
}

func placed(p editor.PendingCurve) int {
	n := 0
	for _, a := range []*geom.Point{p.From, p.To, p.Control} {
		if a != nil {
			n++
		}
	}
	return n
}
