package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lo := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" vecsketch ─ terminal vector canvas ")
	header = lipgloss.NewStyle().Width(lo.contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarWidth).Render(m.l.View())
	}

	var mapView string
	if m.showAttrs {
		// infer a reasonable width from columns
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.mapHeight-2, 20))
		title := titleStyle.Render(fmt.Sprintf("%s · %d shapes", m.canvas, len(m.tbl.Rows())))
		attrsBox := boxStyle.Width(maxW).Render(lipgloss.JoinVertical(lipgloss.Left, title, m.tbl.View()))
		mapView = lipgloss.Place(lo.mapWidth, lo.mapHeight, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		var canvas string
		if m.pasteMode {
			m.ta.SetWidth(lo.mapWidth)
			m.ta.SetHeight(min(lo.mapHeight, 12))
			canvas = m.ta.View()
		} else {
			canvas = m.renderCanvas(lo.mapWidth, lo.mapHeight)
		}
		mapView = lipgloss.NewStyle().Width(lo.mapWidth).Height(lo.mapHeight).Render(canvas)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: state line, then status and help
	state := dimStyle.Render(" " + m.stateLine())
	st := dimStyle.Render(" " + m.status + " ")
	if strings.Contains(m.status, "error") || strings.Contains(m.status, "not implemented") {
		st = errStyle.Render(" " + m.status + " ")
	}
	coords := ""
	if m.hovering {
		p := cellToCanvas(m.hoverCellX, m.hoverCellY)
		coords = dimStyle.Render(fmt.Sprintf("  x=%.0f y=%.0f  ", p.X, p.Y))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, st, m.renderHelp())
	spacerW := max(0, lo.contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, state, lipgloss.JoinHorizontal(lipgloss.Bottom, left, right)))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentWidth).Height(m.height).Render(ui)
}

// stateLine shows the canvas, mode, shape kind and style for new shapes.
func (m Model) stateLine() string {
	kind := "-"
	if k := m.ed.ShapeKind(m.canvas); k.Implemented() {
		kind = k.String()
	}
	return fmt.Sprintf("%s │ mode %s │ shape %s │ sides %d │ color %s fill %v width %g",
		m.canvas, m.ed.Mode(m.canvas), kind, m.ed.PolygonSides(m.canvas),
		m.colorName(), m.fill, m.strokeWidth)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"l/c/b/t/r/x/g shape",
		"0 none",
		"e edit",
		"m mode",
		"+/- sides",
		"k color",
		"f fill",
		"[/] width",
		"Esc cancel",
		"N new",
		"Tab canvases",
		"p paste",
		"w wkt",
		"s png",
		"a shapes",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
