package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"vecsketch/internal/geom"
)

func shapeColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "id", Width: 10},
		{Title: "kind", Width: 14},
		{Title: "anchors", Width: 30},
		{Title: "color", Width: 8},
		{Title: "fill", Width: 5},
		{Title: "width", Width: 5},
	}
}

// refreshShapesTable rebuilds the table rows from the current canvas
func (m *Model) refreshShapesTable() {
	shapes := m.ed.Geometries(m.canvas)
	rows := make([]table.Row, 0, len(shapes))
	for i, s := range shapes {
		rows = append(rows, shapeRow(i, s))
	}
	m.tbl.SetRows(rows)
}

func shapeRow(i int, s geom.Shape) table.Row {
	id := s.ID
	if len(id) > 10 {
		// ULIDs share their time prefix; the tail tells shapes apart
		id = id[len(id)-10:]
	}
	anchors := make([]string, 0, 3)
	for _, a := range s.Anchors() {
		anchors = append(anchors, fmt.Sprintf("%.0f,%.0f", a.X, a.Y))
	}
	color := s.StrokeColor
	if color == "" {
		color = "theme"
	}
	width := "theme"
	if s.StrokeWidth > 0 {
		width = fmt.Sprintf("%g", s.StrokeWidth)
	}
	return table.Row{
		fmt.Sprintf("%d", i+1),
		id,
		s.Kind.String(),
		strings.Join(anchors, " "),
		color,
		fmt.Sprintf("%v", s.Fill),
		width,
	}
}
