package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"vecsketch/internal/geom"
	"vecsketch/internal/render"
)

type canvasItem struct {
	title, desc string
	id          geom.CanvasID
}

func (c canvasItem) Title() string       { return c.title }
func (c canvasItem) Description() string { return c.desc }
func (c canvasItem) FilterValue() string { return c.title }

func (m *Model) refreshCanvases() {
	st := m.ed.Store()
	var items []list.Item
	sel := 0
	for i, id := range st.Canvases() {
		title := string(id)
		if id == m.canvas {
			title = "● " + title
			sel = i
		}
		items = append(items, canvasItem{
			title: title,
			desc:  fmt.Sprintf("%d shapes", st.Len(id)),
			id:    id,
		})
	}
	m.l.SetItems(items)
	m.l.Select(sel)
}

// switchCanvas makes id current. Pending work on the previous canvas stays
// with that canvas.
func (m *Model) switchCanvas(id geom.CanvasID) {
	m.canvas = id
	m.refreshCanvases()
	if m.showAttrs {
		m.refreshShapesTable()
	}
	m.status = "canvas: " + string(id)
}

// loadPath imports the shapes of a GeoJSON or WKT file into the current
// canvas, chosen by extension.
func (m *Model) loadPath(p string) {
	data, err := os.ReadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".geojson", ".json":
		shapes, err := geom.ParseGeoJSON(data)
		if err != nil {
			m.status = "geojson error: " + err.Error()
			return
		}
		m.importShapes(shapes, filepath.Base(p))
	default:
		m.importWKT(string(data), filepath.Base(p))
	}
}

func (m *Model) importWKT(wkt, source string) bool {
	shapes, err := geom.ParseWKT(wkt)
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return false
	}
	m.importShapes(shapes, source)
	return true
}

func (m *Model) importShapes(shapes []geom.Shape, source string) {
	m.ed.Import(m.canvas, shapes)
	m.refreshCanvases()
	if m.showAttrs {
		m.refreshShapesTable()
	}
	m.status = fmt.Sprintf("imported %d shapes from %s", len(shapes), source)
	logrus.WithFields(logrus.Fields{"canvas_id": m.canvas, "source": source, "shapes": len(shapes)}).Info("shapes imported")
}

// exportWKT writes the committed shapes of the current canvas as WKT.
func (m *Model) exportWKT() {
	shapes := m.ed.Geometries(m.canvas)
	if len(shapes) == 0 {
		m.status = "nothing to export"
		return
	}
	p := filepath.Join(m.cfg.ExportDir, string(m.canvas)+".wkt")
	if err := os.WriteFile(p, []byte(geom.MarshalWKT(shapes)+"\n"), 0o644); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	logrus.WithFields(logrus.Fields{"canvas_id": m.canvas, "path": p, "shapes": len(shapes)}).Info("WKT exported")
	m.status = "exported " + p
}

type exportDoneMsg struct {
	path string
	err  error
}

// exportPNG snapshots the committed paths now and encodes them off the
// event loop.
func (m *Model) exportPNG() tea.Cmd {
	b := render.BoundsForCells(max(8, m.mapW), max(4, m.mapH))
	paths := m.pipe.CommittedPaths(m.canvas, b)
	p := filepath.Join(m.cfg.ExportDir, string(m.canvas)+".png")
	scale, bg := m.cfg.ExportScale, m.theme.Background
	canvas := m.canvas
	m.status = "exporting " + p
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := render.EncodePNG(&buf, b, paths, scale, bg); err != nil {
			return exportDoneMsg{path: p, err: err}
		}
		if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
			return exportDoneMsg{path: p, err: err}
		}
		logrus.WithFields(logrus.Fields{"canvas_id": canvas, "path": p}).Info("PNG exported")
		return exportDoneMsg{path: p}
	}
}
