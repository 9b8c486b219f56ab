package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"vecsketch/internal/config"
	"vecsketch/internal/editor"
	"vecsketch/internal/geom"
	"vecsketch/internal/render"
	"vecsketch/internal/store"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	cfg    config.Config

	// Editor state; shared across Model copies
	ed     *editor.Editor
	pipe   *render.Pipeline
	theme  render.Theme
	canvas geom.CanvasID
	seq    int

	// Canvas list
	l list.Model

	// last rendered canvas size in cells
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// shapes table
	showAttrs bool
	tbl       table.Model

	// style for new shapes
	colorIdx    int
	fill        bool
	strokeWidth float64

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
}

func New(cfg config.Config) Model {
	st := store.New()
	theme := render.DefaultTheme()
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "vecsketch ready",
		cfg:         cfg,
		ed: editor.New(st,
			editor.WithHitThreshold(cfg.HitThreshold),
			editor.WithPolygonSides(cfg.PolygonSides)),
		pipe:        render.NewPipeline(st, theme, theme, render.BrailleRasterizer{}),
		theme:       theme,
		colorIdx:    -1,
		strokeWidth: 1,
	}
	m.newCanvas()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Canvases"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (LINESTRING, POLYGON), one geometry per line. Press Enter to import; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// shapes table setup
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(shapeColumns()))
	m.tbl.SetHeight(12)
	m.refreshCanvases()
	return m
}

// NewWithPath preloads a GeoJSON or WKT file into the first canvas at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// newCanvas creates the next canvas and makes it current.
func (m *Model) newCanvas() {
	m.seq++
	m.canvas = geom.CanvasID(fmt.Sprintf("canvas-%d", m.seq))
	if m.seq == 1 && m.cfg.Canvas != "" {
		m.canvas = geom.CanvasID(m.cfg.Canvas)
	}
	m.ed.Store().Ensure(m.canvas)
	m.ed.SetStyle(m.canvas, m.style())
}

// style is the style given to new shapes.
func (m Model) style() geom.Style {
	st := geom.Style{Fill: m.fill, StrokeWidth: m.strokeWidth}
	if m.colorIdx >= 0 {
		st.StrokeColor = palette[m.colorIdx]
	}
	return st
}
