package render

import "vecsketch/internal/geom"

// Style is the resolved stroke of a path.
type Style struct {
	Color string
	Width float64
}

// StyleResolver supplies defaults for shapes without an explicit style.
type StyleResolver interface {
	ResolveStyle(k geom.Kind) Style
}

// Theme is the built-in palette.
type Theme struct {
	Kinds      map[geom.Kind]Style
	Default    Style
	Border     Style
	Overlay    Style
	Marker     Style
	Background string
}

func DefaultTheme() Theme {
	return Theme{
		Kinds: map[geom.Kind]Style{
			geom.Line:          {Color: "#E6E6E6", Width: 1},
			geom.Bezier:        {Color: "#60A5FA", Width: 1},
			geom.Circle:        {Color: "#34D399", Width: 1},
			geom.Triangle:      {Color: "#FBBF24", Width: 1},
			geom.RightTriangle: {Color: "#F59E0B", Width: 1},
			geom.Rectangle:     {Color: "#F472B6", Width: 1},
			geom.Polygon:       {Color: "#A78BFA", Width: 1},
		},
		Default:    Style{Color: "#E6E6E6", Width: 1},
		Border:     Style{Color: "#243141", Width: 1},
		Overlay:    Style{Color: "#7C3AED", Width: 1},
		Marker:     Style{Color: "#FFA500", Width: 1},
		Background: "#0B0F14",
	}
}

func (t Theme) ResolveStyle(k geom.Kind) Style {
	if st, ok := t.Kinds[k]; ok {
		return st
	}
	return t.Default
}
