package geom

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ParseGeoJSON reads a GeoJSON geometry, Feature or FeatureCollection into
// shapes, mapped the same way as WKT: a 2-point LineString is a Line, a
// longer one an open Polygon, and the outer ring of a Polygon a closed
// Polygon. Multi* geometries and GeometryCollections contribute one shape
// per member. Points carry no shape and are skipped; properties are ignored.
func ParseGeoJSON(data []byte) ([]Shape, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var out []Shape
	parsePoint := func(v any) (Point, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			x, xok := a[0].(float64)
			y, yok := a[1].(float64)
			if xok && yok {
				return Point{X: x, Y: y}, true
			}
		}
		return Point{}, false
	}
	parseLine := func(v any) []Point {
		arr, _ := v.([]any)
		var pts []Point
		for _, el := range arr {
			if p, ok := parsePoint(el); ok {
				pts = append(pts, p)
			}
		}
		return pts
	}
	addLine := func(v any) error {
		sh, err := shapeFromLine(parseLine(v))
		if err != nil {
			return err
		}
		out = append(out, sh)
		return nil
	}
	addPolygon := func(v any) error {
		rings, _ := v.([]any)
		if len(rings) == 0 {
			return errors.New("polygon: no rings")
		}
		// holes are ignored
		sh, err := shapeFromRing(parseLine(rings[0]))
		if err != nil {
			return err
		}
		out = append(out, sh)
		return nil
	}
	each := func(v any, add func(any) error) error {
		arr, _ := v.([]any)
		for _, el := range arr {
			if err := add(el); err != nil {
				return err
			}
		}
		return nil
	}
	var walkGeom func(g map[string]any) error
	walkGeom = func(g map[string]any) error {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point", "MultiPoint":
			return nil
		case "LineString":
			return addLine(g["coordinates"])
		case "MultiLineString":
			return each(g["coordinates"], addLine)
		case "Polygon":
			return addPolygon(g["coordinates"])
		case "MultiPolygon":
			return each(g["coordinates"], addPolygon)
		case "GeometryCollection":
			return each(g["geometries"], func(v any) error {
				if m, ok := v.(map[string]any); ok {
					return walkGeom(m)
				}
				return nil
			})
		}
		return fmt.Errorf("%q: %w", gt, ErrUnsupportedGeoJSON)
	}
	walkFeature := func(f any) error {
		fm, _ := f.(map[string]any)
		if g, ok := fm["geometry"].(map[string]any); ok {
			return walkGeom(g)
		}
		// a Feature may have a null geometry
		return nil
	}

	var err error
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		err = walkFeature(raw)
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for i, f := range fs {
			if err = walkFeature(f); err != nil {
				err = fmt.Errorf("feature %d: %w", i, err)
				break
			}
		}
	default:
		err = walkGeom(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	if len(out) == 0 {
		return nil, errors.New("geojson: no shapes found")
	}
	return out, nil
}

var ErrUnsupportedGeoJSON = errors.New("unsupported geojson type")
