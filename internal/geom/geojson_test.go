package geom

import (
	"errors"
	"testing"
)

func TestParseGeoJSON_FeatureCollection(t *testing.T) {
	in := `{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "properties": {"name": "origin"},
	     "geometry": {"type": "Point", "coordinates": [1, 2]}},
	    {"type": "Feature", "properties": {},
	     "geometry": {"type": "LineString", "coordinates": [[0, 0], [10, 5]]}},
	    {"type": "Feature", "properties": null,
	     "geometry": {"type": "LineString", "coordinates": [[0, 0], [10, 0], [10, 10]]}},
	    {"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [
	      [[0, 0], [4, 0], [4, 4], [0, 4], [0, 0]],
	      [[1, 1], [2, 1], [2, 2], [1, 1]]
	    ]}},
	    {"type": "Feature", "geometry": null}
	  ]
	}`
	shapes, err := ParseGeoJSON([]byte(in))
	if err != nil {
		t.Fatalf("ParseGeoJSON() failed: %v", err)
	}
	if len(shapes) != 3 {
		t.Fatalf("got %d shapes, want 3", len(shapes))
	}
	if shapes[0].Kind != Line || shapes[0].From != Pt(0, 0) || shapes[0].To != Pt(10, 5) {
		t.Errorf("line = %+v", shapes[0])
	}
	if shapes[1].Kind != Polygon || shapes[1].Closed || len(shapes[1].Points) != 3 {
		t.Errorf("open polyline = %+v", shapes[1])
	}
	poly := shapes[2]
	if poly.Kind != Polygon || !poly.Closed || len(poly.Points) != 4 || poly.From != Pt(2, 2) {
		t.Errorf("polygon = %+v", poly)
	}
}

func TestParseGeoJSON_MultiAndCollections(t *testing.T) {
	in := `{"type": "GeometryCollection", "geometries": [
	  {"type": "MultiLineString", "coordinates": [[[0, 0], [1, 1]], [[2, 2], [3, 3]]]},
	  {"type": "MultiPolygon", "coordinates": [
	    [[[0, 0], [2, 0], [2, 2], [0, 0]]],
	    [[[5, 5], [7, 5], [7, 7], [5, 5]]]
	  ]}
	]}`
	shapes, err := ParseGeoJSON([]byte(in))
	if err != nil {
		t.Fatalf("ParseGeoJSON() failed: %v", err)
	}
	kinds := []Kind{Line, Line, Polygon, Polygon}
	if len(shapes) != len(kinds) {
		t.Fatalf("got %d shapes, want %d", len(shapes), len(kinds))
	}
	for i, k := range kinds {
		if shapes[i].Kind != k {
			t.Errorf("shape %d kind = %v, want %v", i, shapes[i].Kind, k)
		}
	}
}

func TestParseGeoJSON_BareGeometry(t *testing.T) {
	shapes, err := ParseGeoJSON([]byte(`{"type": "LineString", "coordinates": [[3, 4], [5, 6]]}`))
	if err != nil {
		t.Fatalf("ParseGeoJSON() failed: %v", err)
	}
	if len(shapes) != 1 || shapes[0].To != Pt(5, 6) {
		t.Errorf("shapes = %+v", shapes)
	}
}

func TestParseGeoJSON_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":  `{"type": `,
		"points only":   `{"type": "Point", "coordinates": [1, 2]}`,
		"short line":    `{"type": "LineString", "coordinates": [[1, 2]]}`,
		"short polygon": `{"type": "Polygon", "coordinates": [[[0, 0], [1, 1], [0, 0]]]}`,
		"empty polygon": `{"type": "Polygon", "coordinates": []}`,
		"unknown type":  `{"type": "Circle", "coordinates": [0, 0]}`,
		"huge exponent": `{"type": "LineString", "coordinates": [[0, 0], [1e400, 0]]}`,
	}
	for name, in := range tests {
		if _, err := ParseGeoJSON([]byte(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	_, err := ParseGeoJSON([]byte(`{"type": "Circle"}`))
	if !errors.Is(err, ErrUnsupportedGeoJSON) {
		t.Errorf("got %v, want ErrUnsupportedGeoJSON", err)
	}
}
