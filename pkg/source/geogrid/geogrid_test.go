package geogrid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/grid"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [121.5, 25.0]},
      "properties": {"grid_x": 0, "grid_y": 0, "level": 2, "name": "西區"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [121.6, 25.0]},
      "properties": {"grid_x": 1, "grid_y": 0, "level": 5, "flow_x": 0, "flow_y": 0}
    }
  ]
}`

func TestLoad(t *testing.T) {
	cells, err := Load([]byte(sampleGeoJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}

	first := cells[0]
	if first.X != 0 || first.Y != 0 || first.Level != 2 {
		t.Errorf("cell 0 = %+v, want (0,0) level 2", first)
	}
	if first.Flow != nil {
		t.Error("cell 0 should carry no flow target")
	}
	if name, _ := first.Properties["name"].(string); name != "西區" {
		t.Errorf("cell 0 name = %q, want 西區", name)
	}

	second := cells[1]
	if second.Flow == nil {
		t.Fatal("cell 1 should carry a flow target")
	}
	if *second.Flow != (grid.FlowTarget{X: 0, Y: 0}) {
		t.Errorf("cell 1 flow = %+v, want (0,0)", *second.Flow)
	}
	if second.Properties != nil {
		t.Errorf("layout keys should not leak into properties: %+v", second.Properties)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not geojson", `{"type": "nope"`},
		{"missing grid_y", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"grid_x":1}}]}`},
		{"fractional grid_x", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"grid_x":1.5,"grid_y":0}}]}`},
		{"half flow target", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"grid_x":0,"grid_y":0,"flow_x":1}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cells.geojson")
	if err := os.WriteFile(path, []byte(sampleGeoJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cells, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cells) != 2 {
		t.Errorf("got %d cells, want 2", len(cells))
	}

	_, err = LoadFile(filepath.Join(dir, "missing.geojson"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
