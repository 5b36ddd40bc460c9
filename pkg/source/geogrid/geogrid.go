// Package geogrid loads grid-cell datasets from GeoJSON feature
// collections.
//
// Each feature carries its lattice position and intensity in
// properties: grid_x, grid_y, level, and optionally flow_x / flow_y for
// a directional flow target. Geometry is ignored; the grid layout is
// computed from the lattice coordinates alone.
package geogrid

import (
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/grid"
)

// Load parses a GeoJSON FeatureCollection into grid cells, preserving
// feature order. Features missing grid_x or grid_y fail with
// INVALID_FORMAT; a flow target requires both flow_x and flow_y.
func Load(data []byte) ([]grid.Cell, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse GeoJSON")
	}

	cells := make([]grid.Cell, 0, len(fc.Features))
	for i, f := range fc.Features {
		x, okX := asInt(f.Properties["grid_x"])
		y, okY := asInt(f.Properties["grid_y"])
		if !okX || !okY {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"feature %d: missing or non-integer grid_x/grid_y", i)
		}

		c := grid.Cell{X: x, Y: y}
		if lvl, ok := asInt(f.Properties["level"]); ok {
			c.Level = lvl
		}

		fx, okFX := asInt(f.Properties["flow_x"])
		fy, okFY := asInt(f.Properties["flow_y"])
		if okFX != okFY {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"feature %d: flow target needs both flow_x and flow_y", i)
		}
		if okFX {
			c.Flow = &grid.FlowTarget{X: fx, Y: fy}
		}

		props := make(map[string]any)
		for k, v := range f.Properties {
			switch k {
			case "grid_x", "grid_y", "level", "flow_x", "flow_y":
			default:
				props[k] = v
			}
		}
		if len(props) > 0 {
			c.Properties = props
		}

		cells = append(cells, c)
	}
	return cells, nil
}

// LoadFile loads grid cells from a GeoJSON file on disk.
func LoadFile(path string) ([]grid.Cell, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Load(data)
}

// asInt converts the numeric types GeoJSON property decoding produces.
// Floats must be whole numbers.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
