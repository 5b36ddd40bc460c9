// Package grid maps integer lattice coordinates onto a pixel viewport.
//
// Cells are uniform squares: a single cell size is chosen so the
// occupied bounding box fits the viewport on both axes without
// distortion, and the box is centered inside the padded viewport.
// Larger gridY renders higher, matching a map's north-up convention.
//
// All computation is pure and deterministic for a given input.
package grid

import (
	"math"

	"github.com/ballotviz/ballotviz/pkg/errors"
)

// MaxLevel is the largest valid intensity level on a cell.
const MaxLevel = 5

// Cell is one spatial unit in a regular integer lattice. (X, Y) pairs
// are unique within a dataset. Level is an optional discrete intensity
// in [0, MaxLevel]; Properties carries open-ended display metadata.
type Cell struct {
	X          int            `json:"grid_x"`
	Y          int            `json:"grid_y"`
	Level      int            `json:"level,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`

	// Flow, when present, points at the grid cell this cell's
	// directional arrow targets.
	Flow *FlowTarget `json:"flow,omitempty"`
}

// FlowTarget is the grid coordinate a flow arrow points to.
type FlowTarget struct {
	X int `json:"grid_x"`
	Y int `json:"grid_y"`
}

// Layout is the computed cell-to-pixel mapping for one viewport.
type Layout struct {
	MinX, MaxX int
	MinY, MaxY int
	CellSize   float64
	OffsetX    float64
	OffsetY    float64
}

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ComputeLayout picks a uniform square cell size and centering offsets
// so every cell fits inside the viewport after padding.
//
//	cellSize = min(availW/rangeX, availH/rangeY)
//
// where rangeX = maxX−minX+1 and avail is the viewport minus padding on
// both sides. Fails with EMPTY_DATASET for zero cells and
// INVALID_VIEWPORT when the resulting cell size is non-finite or not
// positive.
func ComputeLayout(cells []Cell, viewportWidth, viewportHeight, padding float64) (Layout, error) {
	if len(cells) == 0 {
		return Layout{}, errors.New(errors.ErrCodeEmptyDataset, "no grid cells to lay out")
	}
	if err := errors.ValidateViewport(viewportWidth, viewportHeight); err != nil {
		return Layout{}, err
	}

	l := Layout{MinX: cells[0].X, MaxX: cells[0].X, MinY: cells[0].Y, MaxY: cells[0].Y}
	for _, c := range cells[1:] {
		l.MinX = min(l.MinX, c.X)
		l.MaxX = max(l.MaxX, c.X)
		l.MinY = min(l.MinY, c.Y)
		l.MaxY = max(l.MaxY, c.Y)
	}

	rangeX := float64(l.MaxX - l.MinX + 1)
	rangeY := float64(l.MaxY - l.MinY + 1)
	availW := viewportWidth - 2*padding
	availH := viewportHeight - 2*padding

	l.CellSize = math.Min(availW/rangeX, availH/rangeY)
	if math.IsNaN(l.CellSize) || math.IsInf(l.CellSize, 0) || l.CellSize <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidViewport,
			"viewport %gx%g with padding %g leaves no room for %gx%g cells",
			viewportWidth, viewportHeight, padding, rangeX, rangeY)
	}

	// Center the occupied bounding box inside the padded viewport.
	l.OffsetX = padding + (availW-rangeX*l.CellSize)/2
	l.OffsetY = padding + (availH-rangeY*l.CellSize)/2
	return l, nil
}

// CellToPixel returns the top-left pixel corner of a cell.
// The Y axis is inverted: larger gridY renders higher.
func CellToPixel(c Cell, l Layout) Point {
	return Point{
		X: l.OffsetX + float64(c.X-l.MinX)*l.CellSize,
		Y: l.OffsetY + float64(l.MaxY-c.Y)*l.CellSize,
	}
}

// CellCenter returns the center pixel position of a cell.
func CellCenter(c Cell, l Layout) Point {
	p := CellToPixel(c, l)
	return Point{X: p.X + l.CellSize/2, Y: p.Y + l.CellSize/2}
}

// ValidateCells checks that every (X, Y) pair is unique and every level
// is within [0, MaxLevel].
func ValidateCells(cells []Cell) error {
	type key struct{ x, y int }
	seen := make(map[key]struct{}, len(cells))
	for _, c := range cells {
		k := key{c.X, c.Y}
		if _, dup := seen[k]; dup {
			return errors.New(errors.ErrCodeDuplicateCell, "duplicate grid cell (%d, %d)", c.X, c.Y)
		}
		seen[k] = struct{}{}
		if c.Level < 0 || c.Level > MaxLevel {
			return errors.New(errors.ErrCodeInvalidInput,
				"cell (%d, %d): level %d outside [0, %d]", c.X, c.Y, c.Level, MaxLevel)
		}
	}
	return nil
}
