// Package treemap lays out vote shares as a squarified treemap.
//
// The layout follows the Squarified Treemap algorithm of Bruls, Huizing,
// and Van Wijk (http://www.win.tue.nl/~vanwijk/stm.pdf): items are
// placed in rows along the shorter side of the remaining free
// rectangle, and a row is closed as soon as adding the next item would
// worsen the worst aspect ratio in the row. The tree here is flat, one
// block per item.
package treemap

import (
	"math"
	"sort"

	"github.com/ballotviz/ballotviz/pkg/errors"
)

// Item is one treemap entry. Value drives the block area; Label and
// Color drive rendering.
type Item struct {
	Label   string  `json:"label"`
	PartyID string  `json:"party_id,omitempty"`
	Color   string  `json:"color,omitempty"`
	Value   float64 `json:"value"`
}

// Block is a laid-out item. (X, Y) is the top-left corner.
type Block struct {
	Item
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type rect struct {
	x, y, w, h float64
}

type area struct {
	item Item
	size float64
}

// Layout tiles the items inside a width x height container with block
// areas proportional to item values. Items are sorted by value
// descending before tiling; zero-value items produce no block. Fails
// with EMPTY_DATASET when no item has a positive value and with
// INVALID_INPUT on negative or non-finite values.
func Layout(items []Item, width, height float64) ([]Block, error) {
	if err := errors.ValidateViewport(width, height); err != nil {
		return nil, err
	}

	var total float64
	for _, it := range items {
		if it.Value < 0 || math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"item %q: value %g is not a usable size", it.Label, it.Value)
		}
		total += it.Value
	}
	if total <= 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "no items with positive value")
	}

	scale := width * height / total
	areas := make([]area, 0, len(items))
	for _, it := range items {
		if it.Value > 0 {
			areas = append(areas, area{item: it, size: it.Value * scale})
		}
	}
	sort.SliceStable(areas, func(i, j int) bool { return areas[i].size > areas[j].size })

	free := rect{w: width, h: height}
	blocks := make([]Block, 0, len(areas))
	var row []area

	for _, a := range areas {
		if len(row) == 0 {
			row = append(row, a)
			continue
		}
		side := math.Min(free.w, free.h)
		if worst(append(row[:len(row):len(row)], a), side) <= worst(row, side) {
			row = append(row, a)
			continue
		}
		blocks = layoutRow(&free, row, blocks)
		row = []area{a}
	}
	blocks = layoutRow(&free, row, blocks)
	return blocks, nil
}

// worst is the worst (largest) aspect ratio any block in the row would
// get if the row were laid out along a side of the given length.
func worst(row []area, side float64) float64 {
	var sum, minA, maxA float64
	for i, a := range row {
		sum += a.size
		if i == 0 || a.size < minA {
			minA = a.size
		}
		if a.size > maxA {
			maxA = a.size
		}
	}
	s2 := sum * sum
	w2 := side * side
	return math.Max(w2*maxA/s2, s2/(w2*minA))
}

// layoutRow emits the row's blocks along the shorter side of the free
// rectangle and shrinks the rectangle by the row's thickness.
func layoutRow(free *rect, row []area, blocks []Block) []Block {
	if len(row) == 0 {
		return blocks
	}
	var sum float64
	for _, a := range row {
		sum += a.size
	}

	if free.w >= free.h {
		// Column against the left edge, spanning the full height.
		colW := sum / free.h
		y := free.y
		for _, a := range row {
			h := a.size / colW
			blocks = append(blocks, Block{Item: a.item, X: free.x, Y: y, W: colW, H: h})
			y += h
		}
		free.x += colW
		free.w -= colW
		return blocks
	}

	rowH := sum / free.w
	x := free.x
	for _, a := range row {
		w := a.size / rowH
		blocks = append(blocks, Block{Item: a.item, X: x, Y: free.y, W: w, H: rowH})
		x += w
	}
	free.y += rowH
	free.h -= rowH
	return blocks
}
