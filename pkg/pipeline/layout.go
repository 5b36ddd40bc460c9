package pipeline

import (
	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/grid"
	"github.com/ballotviz/ballotviz/pkg/render/parliament"
	"github.com/ballotviz/ballotviz/pkg/render/treemap"
)

// ComputeLayout runs the layout stage for the configured visualization
// type. It is a pure function of the dataset and options.
func ComputeLayout(ds Dataset, opts Options) (Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return Layout{}, err
	}

	switch opts.VizType {
	case VizTypeParliament:
		return parliamentLayout(ds, opts)
	case VizTypeGridmap:
		return gridmapLayout(ds, opts)
	case VizTypeTreemap:
		return treemapLayout(ds, opts)
	case VizTypeBars:
		return barsLayout(ds, opts)
	default:
		return Layout{}, errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q", opts.VizType)
	}
}

func parliamentLayout(ds Dataset, opts Options) (Layout, error) {
	d, err := parliament.Build(ds.Records, parliament.Options{
		RowCount:    opts.RowCount,
		InnerRadius: opts.InnerRadius,
		OuterRadius: opts.OuterRadius,
		AreaDivisor: opts.AreaDivisor,
		ColorFor:    opts.ColorFor,
	})
	if err != nil {
		return Layout{}, err
	}
	return Layout{VizType: VizTypeParliament, Diagram: &d}, nil
}

func gridmapLayout(ds Dataset, opts Options) (Layout, error) {
	if err := grid.ValidateCells(ds.Cells); err != nil {
		return Layout{}, err
	}
	l, err := grid.ComputeLayout(ds.Cells, opts.Width, opts.Height, opts.Padding)
	if err != nil {
		return Layout{}, err
	}
	return Layout{VizType: VizTypeGridmap, Cells: ds.Cells, Grid: &l}, nil
}

func treemapLayout(ds Dataset, opts Options) (Layout, error) {
	items := treemapItems(ds, opts)
	blocks, err := treemap.Layout(items, opts.Width, opts.Height)
	if err != nil {
		return Layout{}, err
	}
	return Layout{VizType: VizTypeTreemap, Blocks: blocks}, nil
}

// treemapItems aggregates records into one item per party, colored from
// the configured palette.
func treemapItems(ds Dataset, opts Options) []treemap.Item {
	totals := make(map[string]int)
	var order []string
	names := make(map[string]string)
	for _, r := range ds.Records {
		if _, seen := totals[r.PartyID]; !seen {
			order = append(order, r.PartyID)
			names[r.PartyID] = r.PartyID
		}
		totals[r.PartyID] += r.VoteCount
	}

	items := make([]treemap.Item, 0, len(order))
	for _, partyID := range order {
		items = append(items, treemap.Item{
			Label:   names[partyID],
			PartyID: partyID,
			Color:   opts.ColorFor(partyID),
			Value:   float64(totals[partyID]),
		})
	}
	return items
}

func barsLayout(ds Dataset, opts Options) (Layout, error) {
	if len(ds.Records) == 0 {
		return Layout{}, errors.New(errors.ErrCodeEmptyDataset, "no records to chart")
	}
	ranked := rankRecords(ds.Records)
	return Layout{VizType: VizTypeBars, Ranked: ranked}, nil
}
