package pipeline

import (
	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/render/bars"
	"github.com/ballotviz/ballotviz/pkg/render/gridmap"
	"github.com/ballotviz/ballotviz/pkg/render/parliament/sink"
	"github.com/ballotviz/ballotviz/pkg/render/treemap"
)

// rankRecords sorts records by vote count descending, stable on input
// order for ties.
func rankRecords(records []election.SeatRecord) []election.SeatRecord {
	return election.RankByVotes(records)
}

// Render produces every requested format from a computed layout.
// Artifacts are keyed by format.
func Render(layout Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(layout, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(layout Layout, format string, opts Options) ([]byte, error) {
	if format == FormatJSON {
		return sink.RenderJSON(layout)
	}

	switch layout.VizType {
	case VizTypeParliament:
		if layout.Diagram == nil {
			return nil, errors.New(errors.ErrCodeInternal, "parliament layout missing diagram")
		}
		var sinkOpts []sink.SVGOption
		if opts.Legend {
			sinkOpts = append(sinkOpts, sink.WithLegend())
		}
		return sink.RenderSVG(*layout.Diagram, sinkOpts...), nil

	case VizTypeGridmap:
		gmOpts := []gridmap.Option{gridmap.WithPadding(opts.Padding)}
		if opts.Arrows {
			gmOpts = append(gmOpts, gridmap.WithArrows())
		}
		return gridmap.RenderSVG(layout.Cells, opts.Width, opts.Height, gmOpts...)

	case VizTypeTreemap:
		items := make([]treemap.Item, 0, len(layout.Blocks))
		for _, b := range layout.Blocks {
			items = append(items, b.Item)
		}
		return treemap.RenderSVG(items, opts.Width, opts.Height,
			treemap.WithLabels(), treemap.WithColorFor(opts.ColorFor))

	case VizTypeBars:
		return bars.RenderSVG(layout.Ranked,
			bars.WithWidth(opts.Width), bars.WithColorFor(opts.ColorFor))

	default:
		return nil, errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q", layout.VizType)
	}
}
