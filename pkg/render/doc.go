// Package render provides visualization renderers for electoral data.
//
// # Overview
//
// Each subpackage renders one visualization type to SVG:
//
//   - [parliament]: Semicircular seat diagrams with party blocks
//   - [gridmap]: Geographic grid maps with choropleth fills and flow arrows
//   - [treemap]: Squarified vote-share treemaps
//   - [bars]: Ranked horizontal bar charts
//
// # Parliament Diagrams
//
// The [parliament] subpackage is the centerpiece. Seats are placed on
// concentric arcs, partitioned into contiguous party blocks, and bound
// to candidates by vote rank:
//
//	diagram, err := parliament.Build(records, allocations, parliament.Options{})
//	svg, err := sink.RenderSVG(diagram, sink.WithLegend())
//
// Key parliament subpackages:
//   - [parliament/layout]: Arc geometry, seat positions, party assignment
//   - [parliament/sink]: Output formats (SVG, JSON)
//   - [parliament/styles]: Visual styles (simple)
//
// # Grid Maps
//
// The [gridmap] subpackage renders square-cell district maps. Cell fills
// come from a six-step purple scale indexed by level:
//
//	svg, err := gridmap.RenderSVG(cells, 800, 600, gridmap.WithArrows())
//
// [parliament]: github.com/ballotviz/ballotviz/pkg/render/parliament
// [parliament/layout]: github.com/ballotviz/ballotviz/pkg/render/parliament/layout
// [parliament/sink]: github.com/ballotviz/ballotviz/pkg/render/parliament/sink
// [parliament/styles]: github.com/ballotviz/ballotviz/pkg/render/parliament/styles
// [gridmap]: github.com/ballotviz/ballotviz/pkg/render/gridmap
// [treemap]: github.com/ballotviz/ballotviz/pkg/render/treemap
// [bars]: github.com/ballotviz/ballotviz/pkg/render/bars
package render
