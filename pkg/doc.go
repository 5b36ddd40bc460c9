// Package pkg provides the core libraries for ballotviz electoral visualization.
//
// # Overview
//
// Ballotviz transforms electoral result files into visual charts: parliament
// seat diagrams, geographic grid maps, vote-share treemaps, and ranked bar
// charts. The pkg directory is organized into five main areas:
//
//  1. [source] - Dataset loading (CSV results, GeoJSON grids)
//  2. [election] - Domain logic (party codes, allocations, rankings)
//  3. [render] - Visualization renderers (parliament, gridmap, treemap, bars)
//  4. [pipeline] - Orchestration (load → layout → render)
//  5. [cache] - Content-addressed caching (file, Redis, null backends)
//
// # Architecture
//
// The typical data flow through ballotviz:
//
//	CSV / GeoJSON dataset
//	         ↓
//	    [source] package (parse records or grid cells)
//	         ↓
//	    [election] / [grid] packages (allocations, grid geometry)
//	         ↓
//	    [render] packages (layout + SVG/JSON output)
//
// # Quick Start
//
// Render a parliament diagram from tabular results:
//
//	import (
//	    "github.com/ballotviz/ballotviz/pkg/election"
//	    "github.com/ballotviz/ballotviz/pkg/render/parliament"
//	    "github.com/ballotviz/ballotviz/pkg/render/parliament/sink"
//	    "github.com/ballotviz/ballotviz/pkg/source/tabular"
//	)
//
//	// 1. Load the results file
//	records, _ := tabular.LoadFile("2024-legislative.csv")
//
//	// 2. Derive per-party seat allocations
//	allocations := election.AllocationsFromRecords(records, nil)
//
//	// 3. Compute the seat layout
//	diagram, _ := parliament.Build(records, allocations, parliament.Options{})
//
//	// 4. Render to SVG
//	svg, _ := sink.RenderSVG(diagram)
//
// # Main Packages
//
// ## Domain Logic
//
// [election] - Party code normalization, seat records, per-party
// allocations, and vote rankings.
//
// [grid] - Square-grid geometry for geographic grid maps: cell
// validation, uniform cell sizing, and flow targets.
//
// [classify] - Jenks natural-breaks classification and quantiles for
// choropleth color scales.
//
// ## Dataset Loading
//
// [source/tabular] - CSV election result files with Chinese column
// headers, BOM handling, and thousands separators.
//
// [source/geogrid] - GeoJSON feature collections carrying grid_x/grid_y
// cell positions and optional flow targets.
//
// ## Visualization
//
// [render/parliament] - Semicircular seat diagrams. The rendering
// pipeline: layout (arcs, seat positions) → assignment (party blocks,
// candidate binding) → sink (SVG, JSON).
//
// [render/gridmap] - Geographic grid maps with level-based choropleth
// fills and optional flow arrows.
//
// [render/treemap] - Squarified vote-share treemaps.
//
// [render/bars] - Ranked horizontal bar charts.
//
// ## Infrastructure
//
// [pipeline] - Complete visualization pipeline (load → layout → render)
// used by the CLI and the HTTP server. Ensures consistent behavior
// across entry points.
//
// [cache] - Content-addressed caching with file, Redis, and null
// backends. Dataset, layout, and artifact entries are keyed by content
// hashes so any input change invalidates downstream entries.
//
// [server] - HTTP API exposing the pipeline (GET /v1/render).
//
// [config] - TOML configuration for viewports, arc geometry, and party
// colors.
//
// [errors] - Coded errors shared by all packages, mapped onto HTTP
// statuses by the server.
//
// [observability] - Pipeline, cache, and server hook interfaces for
// metrics collection.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/render/...       # Specific package
//
// [source]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/source
// [election]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/election
// [grid]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/grid
// [classify]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/classify
// [source/tabular]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/source/tabular
// [source/geogrid]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/source/geogrid
// [render]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/render
// [render/parliament]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/render/parliament
// [render/gridmap]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/render/gridmap
// [render/treemap]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/render/treemap
// [render/bars]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/render/bars
// [pipeline]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/cache
// [server]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/server
// [config]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/config
// [errors]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/errors
// [observability]: https://pkg.go.dev/github.com/ballotviz/ballotviz/pkg/observability
package pkg
