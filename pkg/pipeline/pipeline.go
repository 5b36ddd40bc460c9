// Package pipeline provides the core visualization pipeline for ballotviz.
//
// This package implements the complete load → layout → render pipeline
// shared by the CLI and the HTTP server. Centralizing it keeps behavior
// consistent across entry points and avoids duplicated caching logic.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read a dataset file (candidate CSV or grid GeoJSON)
//  2. Layout: Compute seat positions, treemap blocks, or grid geometry
//  3. Render: Generate output in various formats (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Dir:     "datasets",
//	    Dataset: "2024-legislative",
//	    VizType: "parliament",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ballotviz/ballotviz/pkg/cache"
	"github.com/ballotviz/ballotviz/pkg/election"
	"github.com/ballotviz/ballotviz/pkg/errors"
	"github.com/ballotviz/ballotviz/pkg/grid"
	"github.com/ballotviz/ballotviz/pkg/render/parliament"
	"github.com/ballotviz/ballotviz/pkg/render/treemap"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 600.0

	// DefaultPadding is the default viewport padding in pixels.
	DefaultPadding = 40.0
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeParliament

// DefaultStyle is the default visual style.
const DefaultStyle = StyleSimple

// Visualization type constants.
const (
	VizTypeParliament = "parliament"
	VizTypeGridmap    = "gridmap"
	VizTypeTreemap    = "treemap"
	VizTypeBars       = "bars"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// StyleSimple is the plain SVG style.
const StyleSimple = "simple"

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeParliament: true,
	VizTypeGridmap:    true,
	VizTypeTreemap:    true,
	VizTypeBars:       true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Dir     string `json:"dir,omitempty"`     // Dataset directory
	Dataset string `json:"dataset"`           // Dataset name (file stem)
	Refresh bool   `json:"refresh,omitempty"` // Bypass the load cache

	// Layout options
	VizType     string  `json:"viz_type,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Padding     float64 `json:"padding,omitempty"`
	RowCount    int     `json:"row_count,omitempty"`
	InnerRadius float64 `json:"inner_radius,omitempty"`
	OuterRadius float64 `json:"outer_radius,omitempty"`
	AreaDivisor float64 `json:"area_divisor,omitempty"`

	// Render options
	Formats []string          `json:"formats,omitempty"`
	Style   string            `json:"style,omitempty"`
	Legend  bool              `json:"legend,omitempty"`
	Arrows  bool              `json:"arrows,omitempty"`
	Colors  map[string]string `json:"colors,omitempty"` // party code -> hex color

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Dataset holds the loaded input records for one pipeline run. Exactly
// one of Records or Cells is populated, depending on Kind.
type Dataset struct {
	Kind    string                `json:"kind"` // "tabular" or "geogrid"
	Records []election.SeatRecord `json:"records,omitempty"`
	Cells   []grid.Cell           `json:"cells,omitempty"`
}

// Count returns the number of input records or cells.
func (d Dataset) Count() int {
	if d.Kind == DatasetGeogrid {
		return len(d.Cells)
	}
	return len(d.Records)
}

// Dataset kinds.
const (
	DatasetTabular = "tabular"
	DatasetGeogrid = "geogrid"
)

// Layout is the computed stage-two output for any visualization type.
// Only the fields for the active VizType are populated.
type Layout struct {
	VizType string                `json:"viz_type"`
	Diagram *parliament.Diagram   `json:"diagram,omitempty"` // parliament
	Cells   []grid.Cell           `json:"cells,omitempty"`   // gridmap
	Grid    *grid.Layout          `json:"grid,omitempty"`    // gridmap
	Blocks  []treemap.Block       `json:"blocks,omitempty"`  // treemap
	Ranked  []election.SeatRecord `json:"ranked,omitempty"`  // bars
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded input.
	Dataset Dataset

	// DatasetHash is the content hash of the raw dataset file.
	DatasetHash string

	// Layout contains the computed geometry.
	Layout Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether loaded records came from cache
	LayoutHit bool // Whether layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be: simple)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: parliament, gridmap, treemap, bars)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for dataset loading.
func (o *Options) ValidateForLoad() error {
	if err := errors.ValidateDatasetName(o.Dataset); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.RowCount == 0 {
		o.RowCount = parliament.DefaultRowCount
	}
	if o.InnerRadius == 0 {
		o.InnerRadius = parliament.DefaultInnerRadius
	}
	if o.OuterRadius == 0 {
		o.OuterRadius = parliament.DefaultOuterRadius
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	return errors.ValidateViewport(o.Width, o.Height)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// DatasetKind returns the dataset kind implied by the visualization type.
func (o *Options) DatasetKind() string {
	if o.VizType == VizTypeGridmap {
		return DatasetGeogrid
	}
	return DatasetTabular
}

// ColorFor resolves a party code through the configured color map.
func (o *Options) ColorFor(partyID string) string {
	return o.Colors[partyID]
}

// DatasetKeyOpts returns cache key options for dataset loading.
func (o *Options) DatasetKeyOpts() cache.DatasetKeyOpts {
	return cache.DatasetKeyOpts{Kind: o.DatasetKind()}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		VizType:     o.VizType,
		Width:       o.Width,
		Height:      o.Height,
		Padding:     o.Padding,
		RowCount:    o.RowCount,
		InnerRadius: o.InnerRadius,
		OuterRadius: o.OuterRadius,
		AreaDivisor: o.AreaDivisor,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Legend: o.Legend,
		Arrows: o.Arrows,
	}
}
