package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ballotviz/ballotviz/pkg/cache"
	"github.com/ballotviz/ballotviz/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Dataset, opts.DatasetKind())
	ds, datasetHash, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.Dataset, opts.DatasetKind(), ds.Count(), result.Stats.LoadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = ds
	result.DatasetHash = datasetHash
	result.Stats.RecordCount = ds.Count()
	result.CacheInfo.LoadHit = loadHit

	r.Logger.Info("loaded dataset",
		"dataset", opts.Dataset,
		"kind", ds.Kind,
		"records", ds.Count(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.VizType, ds.Count())
	layout, layoutHit, err := r.LayoutWithCacheInfo(ctx, ds, datasetHash, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, opts.VizType, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"viz", opts.VizType,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo loads the dataset with caching and returns the
// content hash and cache hit info. The raw file is always read to
// compute the content hash; the cache saves only the parse step.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (Dataset, string, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return Dataset{}, "", false, err
	}
	r.applyLogger(&opts)

	ds, raw, err := Load(opts)
	if err != nil {
		return Dataset{}, "", false, err
	}
	datasetHash := cache.Hash(raw)

	cacheKey := r.Keyer.DatasetKey(datasetHash, opts.DatasetKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached Dataset
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "dataset")
				return cached, datasetHash, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "dataset")
	}

	if data, err := json.Marshal(ds); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDataset)
		observability.Cache().OnCacheSet(ctx, "dataset", len(data))
	}
	return ds, datasetHash, false, nil
}

// LayoutWithCacheInfo computes the layout with caching and returns
// cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, ds Dataset, datasetHash string, opts Options) (Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return Layout{}, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(datasetHash, opts.LayoutKeyOpts())

	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached Layout
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil
		}
		// Corrupt cache entry: fall through and recompute.
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	layout, err := ComputeLayout(ds, opts)
	if err != nil {
		return Layout{}, false, err
	}

	if data, err := json.Marshal(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}
	return layout, false, nil
}

// RenderWithCacheInfo renders artifacts with caching and returns cache
// hit info. The hit flag is true only when every requested format came
// from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := json.Marshal(layout)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	// Render all formats
	rendered, err := Render(layout, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
