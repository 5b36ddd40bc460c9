// Package cache provides pluggable byte caches and content-hash cache
// keys for the render pipeline.
//
// Three backends are available: FileCache for CLI usage, RedisCache for
// the server deployment, and NullCache for tests or disabled caching.
// Keys are derived from dataset content hashes so a changed input file
// never serves stale layouts.
package cache

import (
	"context"
	"time"
)

// Cache is the backend interface shared by all implementations.
type Cache interface {
	// Get retrieves a value. The second return value reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLs per pipeline stage. Datasets on disk can change under us, so
// parsed records expire fastest; layouts and rendered artifacts are
// keyed by content hash and can live longer.
const (
	TTLDataset  = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// DatasetKeyOpts are the inputs that affect dataset parsing.
type DatasetKeyOpts struct {
	Kind string // "tabular" or "geogrid"
}

// LayoutKeyOpts are the inputs that affect layout computation.
type LayoutKeyOpts struct {
	VizType     string
	Width       float64
	Height      float64
	Padding     float64
	RowCount    int
	InnerRadius float64
	OuterRadius float64
	AreaDivisor float64
}

// ArtifactKeyOpts are the inputs that affect artifact rendering.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Legend bool
	Arrows bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DatasetKey keys parsed records by dataset content hash.
	DatasetKey(contentHash string, opts DatasetKeyOpts) string

	// LayoutKey keys computed layouts by dataset hash and layout options.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys rendered artifacts by layout hash and render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hash-based keys with stage prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for parsed dataset records.
func (k *DefaultKeyer) DatasetKey(contentHash string, opts DatasetKeyOpts) string {
	return hashKey("dataset", contentHash, opts)
}

// LayoutKey generates a key for layout computation.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for rendered artifacts.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
