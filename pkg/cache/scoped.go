package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple deployments can
// share one Redis instance without key collisions.
//
// Example usage:
//
//	// Per-election namespaces on a shared backend
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "2024-legislative:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DatasetKey generates a prefixed key for parsed dataset records.
func (k *ScopedKeyer) DatasetKey(contentHash string, opts DatasetKeyOpts) string {
	return k.prefix + k.inner.DatasetKey(contentHash, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(datasetHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
