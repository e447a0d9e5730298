package cache

// ScopedKeyer prefixes every key of an inner Keyer. The CLI scopes keys by
// build version so a new binary never serves artifacts drawn by an old one.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, falling back to DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey returns the prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(sceneID string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sceneID, opts)
}
