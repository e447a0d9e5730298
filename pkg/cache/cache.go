// Package cache stores rendered artifacts between runs.
//
// Rendering a scene is deterministic, so an artifact is fully identified by
// the scene ID and the output options. The CLI keeps artifacts in a
// [FileCache] under the user cache directory; tests and --no-cache runs use
// a [NullCache].
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().ArtifactKey(sceneID, cache.ArtifactKeyOpts{Format: "svg"})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long a rendered artifact stays valid.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte store keyed by string.
// A miss is reported as (nil, false, nil); errors are reserved for I/O failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Scale    float64 `json:"scale,omitempty"`
	IDPrefix string  `json:"id_prefix,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(sceneID string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256>" over the scene ID and options.
func (DefaultKeyer) ArtifactKey(sceneID string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneID, opts)
}
