package canvas

import (
	"sync"

	"github.com/matzehuels/canvasballoon/pkg/errors"
)

// Resolver resolves a surface identifier to a drawing context.
type Resolver interface {
	Resolve(id string) (Context, error)
}

// Registry maps surface identifiers to contexts. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]Context
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]Context)}
}

// Register makes ctx resolvable under id, replacing any earlier surface.
func (r *Registry) Register(id string, ctx Context) error {
	if err := errors.ValidateSurfaceID(id); err != nil {
		return err
	}
	if ctx == nil {
		return errors.New(errors.ErrCodeSurfaceUnavailable, "surface %q has no drawing context", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surfaces[id] = ctx
	return nil
}

// Unregister removes the surface registered under id, if any.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.surfaces, id)
}

// Resolve returns the context registered under id. Unknown identifiers fail
// with errors.ErrCodeSurfaceUnavailable.
func (r *Registry) Resolve(id string) (Context, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctx, ok := r.surfaces[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeSurfaceUnavailable, "no surface registered as %q", id)
	}
	return ctx, nil
}

// Single returns a registry holding only ctx under id.
func Single(id string, ctx Context) (*Registry, error) {
	r := NewRegistry()
	if err := r.Register(id, ctx); err != nil {
		return nil, err
	}
	return r, nil
}
