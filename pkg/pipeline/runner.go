package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvasballoon/pkg/cache"
	"github.com/matzehuels/canvasballoon/pkg/errors"
	"github.com/matzehuels/canvasballoon/pkg/observability"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

// Runner renders scenes with caching.
//
// A Runner holds no per-run state, so one instance may serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means DefaultKeyer, and a nil logger means log.Default().
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
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute validates s and renders it in every requested format, reading
// from and writing to the cache. The context is checked between formats.
func (r *Runner) Execute(ctx context.Context, s *scene.Scene, opts Options) (result *Result, err error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	id, err := s.ID()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "identify scene")
	}
	sceneID := id.String()
	start := time.Now()
	hooks := observability.TeePipeline(observability.Pipeline(), opts.Hooks)
	hooks.OnRenderStart(ctx, sceneID, opts.Formats)
	defer func() {
		hooks.OnRenderComplete(ctx, sceneID, opts.Formats, time.Since(start), err)
	}()

	result = &Result{
		SceneID:   sceneID,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheHit:  true,
	}
	result.Stats.Balloons = len(s.Balloons)

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := r.renderFormat(ctx, s, sceneID, format, opts, hooks)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
		result.Stats.Bytes += len(data)
		result.CacheHit = result.CacheHit && hit
	}
	result.Stats.RenderTime = time.Since(start)

	opts.Logger.Info("rendered scene",
		"id", sceneID,
		"balloons", result.Stats.Balloons,
		"formats", opts.Formats,
		"cached", result.CacheHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) renderFormat(ctx context.Context, s *scene.Scene, sceneID, format string, opts Options, hooks observability.PipelineHooks) ([]byte, bool, error) {
	hooks.OnFormatStart(ctx, format)
	key := r.Keyer.ArtifactKey(sceneID, opts.ArtifactKeyOpts(format))
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err == nil && hit {
			cacheHooks.OnCacheHit(ctx, format)
			opts.Logger.Debug("cache hit", "format", format, "bytes", len(data))
			return data, true, nil
		}
		cacheHooks.OnCacheMiss(ctx, format)
	}

	start := time.Now()
	data, err := Render(s, format, opts)
	if err != nil {
		return nil, false, err
	}
	elapsed := time.Since(start)
	hooks.OnFormatRendered(ctx, format, len(data), elapsed)
	opts.Logger.Debug("rendered format", "format", format, "bytes", len(data), "duration", elapsed)

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "err", err)
	} else {
		cacheHooks.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
