package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/kundali/pkg/cache"
	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
	"github.com/matzehuels/kundali/pkg/observability"
	"github.com/matzehuels/kundali/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner holds no per-run state; multiple goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default layout and artifact lifetimes when positive.
	TTL time.Duration
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

// Execute runs assemble → render with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	assembleStart := time.Now()
	layout, hit, err := r.AssembleWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = layout
	result.Stats.Planets = layout.PlanetCount()
	result.Stats.AssembleTime = time.Since(assembleStart)
	result.CacheInfo.LayoutHit = hit

	r.Logger.Info("assembled chart",
		"mode", layout.Mode,
		"reference", layout.Reference,
		"planets", result.Stats.Planets,
		"cached", hit,
		"duration", result.Stats.AssembleTime)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// AssembleWithCacheInfo resolves the layout for opts.Request in opts.Mode and
// reports whether it came from the cache.
func (r *Runner) AssembleWithCacheInfo(ctx context.Context, opts Options) (chart.Layout, bool, error) {
	if err := opts.ValidateForAssemble(); err != nil {
		return chart.Layout{}, false, err
	}
	req := opts.Request

	ascendant, err := req.AscendantSign()
	if err != nil {
		return chart.Layout{}, false, err
	}
	reference, err := chart.ResolveReference(opts.Mode, ascendant, req.Placements)
	if err != nil {
		return chart.Layout{}, false, err
	}
	key := r.Keyer.LayoutKey(chart.Fingerprint(reference, req.Placements), string(opts.Mode))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var cached chart.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
		} else if err != nil {
			opts.Logger.Warn("layout cache read failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	hooks.OnAssembleStart(ctx, string(opts.Mode), len(req.Placements))
	start := time.Now()
	layout, err := chart.AssembleMode(opts.Mode, ascendant, req.Placements)
	hooks.OnAssembleComplete(ctx, string(opts.Mode), time.Since(start), err)
	if err != nil {
		return chart.Layout{}, false, err
	}

	if data, err := json.Marshal(layout); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.LayoutTTL)); err != nil {
			opts.Logger.Warn("layout cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return layout, false, nil
}

// Assemble is AssembleWithCacheInfo without the cache hit info.
func (r *Runner) Assemble(ctx context.Context, opts Options) (chart.Layout, error) {
	l, _, err := r.AssembleWithCacheInfo(ctx, opts)
	return l, err
}

// RenderWithCacheInfo renders every requested format, reusing cached
// artifacts where possible. The bool is true when every format was cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout chart.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutKey := layout.ID + ":" + string(layout.Mode)
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string

	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(layoutKey, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	ropts := opts.RenderOptions()

	for _, format := range missing {
		data, err := render.Render(ctx, layout, format, ropts)
		if err != nil {
			hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
			if errors.GetCode(err) != "" {
				return nil, false, err
			}
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data

		key := r.Keyer.ArtifactKey(layoutKey, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.ArtifactTTL)); err != nil {
			opts.Logger.Warn("artifact cache write failed", "format", format, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	hooks.OnRenderComplete(ctx, missing, time.Since(start), nil)

	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, layout chart.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// AssembleModes assembles the request once per chart mode, concurrently.
//
// A mode whose reference is missing (no Moon or Sun among the placements, or
// no ascendant) is left out of the result. Any other failure cancels the
// remaining work and is returned.
func (r *Runner) AssembleModes(ctx context.Context, req chart.Request) (map[chart.Mode]chart.Layout, error) {
	layouts := make([]*chart.Layout, len(chart.Modes))

	g, gctx := errgroup.WithContext(ctx)
	for i, mode := range chart.Modes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := r.Assemble(gctx, Options{Request: req, Mode: mode, Logger: r.Logger})
			if errors.Is(err, errors.ErrCodeMissingReference) {
				r.Logger.Debug("skipping chart mode", "mode", mode, "reason", errors.UserMessage(err))
				return nil
			}
			if err != nil {
				return err
			}
			layouts[i] = &l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[chart.Mode]chart.Layout, len(layouts))
	for i, l := range layouts {
		if l != nil {
			out[chart.Modes[i]] = *l
		}
	}
	return out, nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
