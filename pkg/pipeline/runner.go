package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dominauta/padring/pkg/cache"
	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/fanout"
	"github.com/dominauta/padring/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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

// Execute runs the complete load → fanout → render pipeline with caching.
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
	dev, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Device = dev
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PortCount = len(dev.Ports)

	// Compute device hash for cache keys and API responses
	if devData, err := circuit.MarshalDevice(dev); err == nil {
		result.DeviceHash = cache.Hash(devData)
	}

	r.Logger.Info("loaded device",
		"device", dev.Name,
		"ports", len(dev.Ports),
		"duration", result.Stats.LoadTime)

	// Stage 2: Fanout
	fanoutStart := time.Now()
	res, fanoutHit, err := r.ComputeFanoutWithCacheInfo(ctx, dev, opts)
	if err != nil {
		return nil, fmt.Errorf("fanout: %w", err)
	}
	result.Layout = res.Layout
	result.Ordered = res.Ordered
	result.Stats.FanoutTime = time.Since(fanoutStart)
	result.Stats.PadCount = res.Layout.PadCount()
	result.Stats.RouteCount = res.Layout.RouteCount()
	result.CacheInfo.FanoutHit = fanoutHit

	r.Logger.Info("computed fan-out",
		"pads", res.Layout.PadCount(),
		"routes", res.Layout.RouteCount(),
		"baseline", res.Layout.Baseline,
		"duration", result.Stats.FanoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, dev, res.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the device, reporting to the pipeline hooks.
func (r *Runner) Load(ctx context.Context, opts Options) (*circuit.Device, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	source := opts.DevicePath
	if source == "" {
		source = "inline"
	}
	observability.Pipeline().OnLoadStart(ctx, source)

	start := time.Now()
	dev, err := Load(opts)

	name := ""
	ports := 0
	if dev != nil {
		name = dev.Name
		ports = len(dev.Ports)
	}
	observability.Pipeline().OnLoadComplete(ctx, name, ports, time.Since(start), err)

	return dev, err
}

// ComputeFanoutWithCacheInfo computes the fan-out with caching and returns
// cache hit info.
func (r *Runner) ComputeFanoutWithCacheInfo(ctx context.Context, dev *circuit.Device, opts Options) (*fanout.Result, bool, error) {
	if err := opts.ValidateForFanout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnFanoutStart(ctx, dev.Name, len(dev.Ports))
	start := time.Now()

	// Compute cache key. A runtime source or router bypasses the cache
	// because its behavior is not captured by the key.
	cacheable := opts.Source == nil && opts.Router == nil
	var cacheKey string
	if cacheable {
		devData, err := circuit.MarshalDevice(dev)
		if err != nil {
			return nil, false, fmt.Errorf("serialize device for cache key: %w", err)
		}
		cacheKey = r.Keyer.LayoutKey(cache.Hash(devData), opts.LayoutKeyOpts())
	}

	// Try cache first (unless refresh requested)
	if cacheable && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := circuit.UnmarshalLayout(data)
			if err == nil {
				res := &fanout.Result{Layout: cached, Ordered: pairedNames(cached)}
				observability.Pipeline().OnFanoutComplete(ctx, dev.Name, cached.PadCount(), time.Since(start), nil)
				return res, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	// Compute
	res, err := ComputeFanout(dev, opts)
	observability.Pipeline().OnFanoutComplete(ctx, dev.Name, padCount(res), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if cacheable {
		if data, err := circuit.MarshalLayout(res.Layout); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		}
	}

	return res, false, nil // Cache miss
}

// ComputeFanout is a convenience wrapper that calls
// ComputeFanoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeFanout(ctx context.Context, dev *circuit.Device, opts Options) (*circuit.Layout, error) {
	res, _, err := r.ComputeFanoutWithCacheInfo(ctx, dev, opts)
	if err != nil {
		return nil, err
	}
	return res.Layout, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, dev *circuit.Device, l *circuit.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	// Compute cache key from layout data
	layoutData, err := circuit.MarshalLayout(l)
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
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := Render(dev, l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, dev *circuit.Device, l *circuit.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, dev, l, opts)
	return artifacts, err
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

func pairedNames(l *circuit.Layout) []string {
	names := make([]string, len(l.Pairs))
	for i, p := range l.Pairs {
		names[i] = p.Port
	}
	return names
}

func padCount(res *fanout.Result) int {
	if res == nil || res.Layout == nil {
		return 0
	}
	return res.Layout.PadCount()
}
