package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cladegram/pkg/cache"
	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/timetree"
	"github.com/matzehuels/cladegram/pkg/treeio"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete parse → transform → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)
	r.Logger.Debug("executing pipeline", "opts", opts.describe())

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	t, parseHit, err := r.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Stats.ParseTime = time.Since(parseStart)
	result.CacheInfo.ParseHit = parseHit

	r.Logger.Info("parsed tree",
		"leaves", t.LeafCount(),
		"nodes", t.NodeCount(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Transform
	t = r.Transform(t, opts)
	result.Tree = t
	result.TreeHash = cache.Hash(newick.Marshal(t))
	result.Stats.LeafCount = t.LeafCount()
	result.Stats.NodeCount = t.NodeCount()
	result.Stats.Height = t.Height()

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, t, opts)
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

// ParseWithCacheInfo parses Newick text with caching and returns cache hit info.
func (r *Runner) ParseWithCacheInfo(ctx context.Context, opts Options) (*timetree.Tree, bool, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := cache.Key("tree", opts.Newick)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			t, err := treeio.ReadJSON(bytes.NewReader(data))
			if err == nil {
				return t, true, nil // Cache hit
			}
			// A corrupt entry falls through to reparse.
		}
	}

	t, err := newick.Parse(opts.Newick)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := treeio.WriteJSON(t, &buf); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLTree)
	}

	return t, false, nil // Cache miss
}

// Parse is a convenience wrapper that discards the cache hit info.
func (r *Runner) Parse(ctx context.Context, opts Options) (*timetree.Tree, error) {
	t, _, err := r.ParseWithCacheInfo(ctx, opts)
	return t, err
}

// Transform applies the requested ladderization. The input tree is not
// modified; a sorted copy is returned when sorting is requested.
func (r *Runner) Transform(t *timetree.Tree, opts Options) *timetree.Tree {
	switch opts.Ladderize {
	case LadderizeAscending:
		return t.Sorted(false)
	case LadderizeDescending:
		return t.Sorted(true)
	default:
		return t
	}
}

// RenderWithCacheInfo renders all requested formats with caching and returns
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, t *timetree.Tree, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	treeHash := cache.Hash(newick.Marshal(t))

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		if opts.Refresh {
			allCached = false
			break
		}
		cacheKey := cache.Key("artifact", append([]any{treeHash}, opts.renderKeyParts(format)...)...)
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	rendered, err := renderFormats(t, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := cache.Key("artifact", append([]any{treeHash}, opts.renderKeyParts(format)...)...)
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, t *timetree.Tree, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, t, opts)
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
