package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/levnet/pkg/cache"
	"github.com/matzehuels/levnet/pkg/friends"
	"github.com/matzehuels/levnet/pkg/network"
	"github.com/matzehuels/levnet/pkg/observability"
	"github.com/matzehuels/levnet/pkg/render"
	"github.com/matzehuels/levnet/pkg/wordlist"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default lifetime of every cache entry when positive.
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

// Execute runs the complete load → expand → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Seed:      opts.Seed,
		Degree:    opts.Degree,
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Load
	loadStart := time.Now()
	words, err := r.LoadWords(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	opts.Words = words
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.WordCount = len(words)

	logger.Info("loaded words",
		"count", len(words),
		"duration", result.Stats.LoadTime)

	// Stage 2: Expand
	expandStart := time.Now()
	ex, err := r.ExpandWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	result.Levels = ex.Levels
	result.Network = ex.Network
	result.Stats.ExpandTime = time.Since(expandStart)
	result.Stats.EdgeCount = ex.Edges
	result.Stats.NetworkSize = ex.Network.Len()
	result.CacheInfo = ex.CacheInfo

	logger.Info("expanded network",
		"seed", opts.Seed,
		"degree", opts.Degree,
		"size", result.Stats.NetworkSize,
		"cached", ex.CacheInfo.NetworkHit,
		"duration", result.Stats.ExpandTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := RenderAll(ctx, result.RenderNetwork(), opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWords returns opts.Words if set, otherwise the list at opts.Wordlist.
func (r *Runner) LoadWords(ctx context.Context, opts Options) ([]string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Words != nil {
		return opts.Words, nil
	}

	opts.Logger.Debug("loading word list", "path", opts.Wordlist)
	words, err := wordlist.Load(opts.Wordlist)
	if err != nil {
		return nil, err
	}
	return words, nil
}

// AdjacencyWithCacheInfo returns the full friend map for the word list,
// reading it from cache when possible, and whether it was a cache hit.
func (r *Runner) AdjacencyWithCacheInfo(ctx context.Context, opts Options) (friends.Adjacency, bool, error) {
	r.applyLogger(&opts)
	words, err := r.LoadWords(ctx, opts)
	if err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.AdjacencyKey(wordlist.Fingerprint(words))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			adj, err := friends.UnmarshalAdjacency(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "adjacency")
				return adj, true, nil // Cache hit
			}
			opts.Logger.Warn("discarding unreadable adjacency cache entry", "error", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "adjacency")

	// Build
	start := time.Now()
	observability.Pipeline().OnIndexStart(ctx, len(words))
	adj, err := friends.BuildAllParallel(ctx, words, opts.Workers)
	observability.Pipeline().OnIndexComplete(ctx, len(words), adj.Edges(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	opts.Logger.Info("built adjacency map",
		"words", len(adj),
		"edges", adj.Edges(),
		"duration", time.Since(start))

	// Cache the result
	if data, err := friends.MarshalAdjacency(adj); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLAdjacency)); err != nil {
			opts.Logger.Warn("could not cache adjacency map", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "adjacency", len(data))
		}
	}

	return adj, false, nil // Cache miss
}

// Adjacency is a convenience wrapper that calls AdjacencyWithCacheInfo and discards the cache hit info.
func (r *Runner) Adjacency(ctx context.Context, opts Options) (friends.Adjacency, error) {
	adj, _, err := r.AdjacencyWithCacheInfo(ctx, opts)
	return adj, err
}

// Expansion is the outcome of the expand stage.
type Expansion struct {
	Network   friends.Set
	Levels    []friends.Set
	Edges     int
	CacheInfo CacheInfo
}

// ExpandWithCacheInfo expands the network of opts.Seed. A cached network is
// returned as is; otherwise the friends come from the adjacency map or, with
// opts.Direct, from on-the-fly computation. A seed missing from a cached
// adjacency map fails with CACHE_MISMATCH.
func (r *Runner) ExpandWithCacheInfo(ctx context.Context, opts Options) (*Expansion, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForExpand(); err != nil {
		return nil, err
	}

	words, err := r.LoadWords(ctx, opts)
	if err != nil {
		return nil, err
	}
	opts.Words = words

	cacheKey := r.Keyer.NetworkKey(wordlist.Fingerprint(words), opts.Seed, opts.NetworkKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if levels, err := unmarshalLevels(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "network")
				return &Expansion{
					Network:   union(levels),
					Levels:    levels,
					CacheInfo: CacheInfo{NetworkHit: true},
				}, nil
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "network")

	ex := &Expansion{}
	var src network.Source
	if opts.Direct || opts.Degree < 1 {
		src = network.ComputedSource{Words: words}
	} else {
		adj, hit, err := r.AdjacencyWithCacheInfo(ctx, opts)
		if err != nil {
			return nil, err
		}
		ex.Edges = adj.Edges()
		ex.CacheInfo.AdjacencyHit = hit
		src = network.CachedSource{Adjacency: adj}
	}

	start := time.Now()
	observability.Pipeline().OnExpandStart(ctx, opts.Seed, opts.Degree)
	net, levels, err := network.ExpandLevels(ctx, opts.Seed, src, opts.Degree, &network.Options{
		Workers: opts.Workers,
		OnHop: func(h network.Hop) {
			opts.Logger.Info(hopMessage(opts.Seed, h.Index), "added", h.Added, "total", h.Total)
			observability.Pipeline().OnHop(ctx, opts.Seed, h.Index+1, h.Added, h.Total)
		},
	})
	observability.Pipeline().OnExpandComplete(ctx, opts.Seed, opts.Degree, net.Len(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	ex.Network = net
	ex.Levels = levels

	if data, err := marshalLevels(levels); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLNetwork)); err == nil {
			observability.Cache().OnCacheSet(ctx, "network", len(data))
		}
	}
	return ex, nil
}

// Expand is a convenience wrapper that calls ExpandWithCacheInfo and returns only the network.
func (r *Runner) Expand(ctx context.Context, opts Options) (friends.Set, error) {
	ex, err := r.ExpandWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	return ex.Network, nil
}

// Friends returns the friends of word within the configured word list.
func (r *Runner) Friends(ctx context.Context, word string, opts Options) (friends.Set, error) {
	opts.Seed = word
	if err := opts.ValidateForExpand(); err != nil {
		return nil, err
	}
	words, err := r.LoadWords(ctx, opts)
	if err != nil {
		return nil, err
	}
	return friends.Of(word, words), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// hopMessage mirrors the classic progress line:
// "Found friends of friends of 'word'" for hop index 1.
func hopMessage(seed string, index int) string {
	return "Found friends " + strings.Repeat("of friends ", index) + "of '" + seed + "'"
}

func marshalLevels(levels []friends.Set) ([]byte, error) {
	out := make([][]string, len(levels))
	for i, l := range levels {
		out[i] = l.Sorted()
	}
	return json.Marshal(out)
}

func unmarshalLevels(data []byte) ([]friends.Set, error) {
	var in [][]string
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	levels := make([]friends.Set, len(in))
	for i, l := range in {
		levels[i] = friends.NewSet(l...)
	}
	return levels, nil
}

func union(levels []friends.Set) friends.Set {
	return render.Network{Levels: levels}.Words()
}
