// Package pipeline provides the word-network pipeline shared by the CLI and
// the HTTP API.
//
// This package wires the pure core (editdist, friends, network) to word list
// loading, caching, logging, and rendering. By centralizing this logic, the
// CLI and the server behave identically.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the word list (or take a preloaded one)
//  2. Expand: Build or fetch the adjacency map, then walk the network
//  3. Render: Encode the network in the requested formats
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Wordlist: "randomlist.txt",
//	    Seed:     "word",
//	    Degree:   3,
//	    Formats:  []string{"text"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Artifacts["text"]))
//
// # Caching
//
// Two things are cached, both keyed by the word list fingerprint: the full
// adjacency map and each expanded network. An adjacency map read from cache
// feeds a [network.CachedSource]; with Direct set friends are computed on the
// fly instead and the adjacency map is never built.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/levnet/pkg/cache"
	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/friends"
	"github.com/matzehuels/levnet/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWordlist is the word list read when none is given.
	DefaultWordlist = "randomlist.txt"

	// DefaultDegree is the number of friendship hops to expand.
	DefaultDegree = 1

	// DefaultFormat is used when no output format is requested.
	DefaultFormat = render.FormatText
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	Wordlist string   `json:"wordlist,omitempty"`
	Words    []string `json:"-"` // Preloaded list; takes precedence over Wordlist

	// Expand options
	Seed    string `json:"seed"`
	Degree  int    `json:"degree"`
	Workers int    `json:"workers,omitempty"`
	Direct  bool   `json:"direct,omitempty"`  // Compute friends per hop instead of building the adjacency map
	Refresh bool   `json:"refresh,omitempty"` // Ignore cached entries and overwrite them

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // Hop numbers in diagram labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and API responses.
	RunID string

	Seed   string
	Degree int

	// Network is every word within Degree hops of Seed.
	Network friends.Set

	// Levels holds the words first discovered at each hop.
	Levels []friends.Set

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// RenderNetwork returns the result as a [render.Network].
func (r *Result) RenderNetwork() render.Network {
	return render.Network{Seed: r.Seed, Levels: r.Levels}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount   int
	EdgeCount   int // Directed friend entries in the adjacency map; 0 when unused
	NetworkSize int
	LoadTime    time.Duration
	ExpandTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	AdjacencyHit bool // Whether the adjacency map came from cache
	NetworkHit   bool // Whether the expanded network came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForExpand(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a word source is configured.
func (o *Options) ValidateForLoad() error {
	if o.Words == nil && o.Wordlist == "" {
		o.Wordlist = DefaultWordlist
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must be >= 0, got %d", o.Workers)
	}
	o.setLogger()
	return nil
}

// ValidateForExpand checks the seed word. A degree below 1 is valid and
// yields an empty network.
func (o *Options) ValidateForExpand() error {
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	return errors.ValidateWord(o.Seed)
}

// ValidateForRender checks the requested formats, defaulting to text.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{string(DefaultFormat)}
	}
	for _, f := range o.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	o.setLogger()
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// NetworkKeyOpts returns cache key options for an expanded network.
func (o *Options) NetworkKeyOpts() cache.NetworkKeyOpts {
	return cache.NetworkKeyOpts{Degree: o.Degree, Direct: o.Direct}
}
