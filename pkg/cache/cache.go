// Package cache stores expensive intermediate results for levnet.
//
// The dominant cost of a network query is building the adjacency map of the
// word list, which is quadratic in the list size. The pipeline stores that
// map (and, more cheaply, finished networks) in a [Cache] keyed by the word
// list's fingerprint, so repeated queries against the same list skip it.
//
// # Backends
//
//   - [FileCache]: JSON files under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [BadgerCache]: an embedded BadgerDB, on disk or in memory
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// [Open] selects a backend by name from [Options].
//
// # Keys
//
// A [Keyer] turns domain inputs into cache keys. [DefaultKeyer] hashes the
// inputs; [ScopedKeyer] adds a prefix so several deployments can share one
// backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero or less stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes for cached values.
const (
	// TTLAdjacency is long: a mapping is only valid for one exact word list and
	// its key already encodes that list.
	TTLAdjacency = 30 * 24 * time.Hour

	// TTLNetwork covers finished expansions.
	TTLNetwork = 7 * 24 * time.Hour
)

// NullCache is a no-op cache that never stores anything.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

// Get always misses.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (NullCache) Delete(context.Context, string) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
