// Package network expands a word into its friend network.
//
// A word's network of degree d holds every word reachable through at most d
// friendship hops: its friends, their friends, and so on. [Expand] walks the
// implicit friendship graph breadth-first, one hop at a time:
//
//	network  = {}
//	frontier = {seed}
//	repeat degree times:
//	    discovered = union of Neighbors(f) for f in frontier
//	    frontier   = discovered - network
//	    network    = network + discovered
//
// Only newly discovered words are expanded on the next hop, so symmetric
// friendships never cause a word to be expanded twice. The seed is not treated
// specially: it is part of the result exactly when some hop rediscovers it,
// which for a seed with any friends happens from degree 2 onward.
//
// # Sources
//
// Neighbors come from a [Source]. [ComputedSource] derives them from a word
// list with package friends and never fails. [CachedSource] looks them up in a
// precomputed [friends.Adjacency] and fails with [ErrCacheMismatch] when a
// frontier word has no entry, which means the mapping was built from a
// different word list. Both sources yield identical networks when the mapping
// was built from the same list.
//
// # Cancellation
//
// The only suspension point is the boundary between hops: Expand checks its
// context before each hop and returns ctx.Err() when it is done.
package network
