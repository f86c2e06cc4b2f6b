// Package pkg holds the libraries behind levnet, a tool for finding the
// Levenshtein social network of a word.
//
// Two words are friends when their edit distance is exactly 1. The network
// of a word at degree N is everything reachable from it in N friendship hops
// within a fixed word list.
//
// # Data Flow
//
//	word list file
//	     ↓
//	wordlist   load and fingerprint
//	     ↓
//	friends    adjacency map (every word's friends)
//	     ↓
//	network    bounded breadth-first expansion
//	     ↓
//	render     text, JSON, DOT, SVG, PNG
//
// pipeline ties these together behind a cache so that the adjacency map
// of a list is built once and reused by every later query. editdist holds
// the distance function itself.
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Wordlist: "randomlist.txt",
//	    Seed:     "word",
//	    Degree:   2,
//	    Formats:  []string{"json"},
//	})
//
// # Supporting Packages
//
//   - config: TOML configuration
//   - errors: error codes shared by the CLI and the HTTP API
//   - observability: hooks for metrics and tracing
//   - buildinfo: version stamping
package pkg
