package network

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/levnet/pkg/friends"
)

// Hop describes one completed expansion step.
type Hop struct {
	Index    int // 0-based hop number
	Expanded int // frontier words whose neighbors were requested
	Added    int // words carried forward as the next frontier
	Total    int // network size after the hop
}

// Options configures an expansion. A nil *Options is valid and means
// sequential expansion without callbacks.
type Options struct {
	// Workers bounds the goroutines used to query the Source within one hop.
	// Values below 2 query sequentially. Results do not depend on Workers.
	Workers int

	// OnHop is called after each hop completes. It must not retain the
	// context or block for long; it runs on the expanding goroutine.
	OnHop func(Hop)
}

func (o *Options) workers() int {
	if o == nil {
		return 1
	}
	return o.Workers
}

func (o *Options) hop(h Hop) {
	if o != nil && o.OnHop != nil {
		o.OnHop(h)
	}
}

// Expand returns every word reachable from seed within degree friendship
// hops, with neighbors supplied by src.
//
// A degree below 1 yields an empty set without consulting src. A Source
// error aborts the expansion and is returned wrapped with the failing word;
// no partial network is returned.
func Expand(ctx context.Context, seed string, src Source, degree int, opts *Options) (friends.Set, error) {
	network, _, err := walk(ctx, seed, src, degree, opts)
	return network, err
}

// ExpandLevels runs the same expansion as [Expand] and also returns the
// frontier produced by each hop. levels[i] holds the words that were new at
// hop i+1; the union of all levels equals the network.
func ExpandLevels(ctx context.Context, seed string, src Source, degree int, opts *Options) (friends.Set, []friends.Set, error) {
	return walk(ctx, seed, src, degree, opts)
}

func walk(ctx context.Context, seed string, src Source, degree int, opts *Options) (friends.Set, []friends.Set, error) {
	network := friends.NewSet()
	if degree < 1 {
		return network, nil, nil
	}

	frontier := friends.NewSet(seed)
	levels := make([]friends.Set, 0, degree)

	for i := 0; i < degree; i++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		discovered, err := discover(frontier, src, opts.workers())
		if err != nil {
			return nil, nil, fmt.Errorf("hop %d: %w", i+1, err)
		}

		expanded := frontier.Len()
		frontier = discovered.Difference(network)
		network.Union(discovered)
		levels = append(levels, frontier)

		opts.hop(Hop{Index: i, Expanded: expanded, Added: frontier.Len(), Total: network.Len()})
	}
	return network, levels, nil
}

// discover unions the neighbors of every frontier word. With more than one
// worker the Source is queried concurrently; the union is built only after
// every query has returned.
func discover(frontier friends.Set, src Source, workers int) (friends.Set, error) {
	discovered := friends.NewSet()

	if workers < 2 || frontier.Len() < 2 {
		for _, w := range frontier.Sorted() {
			set, err := src.Neighbors(w)
			if err != nil {
				return nil, fmt.Errorf("neighbors of %q: %w", w, err)
			}
			discovered.Union(set)
		}
		return discovered, nil
	}

	words := frontier.Sorted()
	results := make([]friends.Set, len(words))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, w := range words {
		g.Go(func() error {
			set, err := src.Neighbors(w)
			if err != nil {
				return fmt.Errorf("neighbors of %q: %w", w, err)
			}
			results[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, set := range results {
		discovered.Union(set)
	}
	return discovered, nil
}
