package friends

import (
	"context"
	"maps"
	"runtime"
	"slices"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/levnet/pkg/editdist"
)

// Adjacency maps each word to its friends, all drawn from one word list.
type Adjacency map[string]Set

// Of returns the words in candidates that are exactly one edit away from word.
//
// Candidates whose length differs from word by more than one character are
// discarded before the distance is computed. word itself is never returned,
// and duplicates in candidates collapse into a single entry.
func Of(word string, candidates []string) Set {
	n := utf8.RuneCountInString(word)
	out := make(Set)
	for _, c := range candidates {
		if !lengthCompatible(n, utf8.RuneCountInString(c)) {
			continue
		}
		// Within stops at the first DP row whose cells all exceed 1; only
		// the identical word sits at distance 0.
		if c != word && editdist.Within(word, c, 1) {
			out.Add(c)
		}
	}
	return out
}

func lengthCompatible(a, b int) bool {
	return a-b <= 1 && b-a <= 1
}

// BuildAll computes the friends of every word in candidates.
//
// Duplicated words map to the same key; their friend sets are identical, so
// the later computation simply coincides with the earlier one.
func BuildAll(candidates []string) Adjacency {
	adj := make(Adjacency, len(candidates))
	for _, w := range candidates {
		adj[w] = Of(w, candidates)
	}
	return adj
}

// BuildAllParallel computes the same mapping as [BuildAll] using up to
// workers goroutines. A workers value below 1 means runtime.GOMAXPROCS(0).
//
// Each word is processed independently and results are merged only after
// every worker has finished. If ctx is cancelled the partial mapping is
// discarded and ctx.Err() is returned.
func BuildAllParallel(ctx context.Context, candidates []string, workers int) (Adjacency, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu  sync.Mutex
		adj = make(Adjacency, len(candidates))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, w := range candidates {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set := Of(w, candidates)
			mu.Lock()
			adj[w] = set
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return adj, nil
}

// Words returns the keys of the mapping in lexical order.
func (a Adjacency) Words() []string {
	return slices.Sorted(maps.Keys(a))
}

// Edges returns the total number of friend entries. A link between two words
// that are both keys is counted from each end.
func (a Adjacency) Edges() int {
	n := 0
	for _, s := range a {
		n += s.Len()
	}
	return n
}

// Equal reports whether a and b hold the same keys with the same friend sets.
func (a Adjacency) Equal(b Adjacency) bool {
	if len(a) != len(b) {
		return false
	}
	for w, s := range a {
		o, ok := b[w]
		if !ok || !s.Equal(o) {
			return false
		}
	}
	return true
}
