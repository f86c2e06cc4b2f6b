package network

import (
	stderrors "errors"

	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/friends"
)

// ErrCacheMismatch is matched by errors returned from [CachedSource] when a
// word has no adjacency entry.
var ErrCacheMismatch = stderrors.New("adjacency cache mismatch")

// Source supplies the friends of a word, drawn from one fixed word list.
type Source interface {
	Neighbors(word string) (friends.Set, error)
}

// ComputedSource computes friends on demand from Words.
type ComputedSource struct {
	Words []string
}

// Neighbors returns friends.Of(word, s.Words). It never fails.
func (s ComputedSource) Neighbors(word string) (friends.Set, error) {
	return friends.Of(word, s.Words), nil
}

// CachedSource serves friends from a precomputed mapping.
type CachedSource struct {
	Adjacency friends.Adjacency
}

// Neighbors returns the mapping entry for word, or an error matching
// [ErrCacheMismatch] and carrying code [errors.ErrCodeCacheMismatch] when
// there is none. The returned set is shared with the mapping and must not be
// modified.
func (s CachedSource) Neighbors(word string) (friends.Set, error) {
	set, ok := s.Adjacency[word]
	if !ok {
		return nil, errors.Wrap(errors.ErrCodeCacheMismatch, ErrCacheMismatch,
			"no adjacency entry for %q", word)
	}
	return set, nil
}

// NewSource returns a CachedSource over adj, or a ComputedSource over words
// when adj is nil.
func NewSource(words []string, adj friends.Adjacency) Source {
	if adj != nil {
		return CachedSource{Adjacency: adj}
	}
	return ComputedSource{Words: words}
}
