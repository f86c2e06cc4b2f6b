package friends

import (
	"maps"
	"slices"
)

// Set is an unordered collection of distinct words.
// The zero value is a nil map: reads work, Add panics. Use [NewSet].
type Set map[string]struct{}

// NewSet returns a set holding words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts w.
func (s Set) Add(w string) { s[w] = struct{}{} }

// Has reports whether w is in the set.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words.
func (s Set) Len() int { return len(s) }

// Union adds every word of other to s.
func (s Set) Union(other Set) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Difference returns a new set with the words of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for w := range s {
		if !other.Has(w) {
			out[w] = struct{}{}
		}
	}
	return out
}

// SubsetOf reports whether every word of s is also in other.
func (s Set) SubsetOf(other Set) bool {
	for w := range s {
		if !other.Has(w) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other hold the same words.
func (s Set) Equal(other Set) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Clone returns a copy of s. Cloning a nil set yields an empty, usable set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	maps.Copy(out, s)
	return out
}

// Sorted returns the words in lexical order. The result is never nil.
func (s Set) Sorted() []string {
	out := slices.AppendSeq(make([]string, 0, len(s)), maps.Keys(s))
	slices.Sort(out)
	return out
}
