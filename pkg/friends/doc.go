// Package friends derives the friendship relation between words.
//
// Two words are friends when their Levenshtein distance is exactly 1. The
// relation is symmetric and irreflexive: a word is never its own friend.
//
// # Computing friends
//
// [Of] returns the friends of a single word drawn from a candidate list.
// Candidates whose length differs from the word by more than one character
// are skipped before any distance is computed; two words one edit apart can
// never differ in length by more, so the filter only saves work.
//
// [BuildAll] computes the full [Adjacency] for a word list. This is the
// quadratic step of the whole system and the reason the result is worth
// caching. [BuildAllParallel] produces the same mapping using a bounded pool
// of goroutines.
//
// # Serialization
//
// An [Adjacency] can be written as JSON with [WriteAdjacency] and read back
// with [ReadAdjacency]. Friend lists are written in sorted order so identical
// mappings always produce identical bytes. The mapping carries no record of
// the word list it was built from; pairing the two is the caller's job.
package friends
