// Package editdist computes the Levenshtein distance between two words.
//
// The distance is the minimum number of single-character insertions,
// deletions, or substitutions needed to turn one word into the other, each
// operation costing 1. Characters are Unicode code points, so "café" and
// "cafe" are one substitution apart rather than two byte edits.
//
// [Distance] is total: every pair of strings, including empty ones, has a
// distance, and the function never fails. [Within] answers the bounded
// question "is the distance at most k?" and stops as soon as the answer is
// known, which is what the friendship relation in package friends needs.
package editdist
