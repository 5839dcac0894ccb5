// Package perm enumerates permutations and, on top of them, every valid
// ordering of a short sequence.
//
// Exhaustive enumeration is factorial in the sequence length, so it is
// only offered for sequences of at most [MaxItems] items. It serves as a
// reference for the graph-based corrector: the corrected sequence must be
// one of the orderings found here, and a sequence with no ordering must be
// reported as inconsistent.
package perm

import (
	"iter"
	"slices"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// This function is useful for calculating the size of the full permutation space.
// Note that factorials grow extremely fast: 13! = 6,227,020,800 exceeds 32-bit int.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// All yields the permutations of [0, 1, ..., n-1] in Heap's order without
// storing them. The yielded slice is reused between iterations; clone it to
// keep it. For n <= 0 a single empty permutation is yielded.
func All(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		perm := Seq(max(n, 0))
		if !yield(perm) {
			return
		}
		state := make([]int, len(perm))
		for i := 0; i < len(perm); {
			if state[i] < i {
				if i&1 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[state[i]], perm[i] = perm[i], perm[state[i]]
				}
				if !yield(perm) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// For n >= 13, the number of permutations exceeds billions. Always use a limit
// when n is large, or use [All] to walk them without storing.
func Generate(n, limit int) [][]int {
	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
	}
	if limit > 0 {
		capacity = min(capacity, limit)
	}
	result := make([][]int, 0, capacity)
	for p := range All(n) {
		result = append(result, slices.Clone(p))
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}
