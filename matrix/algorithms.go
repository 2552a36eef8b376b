// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// CountMatching counts the cells of the whole logical rows×cols grid whose
// value satisfies pred, stored and default cells alike.
//
// Algorithm:
//  1. Walk the stored elements, counting those whose value satisfies pred.
//  2. Evaluate pred once on the default value.
//  3. If it holds, add rows*cols − ElementCount(): every unmaterialized
//     cell reads as the default.
//
// The result equals a brute-force double loop over At(i, j), without
// materializing a single default cell.
//
// Panics:
//   - error wrapping ErrNilMatrix when m is nil.
//   - error wrapping ErrNilFunc when pred is nil.
//
// Complexity:
//   - Time O(k) predicate calls + 1; Space O(1).
func CountMatching[T any](m *Sparse[T], pred Predicate[T]) int {
	if m == nil {
		panic(fmt.Errorf("CountMatching: %w", ErrNilMatrix))
	}
	if pred == nil {
		panic(fmt.Errorf("CountMatching: %w", ErrNilFunc))
	}
	total := 0
	for e := range m.All() {
		if pred(e.Value) {
			total++
		}
	}
	if pred(m.def) {
		total += m.rows*m.cols - m.ElementCount()
	}

	return total
}

// Equal returns a predicate matching values equal to v.
func Equal[T comparable](v T) Predicate[T] {
	return func(x T) bool { return x == v }
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(x T) bool { return !p(x) }
}
