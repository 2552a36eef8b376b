// SPDX-License-Identifier: MIT

package orderedlist

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Compare is a three-way comparator.
// It returns a negative number when a < b, zero when a == b and a positive
// number when a > b. It must impose a total order on the values it sees.
type Compare[T any] func(a, b T) int

// Natural returns the comparator induced by the built-in ordering operators.
// For floating-point types NaN sorts before every other value and compares
// equal to itself, so the order stays total.
//
// Complexity: O(1) per call.
func Natural[T constraints.Ordered]() Compare[T] {
	return cmp.Compare[T]
}

// FromLess adapts a strict less-than into a three-way comparator.
// Two values are equal when neither is less than the other.
func FromLess[T any](less func(a, b T) bool) Compare[T] {
	if less == nil {
		panic(ErrNilCompare)
	}

	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse flips the direction of cmp.
func Reverse[T any](cmp Compare[T]) Compare[T] {
	if cmp == nil {
		panic(ErrNilCompare)
	}

	return func(a, b T) int { return cmp(b, a) }
}
