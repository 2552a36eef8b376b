// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the sparse storage and algorithms.
// This file contains ONLY domain-facing types (stored elements, predicates)
// and the row-major ordering of elements.
package matrix

import "fmt"

// Element is one stored cell: its coordinates and its value.
// Coordinates are fixed when the element is created and are only readable;
// Elements handed out by iteration are copies, so changing Value on them
// never affects the matrix.
type Element[T any] struct {
	row   int // row index, 0 ≤ row < Rows()
	col   int // column index, 0 ≤ col < Cols()
	Value T   // cell value
}

// Row returns the row index of the element.
func (e Element[T]) Row() int { return e.row }

// Col returns the column index of the element.
func (e Element[T]) Col() int { return e.col }

// String renders the element as "(row,col): value".
func (e Element[T]) String() string {
	return fmt.Sprintf(_fmtElement, e.row, e.col, e.Value)
}

// Predicate is a unary test over a cell value.
type Predicate[T any] func(v T) bool

// compareElements orders elements row-major: row first, then column.
// Values never take part in the ordering.
// Complexity: O(1).
func compareElements[T any](a, b Element[T]) int {
	if a.row != b.row {
		return a.row - b.row
	}

	return a.col - b.col
}
