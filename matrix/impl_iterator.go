// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"

	"github.com/katalvlaran/lvsparse/orderedlist"
)

// Iterator is a forward, read-only cursor over the stored elements of a
// Sparse matrix in ascending row-major order. Default cells are never
// visited.
//
//	it := m.Iterator()
//	for it.Next() {
//	  e := it.Element()
//	  fmt.Println(e.Row(), e.Col(), e.Value)
//	}
//
// Iterators obtained from the same matrix are independent. Any mutation of
// the matrix (Add, Clear, Assign) invalidates them; a further Next or
// Element panics with ErrInvalidated. SetDefaultValue does not touch stored
// elements and leaves iterators valid.
type Iterator[T any] struct {
	it *orderedlist.Iterator[Element[T]]
}

// Iterator returns a cursor positioned before the first stored element.
// Complexity: O(1).
func (m *Sparse[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{it: m.chain().Iterator()}
}

// Next advances to the next stored element and reports whether one exists.
func (it *Iterator[T]) Next() bool { return it.it.Next() }

// Element returns a copy of the element under the cursor.
func (it *Iterator[T]) Element() Element[T] { return it.it.Value() }

// All returns the stored elements as a range-over-func sequence, in
// ascending row-major order. Mutating the matrix inside the loop body panics
// with ErrInvalidated.
//
// Complexity: O(k) for a full pass.
func (m *Sparse[T]) All() iter.Seq[Element[T]] {
	return m.chain().All()
}

// Elements returns the stored elements in row-major order as a new slice.
func (m *Sparse[T]) Elements() []Element[T] {
	return m.chain().Values()
}
