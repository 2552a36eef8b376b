// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (row-major ordered elements) & accessors.
//
// Purpose:
//   - Store only the cells that were explicitly added; every other cell reads
//     as the current default value.
//   - Keep stored elements strictly increasing in (row, col) with no
//     duplicates, whatever the insertion order.
//   - Treat out-of-range coordinates as programmer errors (panic), and
//     invalid shapes as construction errors (returned).
//
// Complexity quicksheet:
//   - New: O(1); Add/At: O(k) worst case, O(1) when appending in row-major
//     order; Clear: O(k); ElementCount/Rows/Cols/DefaultValue: O(1).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/orderedlist"
)

// ---------- error context tags ----------

const (
	ctxAdd = "Add" // method tag used in panic wrappers
	ctxAt  = "At"  // method tag used in panic wrappers
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
// Produces "Sparse.<method>(row,col): <sentinel>" and preserves the sentinel via %w.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a rows×cols matrix that materializes only non-default cells.
//   - rows, cols are fixed at construction (both > 0).
//   - elems holds the stored cells ordered row-major; its length is the
//     element count.
//   - def is the value of every cell that has no stored element.
//
// The zero value is not usable; construct with New. Methods called on a
// zero value panic with ErrUninitialized.
//
// Sparse is not safe for concurrent use.
type Sparse[T any] struct {
	rows, cols int                           // dimensions, fixed for the lifetime
	def        T                             // value of every unmaterialized cell
	elems      *orderedlist.List[Element[T]] // stored cells, row-major
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse[int])(nil)

// New creates an empty rows×cols matrix whose cells all read as def.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: create an empty element chain ordered row-major.
//
// Returns:
//   - *Sparse[T]: empty matrix, ElementCount()==0.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation); no matrix is returned.
//
// Complexity:
//   - Time O(1), Space O(1). No cell is allocated up front.
func New[T any](rows, cols int, def T) (*Sparse[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, err)
	}

	return newSparse(rows, cols, def), nil
}

// newSparse builds a matrix without validation; callers guarantee the shape.
func newSparse[T any](rows, cols int, def T) *Sparse[T] {
	return &Sparse[T]{
		rows:  rows,
		cols:  cols,
		def:   def,
		elems: orderedlist.New(compareElements[T]),
	}
}

// chain returns the element chain, panicking on a zero-value matrix.
func (m *Sparse[T]) chain() *orderedlist.List[Element[T]] {
	if m.elems == nil {
		panic(ErrUninitialized)
	}

	return m.elems
}

// Rows returns the row count.
func (m *Sparse[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Sparse[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Sparse[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// ElementCount returns the number of stored (materialized) cells.
// Always 0 ≤ ElementCount() ≤ Rows()*Cols().
func (m *Sparse[T]) ElementCount() int { return m.chain().Len() }

// DefaultValue returns the value read from every unmaterialized cell.
func (m *Sparse[T]) DefaultValue() T { return m.def }

// SetDefaultValue replaces the value of every unmaterialized cell.
// The change is immediate and retroactive for all reads and for
// CountMatching; stored elements are never rewritten, even when they equal
// the old or the new default.
//
// Complexity: O(1).
func (m *Sparse[T]) SetDefaultValue(v T) { m.def = v }

// Add stores v at (row, col), or overwrites the value already stored there.
// MAIN DESCRIPTION:
//   - Ordered insert-or-update keeping elements strictly increasing in
//     (row, col).
//
// Implementation:
//   - Stage 1: bounds check; panic on violation.
//   - Stage 2: walk to the first element not less than (row, col).
//   - Stage 3: equal coordinates ⇒ overwrite in place (count unchanged);
//     otherwise link a new element there (count+1).
//
// Behavior highlights:
//   - Adding a value equal to the default still materializes the cell.
//   - Exactly one element per distinct coordinate.
//   - Invalidates outstanding iterators.
//
// Panics:
//   - error wrapping ErrOutOfRange when row∉[0,Rows()) or col∉[0,Cols()).
//
// Complexity:
//   - Time O(k) worst case for k stored cells; O(1) when (row, col) is past
//     the last stored element. Space O(1).
func (m *Sparse[T]) Add(row, col int, v T) {
	if err := validateIndex(row, col, m.rows, m.cols); err != nil {
		panic(sparseErrorf(ctxAdd, row, col, err))
	}
	m.chain().Upsert(Element[T]{row: row, col: col, Value: v})
}

// At returns the value of cell (row, col): the stored value if the cell is
// materialized, the current default otherwise. Reading never stores anything.
//
// Panics with an error wrapping ErrOutOfRange on invalid coordinates.
//
// Complexity: O(k) worst case.
func (m *Sparse[T]) At(row, col int) T {
	if err := validateIndex(row, col, m.rows, m.cols); err != nil {
		panic(sparseErrorf(ctxAt, row, col, err))
	}
	if e, ok := m.chain().Lookup(Element[T]{row: row, col: col}); ok {
		return e.Value
	}

	return m.def
}

// IsStored reports whether (row, col) holds a materialized element.
// Out-of-range coordinates are never stored.
func (m *Sparse[T]) IsStored(row, col int) bool {
	if validateIndex(row, col, m.rows, m.cols) != nil {
		return false
	}

	return m.chain().Find(Element[T]{row: row, col: col})
}

// Clear releases every stored element. Rows, Cols and DefaultValue are kept.
// Elements are released in a loop, never by recursion over the chain.
//
// Complexity: O(k).
func (m *Sparse[T]) Clear() { m.chain().Clear() }
