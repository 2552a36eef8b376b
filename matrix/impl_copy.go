// SPDX-License-Identifier: MIT

// Package matrix - deep copy, copy-and-swap assignment and cross-type
// conversion.
//
// Purpose:
//   - No element is ever shared between two live matrices: every copy
//     allocates its own chain.
//   - Assignment builds the complete copy first, so the destination is never
//     observed half-assigned.
//   - Conversion applies an explicit function per stored value and to the
//     default value; TryConvert releases partial work on the first failure.

package matrix

import (
	"errors"
	"fmt"
)

// Clone returns an independent deep copy with the same shape, default value
// and stored elements.
//
// Complexity: O(k).
func (m *Sparse[T]) Clone() *Sparse[T] {
	return &Sparse[T]{
		rows:  m.rows,
		cols:  m.cols,
		def:   m.def,
		elems: m.chain().Clone(),
	}
}

// Assign makes m a deep copy of src (shape, default value and elements).
// MAIN DESCRIPTION:
//   - Copy-and-swap assignment.
//
// Implementation:
//   - Stage 1: build a full temporary clone of src; m is untouched meanwhile.
//   - Stage 2: swap the state of m with the temporary.
//   - Stage 3: release the previous contents of m held by the temporary.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//   - A zero-value receiver becomes a fully usable copy of src.
//   - Invalidates outstanding iterators of m.
//
// Panics:
//   - error wrapping ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(k_m + k_src).
func (m *Sparse[T]) Assign(src *Sparse[T]) {
	if src == nil {
		panic(fmt.Errorf("Sparse.Assign: %w", ErrNilMatrix))
	}
	if m == src {
		return
	}
	tmp := src.Clone()
	m.rows, tmp.rows = tmp.rows, m.rows
	m.cols, tmp.cols = tmp.cols, m.cols
	m.def, tmp.def = tmp.def, m.def
	m.elems, tmp.elems = tmp.elems, m.elems
	// A zero-value receiver had no chain to release.
	if tmp.elems != nil {
		tmp.Clear()
	}
}

// Convert builds a Sparse[T] from a Sparse[S] by passing every stored value
// and the default value through fn. Shape and stored coordinates are kept;
// the result shares nothing with src.
//
// Panics:
//   - error wrapping ErrNilMatrix when src is nil.
//   - error wrapping ErrNilFunc when fn is nil.
//
// Complexity: O(k) calls to fn plus O(k) appends (source order is row-major).
func Convert[S, T any](src *Sparse[S], fn func(S) T) *Sparse[T] {
	if src == nil {
		panic(fmt.Errorf("Convert: %w", ErrNilMatrix))
	}
	if fn == nil {
		panic(fmt.Errorf("Convert: %w", ErrNilFunc))
	}
	dst := newSparse(src.rows, src.cols, fn(src.def))
	for e := range src.All() {
		dst.Add(e.row, e.col, fn(e.Value))
	}

	return dst
}

// TryConvert is Convert with a fallible conversion function.
// On the first error the partially built matrix is released and nil is
// returned together with an error matching both ErrConversion and the error
// returned by fn. The default value is converted first.
//
// Errors:
//   - ErrNilMatrix, ErrNilFunc for nil arguments.
//   - ErrConversion joined with fn's error, annotated with the coordinates
//     (or "default") of the failing value.
func TryConvert[S, T any](src *Sparse[S], fn func(S) (T, error)) (*Sparse[T], error) {
	if src == nil {
		return nil, fmt.Errorf("TryConvert: %w", ErrNilMatrix)
	}
	if fn == nil {
		return nil, fmt.Errorf("TryConvert: %w", ErrNilFunc)
	}
	def, err := fn(src.def)
	if err != nil {
		return nil, fmt.Errorf("TryConvert(default): %w", errors.Join(ErrConversion, err))
	}
	dst := newSparse(src.rows, src.cols, def)
	for e := range src.All() {
		v, err := fn(e.Value)
		if err != nil {
			dst.Clear() // release partial chain before reporting
			return nil, fmt.Errorf("TryConvert(%d,%d): %w", e.row, e.col, errors.Join(ErrConversion, err))
		}
		dst.Add(e.row, e.col, v)
	}

	return dst, nil
}
