// SPDX-License-Identifier: MIT

// Package matrix - Dense snapshot (row-major) of a sparse matrix.
//
// Purpose:
//   - Materialize every cell of a Sparse matrix once, for callers that need
//     the full grid (rendering, export, brute-force checks).
//   - Keep the public surface safe: Dense.At returns errors, never panics.
//
// Complexity quicksheet:
//   - ToDense: O(r*c + k); At: O(1).

package matrix

import (
	"fmt"
	"strings"
)

const ctxDenseAt = "At"

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major grid of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// A Dense is a snapshot: later changes to the source Sparse are not visible.
type Dense[T any] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// ToDense materializes every cell of m.
// Implementation:
//   - Stage 1: fill an r*c buffer with the default value.
//   - Stage 2: overwrite the stored cells, walking elements once.
//
// Complexity:
//   - Time O(r*c + k), Space O(r*c).
func (m *Sparse[T]) ToDense() *Dense[T] {
	buf := make([]T, m.rows*m.cols)
	for i := range buf {
		buf[i] = m.def
	}
	for e := range m.All() {
		buf[e.row*m.cols+e.col] = e.Value
	}

	return &Dense[T]{r: m.rows, c: m.cols, data: buf}
}

// Rows returns the row count.
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense[T]) Cols() int { return d.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (d *Dense[T]) indexOf(row, col int) (int, error) {
	if err := validateIndex(row, col, d.r, d.c); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*d.c + col, nil
}

// At returns the value at (row, col) or an error wrapping ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) At(row, col int) (T, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxDenseAt, row, col, err)
	}

	return d.data[off], nil
}

// Row returns a copy of row i, or an error wrapping ErrOutOfRange.
func (d *Dense[T]) Row(i int) ([]T, error) {
	if _, err := d.indexOf(i, 0); err != nil {
		return nil, denseErrorf("Row", i, 0, err)
	}
	out := make([]T, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// String renders rows as "[v, v, ...]" lines using the default options.
func (d *Dense[T]) String() string {
	var sb strings.Builder
	d.writeGrid(&sb, gatherOptions())

	return sb.String()
}

// writeGrid appends one bracketed line per row to sb.
func (d *Dense[T]) writeGrid(sb *strings.Builder, o Options) {
	for i := 0; i < d.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(o.cellSep)
			}
			fmt.Fprintf(sb, o.valueFormat, d.data[i*d.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}
}
