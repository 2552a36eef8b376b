// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtElement    = "(%d,%d): %v"
	_fmtElementPos = "(%d,%d): "
	_fmtRowOpen    = "["
	_fmtRowClose   = "]\n"
)

// String renders the stored elements, one "(row,col): value" line each, in
// row-major order. Equivalent to Format() with no options.
func (m *Sparse[T]) String() string {
	return m.Format()
}

// Format renders the matrix according to opts.
// Implementation:
//   - LayoutList: one line per stored element, row-major.
//   - LayoutGrid: one "[v, v, ...]" line per row, default cells included.
//
// The output is deterministic for a given matrix state.
//
// Complexity:
//   - LayoutList O(k); LayoutGrid O(rows*cols + k).
func (m *Sparse[T]) Format(opts ...Option) string {
	o := gatherOptions(opts...)
	var sb strings.Builder
	switch o.layout {
	case LayoutGrid:
		m.ToDense().writeGrid(&sb, o)
	default:
		for e := range m.All() {
			fmt.Fprintf(&sb, _fmtElementPos, e.row, e.col)
			fmt.Fprintf(&sb, o.valueFormat, e.Value)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
