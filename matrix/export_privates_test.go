// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private validators, ordering and options.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY; the file compiles with
//     the test binary and never widens the production API.

var (
	// ExportedValidateShape exposes validateShape for white-box tests.
	ExportedValidateShape = validateShape
	// ExportedValidateIndex exposes validateIndex for white-box tests.
	ExportedValidateIndex = validateIndex
)

// ExportedCompareCoords compares two coordinates with the element ordering.
func ExportedCompareCoords(r1, c1, r2, c2 int) int {
	return compareElements(Element[struct{}]{row: r1, col: c1}, Element[struct{}]{row: r2, col: c2})
}

// OptionsSnapshot is a read-only view of the effective rendering options.
type OptionsSnapshot struct {
	Layout        Layout
	ValueFormat   string
	CellSeparator string
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Layout: o.layout, ValueFormat: o.valueFormat, CellSeparator: o.cellSep}
}
