// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and index checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// validateShape ensures rows > 0, cols > 0 and that rows*cols fits in an int.
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	if rows > math.MaxInt/cols {
		return ErrInvalidDimensions
	}

	return nil
}

// validateIndex ensures 0 ≤ row < rows and 0 ≤ col < cols.
// Returns ErrOutOfRange otherwise.
// Complexity: O(1).
func validateIndex(row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return ErrOutOfRange
	}
	if col < 0 || col >= cols {
		return ErrOutOfRange
	}

	return nil
}
