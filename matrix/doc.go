// Package matrix offers a generic sparse two-dimensional matrix.
//
// The matrix package provides:
//
//   - Sparse[T], a fixed rows×cols grid where only cells that deviate from a
//     configurable default value are stored. Memory is O(k) for k stored
//     cells, independent of the grid size.
//   - Row-major ordered storage on top of orderedlist.List, so iteration
//     always yields stored cells in ascending (row, col) order regardless of
//     insertion order.
//   - CountMatching, a predicate count over the whole logical grid that never
//     materializes default cells.
//   - Clone/Assign deep copies and Convert/TryConvert across element types.
//   - Format with functional options (element list or full grid) and a
//     Dense[T] snapshot for callers that need every cell.
//
// Out-of-range coordinates on Add/At are programmer errors and panic with an
// error wrapping ErrOutOfRange. Construction with non-positive dimensions
// returns ErrInvalidDimensions.
//
// A Sparse matrix is not safe for concurrent use; protect it externally.
//
// See the examples in this package for usage patterns.
package matrix
