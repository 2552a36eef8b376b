// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Callers and tests match them via errors.Is.
// Returned errors are used for construction and conversion failures; panics
// (with values wrapping these sentinels) are reserved for programmer errors
// such as out-of-range coordinates or reuse of an invalidated iterator.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvsparse/orderedlist"
)

// Every message is prefixed with "matrix: ..." for consistency. Context is
// added with fmt.Errorf("ctx: %w", ErrX) at the detection site.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive or that rows*cols does not fit in an int.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0 with rows*cols within int range")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Sparse.Add/At panic with it; Dense.At returns it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Sparse was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunc indicates that a nil conversion function or predicate was passed.
	ErrNilFunc = errors.New("matrix: nil function")

	// ErrUninitialized is the panic value raised when a zero-value Sparse is
	// read or mutated; matrices must be built with New.
	ErrUninitialized = errors.New("matrix: zero-value Sparse, construct with New")

	// ErrConversion marks a failed element conversion in TryConvert.
	// The underlying conversion error is joined to it.
	ErrConversion = errors.New("matrix: element conversion failed")
)

// ErrInvalidated is the panic value raised when an iterator is used after the
// matrix it walks has been mutated. It is the same sentinel as the one of the
// underlying ordered list, so errors.Is matches either name.
var ErrInvalidated = orderedlist.ErrInvalidated
