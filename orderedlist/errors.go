// SPDX-License-Identifier: MIT

package orderedlist

import "errors"

var (
	// ErrNilCompare is the panic value of New/NewFromSeq when no comparator is given.
	ErrNilCompare = errors.New("orderedlist: nil comparator")

	// ErrInvalidated is the panic value raised when an iterator (or an All
	// sequence) is advanced after the list it walks has been mutated.
	ErrInvalidated = errors.New("orderedlist: iterator used after list mutation")
)
