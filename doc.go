// Package lvsparse is a small toolkit for sparse, default-valued grids.
//
// 🚀 What is lvsparse?
//
//	A zero-surprise library that brings together:
//		• orderedlist/ - a generic singly-linked list kept sorted by a comparator
//		• matrix/      - Sparse[T], a rows×cols matrix storing only non-default cells
//
// ✨ Why a sparse matrix?
//
//   - O(k) memory for k stored cells, whatever rows×cols is
//   - Order-independent reads: insertion order never changes what At returns
//   - Stored cells always iterate in row-major order
//   - Whole-grid predicate counts (CountMatching) without materializing defaults
//   - Generic element types, explicit conversion between them
//
// Quick ASCII example (default 0, three stored cells):
//
//	[0, 0, 5]
//	[7, 0, 0]
//	[0, 0, 1]
//
// Only 5, 7 and 1 live in memory, as (0,2), (1,0) and (2,2).
//
// The packages are not synchronized; guard shared instances with a mutex.
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
