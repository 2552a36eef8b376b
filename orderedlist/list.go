// SPDX-License-Identifier: MIT

// Package orderedlist - sorted chain storage, ordered insertion & lookup.
//
// Purpose:
//   - Keep a singly-linked chain sorted under a Compare[T] at all times.
//   - Give every list exclusive ownership of its nodes: copies are structural.
//   - Make sorted (in-order) construction cheap via a tail shortcut.
//
// Complexity quicksheet:
//   - Insert/Upsert/Find/Lookup: O(n) worst case; O(1) when v sorts after the tail.
//   - Clone/Assign/Clear: O(n).

package orderedlist

import (
	"fmt"
	"iter"
	"strings"
)

// node is one link of the chain. A node is owned by exactly one List.
type node[T any] struct {
	value T        // stored value
	next  *node[T] // successor, nil at the end of the chain
}

// List is a singly-linked list of T kept sorted by cmp.
//   - head is the smallest value; tail the largest (nil when empty).
//   - size always equals the chain length.
//   - version changes on every mutation and invalidates outstanding iterators.
//
// The zero value is not usable; construct with New.
type List[T any] struct {
	head    *node[T]
	tail    *node[T]
	cmp     Compare[T]
	size    int
	version uint64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*List[int])(nil)

// New returns an empty list ordered by cmp.
// It panics with ErrNilCompare when cmp is nil (programmer error).
//
// Complexity: O(1).
func New[T any](cmp Compare[T]) *List[T] {
	if cmp == nil {
		panic(ErrNilCompare)
	}

	return &List[T]{cmp: cmp}
}

// NewFromSeq builds a list from an arbitrary input sequence by inserting
// every value in turn. Already-sorted input is consumed in O(n).
//
// Complexity: O(n²) worst case, O(n) for sorted input.
func NewFromSeq[T any](cmp Compare[T], seq iter.Seq[T]) *List[T] {
	l := New(cmp)
	for v := range seq {
		l.Insert(v)
	}

	return l
}

// FromSlice is NewFromSeq over the given values.
func FromSlice[T any](cmp Compare[T], items ...T) *List[T] {
	l := New(cmp)
	for _, v := range items {
		l.Insert(v)
	}

	return l
}

// Len returns the number of values in the list.
// Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// Compare returns the comparator ordering the list.
func (l *List[T]) Compare() Compare[T] { return l.cmp }

// seek locates the ordered position of v.
// It returns the last node strictly less than v (nil when v belongs at the
// head) and the first node not less than v (nil when v belongs at the end).
func (l *List[T]) seek(v T) (prev, cur *node[T]) {
	// Past-the-tail fast path keeps in-order construction linear.
	if l.tail != nil && l.cmp(l.tail.value, v) < 0 {
		return l.tail, nil
	}
	cur = l.head
	for cur != nil && l.cmp(cur.value, v) < 0 {
		prev = cur
		cur = cur.next
	}

	return prev, cur
}

// link inserts n after prev (or at the head when prev is nil).
func (l *List[T]) link(prev, n *node[T]) {
	if prev == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}
	if n.next == nil {
		l.tail = n
	}
	l.size++
	l.version++
}

// Insert adds v immediately before the first value not less than v.
// Equal values are allowed; a new value is placed ahead of the values it
// compares equal to.
//
// Complexity: O(n) worst case.
func (l *List[T]) Insert(v T) {
	prev, cur := l.seek(v)
	l.link(prev, &node[T]{value: v, next: cur})
}

// Upsert inserts v, or overwrites the stored value comparing equal to v.
// It reports whether an existing value was replaced; in that case Len is
// unchanged and no node is allocated.
//
// Complexity: O(n) worst case.
func (l *List[T]) Upsert(v T) (replaced bool) {
	prev, cur := l.seek(v)
	if cur != nil && l.cmp(cur.value, v) == 0 {
		cur.value = v
		l.version++

		return true
	}
	l.link(prev, &node[T]{value: v, next: cur})

	return false
}

// Lookup returns the stored value comparing equal to probe.
// The walk stops at the first value greater than probe.
//
// Complexity: O(n) worst case.
func (l *List[T]) Lookup(probe T) (T, bool) {
	if l.tail != nil && l.cmp(l.tail.value, probe) < 0 {
		var zero T
		return zero, false
	}
	for n := l.head; n != nil; n = n.next {
		c := l.cmp(n.value, probe)
		if c == 0 {
			return n.value, true
		}
		if c > 0 {
			break
		}
	}
	var zero T

	return zero, false
}

// Find reports whether some value compares equal to v.
func (l *List[T]) Find(v T) bool {
	_, ok := l.Lookup(v)
	return ok
}

// Clear releases every node. The comparator is kept.
// Nodes are unlinked one by one in a loop, so chain length never turns into
// call depth.
//
// Complexity: O(n).
func (l *List[T]) Clear() {
	var zero T
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n.value = zero
		n = next
	}
	l.head, l.tail = nil, nil
	l.size = 0
	l.version++
}

// Clone returns a deep copy: fresh nodes holding copies of every value, in
// the same order, sharing only the comparator.
//
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{cmp: l.cmp}
	for n := l.head; n != nil; n = n.next {
		// Source order is already sorted: append at the tail.
		out.link(out.tail, &node[T]{value: n.value})
	}

	return out
}

// Assign replaces the contents of l with a deep copy of src (copy-and-swap).
// The copy is built completely before l is touched; the previous chain of l
// is released afterwards. Assigning a list to itself is a no-op.
//
// Complexity: O(len(l) + len(src)).
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	tmp := src.Clone()
	l.head, tmp.head = tmp.head, l.head
	l.tail, tmp.tail = tmp.tail, l.tail
	l.size, tmp.size = tmp.size, l.size
	l.cmp, tmp.cmp = tmp.cmp, l.cmp
	l.version++
	tmp.Clear()
}

// All returns a forward sequence over the values in order.
// Mutating the list while ranging over it panics with ErrInvalidated.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		version := l.version
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
			if l.version != version {
				panic(ErrInvalidated)
			}
		}
	}
}

// Values returns the values in order as a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// String renders one value per line, in order.
func (l *List[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintln(&sb, n.value)
	}

	return sb.String()
}
