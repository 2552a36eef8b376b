// SPDX-License-Identifier: MIT

package orderedlist

// Iterator is a forward, read-only cursor over a List.
// It starts before the first value; call Next before Value.
//
//	it := l.Iterator()
//	for it.Next() {
//	  use(it.Value())
//	}
//
// Two iterators over the same list are independent. Both become invalid as
// soon as the list is mutated; any further Next or Value panics with
// ErrInvalidated.
type Iterator[T any] struct {
	list    *List[T]
	cur     *node[T]
	next    *node[T]
	version uint64
}

// Iterator returns a cursor positioned before the first value.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, next: l.head, version: l.version}
}

func (it *Iterator[T]) checkValid() {
	if it.list.version != it.version {
		panic(ErrInvalidated)
	}
}

// Next advances to the next value and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	it.checkValid()
	if it.next == nil {
		it.cur = nil
		return false
	}
	it.cur = it.next
	it.next = it.next.next

	return true
}

// Value returns the value under the cursor.
// It returns the zero value when Next has not been called or returned false.
func (it *Iterator[T]) Value() T {
	it.checkValid()
	if it.cur == nil {
		var zero T
		return zero
	}

	return it.cur.value
}
