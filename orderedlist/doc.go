// Package orderedlist provides a generic singly-linked list kept sorted by a
// caller-supplied three-way comparator.
//
// 🚀 What is an OrderedList?
//
//	A chain of values where every insertion lands at its ordered position,
//	so a forward walk always yields values in non-decreasing order:
//	  • Insert   - ordered insertion, duplicates allowed
//	  • Upsert   - insert-or-replace, at most one node per key
//	  • Find     - membership under the comparator's notion of equality
//	  • All      - range-over-func forward iteration
//
// ✨ Key features:
//   - any element type: ordering comes from a Compare[T] function value
//   - Natural() for ordered built-ins, FromLess() to adapt a less-than
//   - deep Clone and copy-and-swap Assign; nodes are never shared
//   - iterators are invalidated by mutation and fail loudly when reused
//   - in-order construction runs in O(n) thanks to a tail shortcut
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsparse/orderedlist"
//
//	l := orderedlist.New(orderedlist.Natural[int]())
//	l.Insert(3)
//	l.Insert(1)
//	for v := range l.All() {
//	  fmt.Println(v) // 1, 3
//	}
//
// Ties:
//
//	Insert places a value before the first node that is not less than it,
//	so among equal keys the newest insertion comes first. Callers may rely
//	only on equal keys staying contiguous.
//
// Concurrency:
//
//	A List is not safe for concurrent use. Guard it with a mutex when it is
//	shared between goroutines.
//
// Performance:
//
//   - Insert / Upsert / Find: O(n) worst case, O(1) when appending past the tail
//   - Clone / Assign / Clear: O(n)
//   - Memory: O(n)
package orderedlist
