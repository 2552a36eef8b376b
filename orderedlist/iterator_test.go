package orderedlist_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/orderedlist"
	"github.com/stretchr/testify/require"
)

// TestIterator_Walk visits every value in order and stops at the end.
func TestIterator_Walk(t *testing.T) {
	l := orderedlist.FromSlice(orderedlist.Natural[int](), 3, 1, 2)
	it := l.Iterator()

	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{1, 2, 3}, got)
	require.False(t, it.Next())
	require.Zero(t, it.Value())
}

// TestIterator_Independent checks two iterators do not share position.
func TestIterator_Independent(t *testing.T) {
	l := orderedlist.FromSlice(orderedlist.Natural[int](), 1, 2)
	a, b := l.Iterator(), l.Iterator()

	require.True(t, a.Next())
	require.True(t, a.Next())
	require.Equal(t, 2, a.Value())

	require.True(t, b.Next())
	require.Equal(t, 1, b.Value())
}

// TestIterator_InvalidatedByMutation checks every mutator invalidates cursors.
func TestIterator_InvalidatedByMutation(t *testing.T) {
	mutators := map[string]func(l *orderedlist.List[int]){
		"Insert": func(l *orderedlist.List[int]) { l.Insert(9) },
		"Upsert": func(l *orderedlist.List[int]) { l.Upsert(1) },
		"Clear":  func(l *orderedlist.List[int]) { l.Clear() },
		"Assign": func(l *orderedlist.List[int]) {
			l.Assign(orderedlist.FromSlice(orderedlist.Natural[int](), 5))
		},
	}
	for name, mutate := range mutators {
		t.Run(name, func(t *testing.T) {
			l := orderedlist.FromSlice(orderedlist.Natural[int](), 1, 2, 3)
			it := l.Iterator()
			require.True(t, it.Next())

			mutate(l)
			require.PanicsWithValue(t, orderedlist.ErrInvalidated, func() { it.Next() })
			require.PanicsWithValue(t, orderedlist.ErrInvalidated, func() { it.Value() })
		})
	}
}

// TestAll_EarlyBreak stops cleanly when the loop body breaks.
func TestAll_EarlyBreak(t *testing.T) {
	l := orderedlist.FromSlice(orderedlist.Natural[int](), 4, 3, 2, 1)

	var got []int
	for v := range l.All() {
		if v > 2 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2}, got)
}

// TestAll_MutationPanics detects inserts performed inside the loop body.
func TestAll_MutationPanics(t *testing.T) {
	l := orderedlist.FromSlice(orderedlist.Natural[int](), 1, 2, 3)

	require.PanicsWithValue(t, orderedlist.ErrInvalidated, func() {
		for v := range l.All() {
			l.Insert(v + 10)
		}
	})
}
