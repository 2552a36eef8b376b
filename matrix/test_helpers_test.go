// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures and assertion helpers.
//
// Purpose:
//   - Provide deterministic fixtures (the 5x5 integer scenario, struct-valued
//     matrices) and brute-force oracles for property checks.
//   - Keep magic numbers out of test bodies.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

// Common shapes and values used across matrix tests.
const (
	Size5 = 5

	Default0 = 0
	Default9 = 9

	// ScenarioCount is the number of distinct cells written by addScenario.
	ScenarioCount = 11
)

// coord is an added cell: position plus value.
type coord struct {
	row, col, v int
}

// scenarioAdds is the insertion sequence of the 5x5 integer scenario,
// including two overwrites: (4,4) 7→8 and (0,4) 4→0.
var scenarioAdds = []coord{
	{3, 3, 1}, {1, 4, 2}, {2, 3, 3}, {2, 2, 0}, {1, 2, 4}, {1, 3, 2},
	{1, 1, 1}, {2, 4, 2}, {4, 4, 7}, {4, 4, 8}, {2, 0, 1}, {0, 4, 4}, {0, 4, 0},
}

// point has float coordinates; comparable.
type point struct {
	x, y float64
}

// pointInt has integer coordinates; comparable.
type pointInt struct {
	x, y int
}

// norm returns the Euclidean length of p.
func (p pointInt) norm() float64 {
	return math.Sqrt(float64(p.x*p.x + p.y*p.y))
}

// stringPair holds two strings; comparable.
type stringPair struct {
	s1, s2 string
}

// newMatrix builds a matrix and fails the test on error.
func newMatrix[T any](t testing.TB, rows, cols int, def T) *matrix.Sparse[T] {
	t.Helper()
	m, err := matrix.New(rows, cols, def)
	require.NoError(t, err)

	return m
}

// newScenario returns the 5x5 integer scenario matrix with default 0.
func newScenario(t testing.TB) *matrix.Sparse[int] {
	t.Helper()
	m := newMatrix(t, Size5, Size5, Default0)
	for _, c := range scenarioAdds {
		m.Add(c.row, c.col, c.v)
	}

	return m
}

// bruteCount evaluates pred on every cell through At.
func bruteCount[T any](m *matrix.Sparse[T], pred matrix.Predicate[T]) int {
	n := 0
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if pred(m.At(i, j)) {
				n++
			}
		}
	}

	return n
}

// requireRowMajor asserts stored elements are strictly increasing in (row, col).
func requireRowMajor[T any](t *testing.T, m *matrix.Sparse[T]) {
	t.Helper()
	prevRow, prevCol := -1, -1
	n := 0
	for e := range m.All() {
		ordered := e.Row() > prevRow || (e.Row() == prevRow && e.Col() > prevCol)
		require.Truef(t, ordered, "element (%d,%d) after (%d,%d)", e.Row(), e.Col(), prevRow, prevCol)
		prevRow, prevCol = e.Row(), e.Col()
		n++
	}
	require.Equal(t, m.ElementCount(), n, "ElementCount must equal chain length")
}

// requirePanicsWithError asserts fn panics with an error matching target.
func requirePanicsWithError(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
	}()
	fn()
}
