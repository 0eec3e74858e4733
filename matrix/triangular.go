// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// indexErrorf wraps an underlying error with Triangular method context.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Triangular.%s(%d,%d): %w", method, row, col, err)
}

// Triangular is an upper-triangular matrix of int64 distances.
// rows[i] holds the values of columns i+1..n-1.
type Triangular struct {
	n    int       // number of series
	rows [][]int64 // ragged upper triangle, len(rows[i]) == n-1-i
}

// NewTriangular allocates an n×n upper-triangular matrix of zeros.
// Complexity: O(n²) time and memory.
func NewTriangular(n int) (*Triangular, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n-1-i)
	}

	return &Triangular{n: n, rows: rows}, nil
}

// FromRows adopts rows as the upper triangle of an n×n matrix, n = len(rows).
// The slices are not copied. Row i must have exactly n-1-i entries.
// Complexity: O(n).
func FromRows(rows [][]int64) (*Triangular, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}
	for i, r := range rows {
		if len(r) != n-1-i {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(r), n-1-i, ErrDimensionMismatch)
		}
	}

	return &Triangular{n: n, rows: rows}, nil
}

// Size returns n.
func (t *Triangular) Size() int {
	return t.n
}

// Row returns the stored upper-triangle slice of row i (columns i+1..n-1).
// The slice is shared with the matrix.
func (t *Triangular) Row(i int) ([]int64, error) {
	if i < 0 || i >= t.n {
		return nil, indexErrorf("Row", i, i, ErrOutOfRange)
	}

	return t.rows[i], nil
}

// At returns the distance between series i and j. The diagonal is 0 and
// (i, j) with i > j reads the mirrored cell.
// Complexity: O(1).
func (t *Triangular) At(i, j int) (int64, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, indexErrorf("At", i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, nil
	}
	if i > j {
		i, j = j, i
	}

	return t.rows[i][j-i-1], nil
}

// Set stores v for the pair (i, j), in either order.
// Complexity: O(1).
func (t *Triangular) Set(i, j int, v int64) error {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return indexErrorf("Set", i, j, ErrOutOfRange)
	}
	if i == j {
		return indexErrorf("Set", i, j, ErrDiagonal)
	}
	if i > j {
		i, j = j, i
	}
	t.rows[i][j-i-1] = v

	return nil
}

// Count returns how many stored cells equal v.
// Complexity: O(n²).
func (t *Triangular) Count(v int64) int {
	c := 0
	for _, r := range t.rows {
		for _, x := range r {
			if x == v {
				c++
			}
		}
	}

	return c
}
