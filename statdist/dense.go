// Package statdist provides a small row-major dense matrix (grounded on
// the teacher's matrix.Dense: a flat backing slice, O(1) bounds-checked
// At/Set) and a power-iteration stationary-distribution estimator used
// to validate the empirical node-visitation frequency a random-walk
// corpus should converge to (SPEC_FULL §8 scenario S6).
package statdist

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("statdist: dimensions must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside valid range.
var ErrIndexOutOfBounds = errors.New("statdist: index out of bounds")

// Dense is a row-major matrix of float64 values; r is rows, c is
// columns, and data holds r*c elements.
type Dense struct {
	r, c int
	data []float64
}

// NewDense creates an r×c Dense matrix initialized to zero.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.index(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}
