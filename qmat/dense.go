// SPDX-License-Identifier: MIT

// Package qmat: Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex128 buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, fresh allocations).

package qmat

import (
	"fmt"
	"strings"
)

// error context tags used by denseErrorf.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps a sentinel with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Quantum state vectors are represented as n×1 column matrices.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// FromSlice creates an r×c Dense from a flat row-major slice.
// The slice is copied; the caller keeps ownership of data.
// Returns ErrInvalidDimensions or ErrBadData on shape violations.
func FromSlice(rows, cols int, data []complex128) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrBadData
	}
	buf := make([]complex128, len(data))
	copy(buf, data)
	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows creates a Dense from a slice of equally sized rows.
// Returns ErrInvalidDimensions for empty input and ErrBadData for ragged rows.
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	buf := make([]complex128, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrBadData
		}
		buf = append(buf, row...)
	}
	return &Dense{r: len(rows), c: c, data: buf}, nil
}

// NewVector creates an n×1 column vector from the given amplitudes.
func NewVector(data []complex128) (*Dense, error) {
	return FromSlice(len(data), 1, data)
}

// Identity creates the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether the matrix is square.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsVector reports whether the matrix is an n×1 column vector.
func (m *Dense) IsVector() bool { return m.c == 1 }

// indexOf computes the flat index for (row, col) or reports an out-of-bounds access.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}
	return row*m.c + col, nil
}

// At returns the element at (row, col), or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return m.data[idx], nil
}

// Set assigns v at (row, col), or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)
	return &Dense{r: m.r, c: m.c, data: buf}
}

// Raw returns a copy of the flat row-major backing data.
// Mutating the returned slice does not affect the matrix.
func (m *Dense) Raw() []complex128 {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)
	return buf
}

// String renders the matrix row by row, mainly for debugging and tests.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}
