// File: intmat.go
// Role: dense matrix over ℤ, one *big.Int per entry, row-major. Backs the
// SNF/rank/column-echelon operations, which must never silently
// overflow; math/big eliminates the fixed-width overflow failure mode
// outright.
package linalg

import (
	"fmt"
	"math/big"
)

// IntMatrix is a rows x cols matrix of arbitrary-precision integers.
type IntMatrix struct {
	rows, cols int
	data       []*big.Int // rows * cols entries, row-major
}

// NewIntMatrix allocates a rows x cols matrix initialized to zero. rows and
// cols must each be >= 0; a zero dimension is a legitimate degenerate
// matrix (e.g. ∂1 of a complex with no edges is an N x 0 matrix - the zero
// map out of a trivial space, needed so homology.IntegerHomology can read
// H_0 = Z^N for a cloud of isolated points), negative dimensions are not.
func NewIntMatrix(rows, cols int) (*IntMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewIntMatrix(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}

	return &IntMatrix{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *IntMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *IntMatrix) Cols() int { return m.cols }

func (m *IntMatrix) idx(i, j int) int { return i*m.cols + j }

// At returns the entry at (i, j).
func (m *IntMatrix) At(i, j int) (*big.Int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return nil, fmt.Errorf("IntMatrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[m.idx(i, j)], nil
}

// Set assigns v (copied) at (i, j).
func (m *IntMatrix) Set(i, j int, v *big.Int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("IntMatrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.data[m.idx(i, j)] = new(big.Int).Set(v)

	return nil
}

// SetInt64 assigns the int64 value v at (i, j); a convenience wrapper for
// callers in package boundary constructing small {-1,0,1} entries.
func (m *IntMatrix) SetInt64(i, j int, v int64) error {
	return m.Set(i, j, big.NewInt(v))
}

// Clone returns a deep copy of m.
func (m *IntMatrix) Clone() *IntMatrix {
	out := &IntMatrix{rows: m.rows, cols: m.cols, data: make([]*big.Int, len(m.data))}
	for i, v := range m.data {
		out.data[i] = new(big.Int).Set(v)
	}

	return out
}

// swapRows exchanges rows i and j in place.
func (m *IntMatrix) swapRows(i, j int) {
	if i == j {
		return
	}
	for c := 0; c < m.cols; c++ {
		a, b := m.idx(i, c), m.idx(j, c)
		m.data[a], m.data[b] = m.data[b], m.data[a]
	}
}

// swapCols exchanges columns i and j in place.
func (m *IntMatrix) swapCols(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.rows; r++ {
		a, b := m.idx(r, i), m.idx(r, j)
		m.data[a], m.data[b] = m.data[b], m.data[a]
	}
}

// negateRow negates every entry of row i in place.
func (m *IntMatrix) negateRow(i int) {
	for c := 0; c < m.cols; c++ {
		v := m.data[m.idx(i, c)]
		v.Neg(v)
	}
}

// negateCol negates every entry of column j in place.
func (m *IntMatrix) negateCol(j int) {
	for r := 0; r < m.rows; r++ {
		v := m.data[m.idx(r, j)]
		v.Neg(v)
	}
}

// addRowMultiple performs row[dst] += factor * row[src] in place.
func (m *IntMatrix) addRowMultiple(dst, src int, factor *big.Int) {
	if factor.Sign() == 0 {
		return
	}
	tmp := new(big.Int)
	for c := 0; c < m.cols; c++ {
		d := m.data[m.idx(dst, c)]
		s := m.data[m.idx(src, c)]
		tmp.Mul(factor, s)
		d.Add(d, tmp)
	}
}

// addColMultiple performs col[dst] += factor * col[src] in place.
func (m *IntMatrix) addColMultiple(dst, src int, factor *big.Int) {
	if factor.Sign() == 0 {
		return
	}
	tmp := new(big.Int)
	for r := 0; r < m.rows; r++ {
		d := m.data[m.idx(r, dst)]
		s := m.data[m.idx(r, src)]
		tmp.Mul(factor, s)
		d.Add(d, tmp)
	}
}

// Rank computes rank(M) over ℤ via Bareiss fraction-free elimination,
// reporting the number of nonzero pivots. The elimination runs on a cloned
// working copy; m itself is untouched.
//
// Complexity: O(rows * cols * min(rows,cols)) big.Int operations.
func (m *IntMatrix) Rank() int {
	w := m.Clone()
	prev := big.NewInt(1)
	r := 0
	for col := 0; col < w.cols && r < w.rows; col++ {
		pivotRow := -1
		for i := r; i < w.rows; i++ {
			if w.data[w.idx(i, col)].Sign() != 0 {
				pivotRow = i
				break
			}
		}
		if pivotRow == -1 {
			continue
		}
		w.swapRows(pivotRow, r)

		pivot := new(big.Int).Set(w.data[w.idx(r, col)])
		for i := r + 1; i < w.rows; i++ {
			for j := col + 1; j < w.cols; j++ {
				a := w.data[w.idx(i, j)]
				b := w.data[w.idx(i, col)]
				c := w.data[w.idx(r, j)]
				// a = (pivot*a - b*c) / prev ; exact by the Bareiss invariant.
				num := new(big.Int).Mul(pivot, a)
				num.Sub(num, new(big.Int).Mul(b, c))
				num.Quo(num, prev)
				a.Set(num)
			}
			w.data[w.idx(i, col)].SetInt64(0)
		}
		prev = pivot
		r++
	}

	return r
}
