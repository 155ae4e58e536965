// File: colop.go
// Role: ColumnEchelon and the ColOp trail it records, which ImageInKernel
// replays (as inverse row operations) against the next boundary matrix.
// Determinism: columns and rows are scanned in fixed ascending order;
// gcd-reduction picks the minimal-abs-value entry deterministically (ties
// broken by the lower column/row index, the first one found in the scan).
package linalg

import "math/big"

// ColOpKind identifies one of the three elementary integer column
// operations used by the echelon reduction: swap, negate, add an integer multiple of
// one column to another.
type ColOpKind int

const (
	// ColSwap exchanges columns I and J.
	ColSwap ColOpKind = iota
	// ColNegate negates column I (J is unused).
	ColNegate
	// ColAddMultiple performs column[J] += Factor * column[I].
	ColAddMultiple
)

// ColOp records one elementary column operation applied during
// ColumnEchelon, in the order it was applied, so ImageInKernel can replay
// each one (as its row-operation inverse) against the next boundary matrix.
type ColOp struct {
	Kind   ColOpKind
	I, J   int
	Factor *big.Int // only meaningful for ColAddMultiple
}

// ColumnEchelon reduces m to column echelon form via elementary integer
// column operations: the result is returned as a new matrix,
// together with the ordered list of operations applied, so a caller can
// replay their row-operation inverses against a matrix sharing m's column
// space (see ImageInKernel). m itself is left untouched.
//
// Column echelon form here means: there is a strictly increasing sequence
// of "pivot rows" r_1 < r_2 < ... < r_k such that column c_i is the unique
// column (among c_i..cols-1) with a nonzero entry at row r_i, and every
// column after the last pivot column is entirely zero.
//
// Complexity: O(rows * cols * min(rows,cols)) big.Int operations in the
// worst case (each row's gcd-reduction pass is itself iterative).
func ColumnEchelon(m *IntMatrix) (*IntMatrix, []ColOp, error) {
	if m == nil {
		return nil, nil, ErrNilMatrix
	}
	w := m.Clone()
	var ops []ColOp

	col := 0
	for row := 0; row < w.rows && col < w.cols; row++ {
		// Reduce row `row` among columns [col, cols) to a single nonzero
		// entry via repeated gcd-style column combination.
		for {
			nz := nonzeroCols(w, row, col)
			if len(nz) <= 1 {
				break
			}
			// Pick the column with minimal abs value as the reduction pivot.
			pivotCol := nz[0]
			for _, c := range nz[1:] {
				if absLess(w.data[w.idx(row, c)], w.data[w.idx(row, pivotCol)]) {
					pivotCol = c
				}
			}
			pivotVal := w.data[w.idx(row, pivotCol)]
			for _, c := range nz {
				if c == pivotCol {
					continue
				}
				q := new(big.Int)
				q.Quo(w.data[w.idx(row, c)], pivotVal) // truncating division is fine: we only need the remainder to shrink
				if q.Sign() != 0 {
					neg := new(big.Int).Neg(q)
					w.addColMultiple(c, pivotCol, neg)
					ops = append(ops, ColOp{Kind: ColAddMultiple, I: pivotCol, J: c, Factor: neg})
				}
			}
		}

		nz := nonzeroCols(w, row, col)
		if len(nz) == 0 {
			continue // row is all zero from col onward; next row, same col
		}
		pivotCol := nz[0]
		if w.data[w.idx(row, pivotCol)].Sign() < 0 {
			w.negateCol(pivotCol)
			ops = append(ops, ColOp{Kind: ColNegate, I: pivotCol})
		}
		if pivotCol != col {
			w.swapCols(pivotCol, col)
			ops = append(ops, ColOp{Kind: ColSwap, I: pivotCol, J: col})
		}
		col++
	}

	return w, ops, nil
}

// nonzeroCols returns the indices, within [from, w.cols), of columns with a
// nonzero entry at the given row.
func nonzeroCols(w *IntMatrix, row, from int) []int {
	var out []int
	for c := from; c < w.cols; c++ {
		if w.data[w.idx(row, c)].Sign() != 0 {
			out = append(out, c)
		}
	}

	return out
}

// absLess reports whether |a| < |b|.
func absLess(a, b *big.Int) bool {
	return new(big.Int).Abs(a).Cmp(new(big.Int).Abs(b)) < 0
}
