// File: image_in_kernel.go
// Role: the "image-in-kernel" change of basis: given
// consecutive boundaries A = ∂ₖ and B = ∂_{k+1}, express im(∂_{k+1}) in a
// basis of ker(∂ₖ) so that a subsequent Smith Normal Form on the result
// computes H_k directly.
package linalg

import "math/big"

// ImageInKernel expresses im(∂_{k+1}) in a basis of ker(∂ₖ): A has rows =
// (k-1)-simplices, cols = k-simplices (i.e. A = ∂ₖ); B has rows =
// k-simplices, cols = (k+1)-simplices (i.e. B = ∂_{k+1}), so A.Cols() must
// equal B.Rows(). The column ops that bring A to column echelon form are
// replayed, in the same order they were recorded, as their row-operation
// inverses against a clone of B; the result is then restricted to the rows
// corresponding to the zero columns of echelon(A) - a basis of ker(A) - and
// returned as the caller's new "B in kernel-basis coordinates."
//
// Complexity: O(rows(A)*cols(A)*min + rows(B)*cols(B)*len(ops)) for the
// echelon pass and the row-op replay respectively.
func ImageInKernel(a, b *IntMatrix) (*IntMatrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}

	echelonA, ops, err := ColumnEchelon(a)
	if err != nil {
		return nil, err
	}

	work := b.Clone()
	for _, op := range ops {
		switch op.Kind {
		case ColSwap:
			work.swapRows(op.I, op.J)
		case ColNegate:
			work.negateRow(op.I)
		case ColAddMultiple:
			// Original: col[J] += Factor * col[I], i.e. right-multiplication
			// by E = I + Factor*e(I,J). Its inverse, applied on the left,
			// is row[I] -= Factor * row[J].
			neg := new(big.Int).Neg(op.Factor)
			work.addRowMultiple(op.I, op.J, neg)
		}
	}

	zeroCols := zeroColumnIndices(echelonA)
	out, err := NewIntMatrix(len(zeroCols), b.Cols())
	if err != nil {
		return nil, err
	}
	for newRow, srcRow := range zeroCols {
		for c := 0; c < b.Cols(); c++ {
			v, _ := work.At(srcRow, c)
			_ = out.Set(newRow, c, v)
		}
	}

	return out, nil
}

// zeroColumnIndices returns the column indices of m that are entirely
// zero across every row.
func zeroColumnIndices(m *IntMatrix) []int {
	var out []int
	for c := 0; c < m.cols; c++ {
		zero := true
		for r := 0; r < m.rows; r++ {
			if m.data[m.idx(r, c)].Sign() != 0 {
				zero = false
				break
			}
		}
		if zero {
			out = append(out, c)
		}
	}

	return out
}
