// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opKronecker   = "Kronecker"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
)

func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dense returns m as *Dense, copying through At when m is another
// implementation. Callers have validated m.
func dense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	out := &Dense{r: m.Rows(), c: m.Cols(), data: make([]float64, m.Rows()*m.Cols())}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			out.data[i*out.c+j], _ = m.At(i, j) // indices are in range
		}
	}

	return out
}

// Mul computes the matrix product C = A·B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j triple loop over flat row-major buffers; zero A[i,k]
//     entries are skipped.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, db := dense(a), dense(b)
	res, _ := NewDense(da.r, db.c) // shapes come from valid matrices

	var i, j, k, rowA, rowB, rowR int
	var av float64
	for i = 0; i < da.r; i++ {
		rowA = i * da.c
		rowR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm := dense(m)
	res, _ := NewDense(dm.c, dm.r)
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			res.data[j*dm.r+i] = dm.data[i*dm.c+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dense(m).Copy()
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// Kronecker returns the Kronecker (tensor) product A ⊗ B of shape
// (rA·rB)×(cA·cB): block (i, j) is A[i,j]·B.
//
// Implementation:
//   - Stage 1: validate both operands non-nil.
//   - Stage 2: for every A[i,j] write the scaled copy of B at rows i·rB..,
//     cols j·cB..; row-major order throughout.
//
// Complexity:
//   - Time O(rA·cA·rB·cB), Space the same.
func Kronecker(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	da, db := dense(a), dense(b)
	res, _ := NewDense(da.r*db.r, da.c*db.c)

	var i, j, k, l, row int
	var av float64
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			av = da.data[i*da.c+j]
			for k = 0; k < db.r; k++ {
				row = (i*db.r + k) * res.c
				for l = 0; l < db.c; l++ {
					res.data[row+j*db.c+l] = av * db.data[k*db.c+l]
				}
			}
		}
	}

	return res, nil
}
