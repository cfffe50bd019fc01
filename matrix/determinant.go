// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Minor returns m with row r and column c removed.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrInvalidDimensions when m has a single row or column (the result
//     would be empty).
//   - ErrOutOfRange when r or c is outside m.
func Minor(m Matrix, r, c int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	dm := dense(m)
	if r < 0 || r >= dm.r || c < 0 || c >= dm.c {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, r, c, ErrOutOfRange))
	}
	if dm.r < 2 || dm.c < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	res, _ := NewDense(dm.r-1, dm.c-1)
	k := 0
	for i := 0; i < dm.r; i++ {
		if i == r {
			continue
		}
		for j := 0; j < dm.c; j++ {
			if j == c {
				continue
			}
			res.data[k] = dm.data[i*dm.c+j]
			k++
		}
	}

	return res, nil
}

// Determinant computes det(m) by Gaussian elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); work on a private copy.
//   - Stage 2: for each column pick the row with the largest |pivot|, swap it
//     up (flipping the sign), eliminate below.
//   - Stage 3: det = sign · Π pivots. An all-zero pivot column yields 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	a := dense(m).Copy()
	n := a.r
	det := 1.0

	var i, j, k, p int
	var f float64
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(a.data[i*n+k]) > math.Abs(a.data[p*n+k]) {
				p = i
			}
		}
		if a.data[p*n+k] == 0 {
			return 0, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			det = -det
		}
		det *= a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a.data[i*n+k] / a.data[k*n+k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
		}
	}

	return det, nil
}

// Cofactor returns (−1)^(r+c) · det(Minor(m, r, c)).
func Cofactor(m Matrix, r, c int) (float64, error) {
	mi, err := Minor(m, r, c)
	if err != nil {
		return 0, fmt.Errorf("Cofactor: %w", err)
	}
	d, err := Determinant(mi)
	if err != nil {
		return 0, fmt.Errorf("Cofactor: %w", err)
	}
	if (r+c)%2 == 1 {
		d = -d
	}

	return d, nil
}
