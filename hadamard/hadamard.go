// SPDX-License-Identifier: MIT

// Package hadamard builds Sylvester-type Hadamard matrices and orders their
// rows by sequency (Walsh order).
//
// What & Why:
//
//	H1 = [[1, 1], [1, -1]] and H(k) = H1 ⊗ H(k−1), so H(k) is 2^k × 2^k.
//	Every row is a ±1 pattern; read as rhythms, rows with few sign changes
//	are slow pulses and rows with many are fast ones. Sorting rows by the
//	number of sign changes gives the Walsh ordering.
//
// Concurrency:
//
//	Sylvester memoises every order it has built behind a mutex and hands out
//	copies, so callers may mutate results freely and call from any goroutine.
//
// Complexity:
//
//	Building H(k) from H(k−1) is O(4^k). Sequency is O(n), SortBySequency
//	O(n² + n log n) for an n×n matrix.
package hadamard

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/katalvlaran/quartal/matrix"
)

var (
	// ErrInvalidOrder is returned for an order below 1.
	ErrInvalidOrder = errors.New("hadamard: order must be >= 1")

	// ErrNotHadamard is returned by Verify when entries are not ±1 or rows
	// are not mutually orthogonal.
	ErrNotHadamard = errors.New("hadamard: matrix is not a Hadamard matrix")
)

// h1Rows is the order-1 seed.
var h1Rows = [][]float64{{1, 1}, {1, -1}}

// memo holds H(1..len(mats)); mats[k-1] is H(k).
var memo struct {
	mu   sync.Mutex
	mats []*matrix.Dense
}

// H1 returns a fresh copy of the order-1 seed matrix.
func H1() *matrix.Dense {
	h, _ := matrix.NewFromRows(h1Rows) // literal is rectangular

	return h
}

// Sylvester returns H(order), a 2^order × 2^order Hadamard matrix.
//
// Implementation:
//   - Stage 1: reject order < 1.
//   - Stage 2: under the memo lock, extend the cache with H1 ⊗ H(k−1) until
//     it reaches order.
//   - Stage 3: return a copy of the cached matrix.
//
// Errors:
//   - ErrInvalidOrder.
func Sylvester(order int) (*matrix.Dense, error) {
	if order < 1 {
		return nil, fmt.Errorf("Sylvester(%d): %w", order, ErrInvalidOrder)
	}

	memo.mu.Lock()
	defer memo.mu.Unlock()
	if len(memo.mats) == 0 {
		memo.mats = append(memo.mats, H1())
	}
	for len(memo.mats) < order {
		next, err := Expand(memo.mats[len(memo.mats)-1])
		if err != nil {
			return nil, fmt.Errorf("Sylvester(%d): %w", order, err)
		}
		memo.mats = append(memo.mats, next)
	}

	return memo.mats[order-1].Copy(), nil
}

// Expand returns H1 ⊗ h, doubling both dimensions.
func Expand(h matrix.Matrix) (*matrix.Dense, error) {
	out, err := matrix.Kronecker(H1(), h)
	if err != nil {
		return nil, fmt.Errorf("Expand: %w", err)
	}

	return out, nil
}

// Order returns round(log2(cols)), the k for which h is H(k).
func Order(h matrix.Matrix) int {
	return int(math.Round(math.Log2(float64(h.Cols()))))
}

// Sequency counts the sign changes between neighbouring entries of row.
// Zero entries never count as a change.
func Sequency(row []float64) int {
	n := 0
	for i := 1; i < len(row); i++ {
		if row[i]*row[i-1] < 0 {
			n++
		}
	}

	return n
}

// SortBySequency returns a copy of h whose rows are ordered by ascending
// sequency. Rows of equal sequency keep their relative order.
func SortBySequency(h *matrix.Dense) (*matrix.Dense, error) {
	if h == nil {
		return nil, fmt.Errorf("SortBySequency: %w", matrix.ErrNilMatrix)
	}
	rows := h.ToRows()
	slices.SortStableFunc(rows, func(a, b []float64) int {
		return Sequency(a) - Sequency(b)
	})

	return matrix.NewFromRows(rows)
}

// Walsh returns H(order) in sequency order.
func Walsh(order int) (*matrix.Dense, error) {
	h, err := Sylvester(order)
	if err != nil {
		return nil, err
	}

	return SortBySequency(h)
}

// Verify checks that h is square, has only ±1 entries and satisfies
// H·Hᵀ = n·I.
//
// Errors:
//   - matrix.ErrNonSquare for a rectangular h.
//   - ErrNotHadamard otherwise.
func Verify(h *matrix.Dense) error {
	if err := matrix.ValidateSquare(h); err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	bad := false
	h.Do(func(_, _ int, v float64) bool {
		bad = v != 1 && v != -1

		return !bad
	})
	if bad {
		return fmt.Errorf("Verify: entry not ±1: %w", ErrNotHadamard)
	}

	ht, err := matrix.Transpose(h)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	gram, err := matrix.Mul(h, ht)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	id, _ := matrix.Identity(h.Rows())
	want, _ := matrix.Scale(id, float64(h.Rows()))
	if !gram.Equal(want) {
		return fmt.Errorf("Verify: H·Hᵀ != n·I: %w", ErrNotHadamard)
	}

	return nil
}
