// Package matrix provides the small dense linear-algebra layer behind the
// Hadamard transforms.
//
// What & Why:
//
//	Dense is a row-major float64 matrix with error-returning accessors.
//	Kernels (Mul, Transpose, Scale, Kronecker, Minor, Determinant) accept the
//	Matrix interface and return freshly allocated *Dense values; operands are
//	never mutated. Loop orders are fixed, so results are deterministic.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Mul is O(r·n·c), Kronecker O(r₁c₁r₂c₂), Determinant O(n³).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
