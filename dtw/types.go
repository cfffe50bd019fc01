package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option (Window < -1, negative or NaN penalty).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) matrix; allows path recovery.
//     Memory: O(n·m).
//
//   - TwoRows: keep only the current and previous row; distance only.
//     Memory: O(m).
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery.
	TwoRows
)

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe–Chiba band);
//     NoWindow (-1) means unconstrained, 0 allows only the diagonal.
//   - SlopePenalty: cost added to every insertion/deletion step.
//   - ReturnPath: backtrack and return the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode: FullMatrix or TwoRows storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only setup.
func DefaultOptions() Options {
	return Options{
		Window:     NoWindow,
		MemoryMode: TwoRows,
	}
}

// Coord is one cell (I into a, J into b) of a warping path.
type Coord struct {
	I, J int
}
