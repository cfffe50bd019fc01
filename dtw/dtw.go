package dtw

import (
	"fmt"
	"math"
	"slices"
)

// step records which predecessor produced a DP cell.
type step uint8

const (
	stepMatch step = iota
	stepIns        // from (i-1, j)
	stepDel        // from (i, j-1)
)

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Algorithm:
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. For every (i, j) inside the window:
//     D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1]).
//  3. distance = D[n][m]; +∞ when the window admits no path.
//
// Ties prefer the diagonal, then insertion, then deletion, so the returned
// path is deterministic.
//
// Errors:
//   - ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix.
//
// Complexity:
//   - Time O(n·m); memory O(n·m) for FullMatrix, O(m) for TwoRows.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if o.Window < NoWindow || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, fmt.Errorf("window=%d penalty=%g: %w", o.Window, o.SlopePenalty, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	n, m := len(a), len(b)
	inf := math.Inf(1)
	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	var from [][]step
	if o.ReturnPath {
		from = make([][]step, n+1)
		for i := range from {
			from[i] = make([]step, m+1)
		}
	}
	row := func(i int) []float64 {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}

		return dp[i%2]
	}

	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	for i := 1; i <= n; i++ {
		prev, curr := row(i-1), row(i)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.Window != NoWindow && abs(i-j) > o.Window {
				curr[j] = inf
				continue
			}
			best, s := prev[j-1], stepMatch
			if v := prev[j] + o.SlopePenalty; v < best {
				best, s = v, stepIns
			}
			if v := curr[j-1] + o.SlopePenalty; v < best {
				best, s = v, stepDel
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
			if from != nil {
				from[i][j] = s
			}
		}
	}

	distance := row(n)[m]
	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	path := make([]Coord, 0, n+m)
	for i, j := n, m; i > 0 && j > 0; {
		path = append(path, Coord{I: i - 1, J: j - 1})
		switch from[i][j] {
		case stepIns:
			i--
		case stepDel:
			j--
		default:
			i--
			j--
		}
	}
	slices.Reverse(path)

	return distance, path, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
