package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quartal/dtw"
	"github.com/katalvlaran/quartal/numeral"
)

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput
// when either input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	_, _, err = dtw.DTW([]float64{1, 2, 3}, nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_BadOptions ensures Window < -1 and a negative penalty trigger ErrBadInput.
func TestDTW_BadOptions(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -2
	_, _, err := dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput)

	opts = dtw.DefaultOptions()
	opts.SlopePenalty = -1
	_, _, err = dtw.DTW([]float64{1}, []float64{1}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput)
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with TwoRows errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.TwoRows

	_, _, err := dtw.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix)
}

// TestDTW_BasicDistance verifies that identical sequences have zero distance
// and no path is returned by default.
func TestDTW_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}

	dist, path, err := dtw.DTW(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Nil(t, path)
}

// TestDTW_SubsequencePath checks a perfect stretched match and its path.
func TestDTW_SubsequencePath(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 2, 3}, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Equal(t, []dtw.Coord{{I: 0, J: 0}, {I: 1, J: 1}, {I: 1, J: 2}, {I: 2, J: 3}}, path)
}

// TestDTW_WindowConstraint verifies that window 0 with a length mismatch
// yields +Inf and no path.
func TestDTW_WindowConstraint(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.MemoryMode = dtw.FullMatrix
	opts.ReturnPath = true

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))
	assert.Nil(t, path)

	opts.Window = 1
	dist, _, err = dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist)
}

// TestDTW_SlopePenalty ensures one forced stretch costs exactly the penalty.
func TestDTW_SlopePenalty(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2, 3}

	opts := dtw.DefaultOptions()
	dist0, _, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist0)

	opts.SlopePenalty = 1.0
	dist1, _, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist1)
}

// TestDTW_TwoRowsMatchesFullMatrix confirms both memory modes agree.
func TestDTW_TwoRowsMatchesFullMatrix(t *testing.T) {
	a := []float64{0, 1, 2, 3, 5, 4}
	b := []float64{0, 1, 1, 2, 3, 3, 6}
	for _, window := range []int{dtw.NoWindow, 1, 2, 3} {
		full := dtw.Options{Window: window, SlopePenalty: 0.25, MemoryMode: dtw.FullMatrix}
		rows := dtw.Options{Window: window, SlopePenalty: 0.25, MemoryMode: dtw.TwoRows}

		d1, _, err := dtw.DTW(a, b, &full)
		require.NoError(t, err)
		d2, path, err := dtw.DTW(a, b, &rows)
		require.NoError(t, err)
		assert.Equal(t, d1, d2, "window=%d", window)
		assert.Nil(t, path)
	}
}

func TestSeries(t *testing.T) {
	b, err := numeral.ParseBinary("10010010")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 2}, dtw.Series(b))

	empty, err := numeral.ParseBinary("0000")
	require.NoError(t, err)
	assert.Empty(t, dtw.Series(empty))
}

func TestRhythmDistance(t *testing.T) {
	tresillo, err := numeral.BinaryFromComposition([]int{3, 3, 2})
	require.NoError(t, err)
	stretched, err := numeral.BinaryFromComposition([]int{3, 3, 3, 2})
	require.NoError(t, err)
	far, err := numeral.BinaryFromComposition([]int{1, 1, 6})
	require.NoError(t, err)

	d, _, err := dtw.RhythmDistance(tresillo, stretched, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	d, _, err = dtw.RhythmDistance(tresillo, far, nil)
	require.NoError(t, err)
	assert.Equal(t, 8.0, d)

	back, _, err := dtw.RhythmDistance(far, tresillo, nil)
	require.NoError(t, err)
	assert.Equal(t, d, back, "distance is symmetric")

	silent, _ := numeral.ParseBinary("0000")
	_, _, err = dtw.RhythmDistance(tresillo, silent, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
}
