package hadamard_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quartal/hadamard"
	"github.com/katalvlaran/quartal/matrix"
)

func TestSylvester(t *testing.T) {
	h, err := hadamard.Sylvester(1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {1, -1}}, h.ToRows())

	h, err = hadamard.Sylvester(2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, 1, 1, 1},
		{1, -1, 1, -1},
		{1, 1, -1, -1},
		{1, -1, -1, 1},
	}, h.ToRows())

	_, err = hadamard.Sylvester(0)
	require.ErrorIs(t, err, hadamard.ErrInvalidOrder)
}

func TestSylvester_Orthogonal(t *testing.T) {
	for order := 1; order <= 5; order++ {
		h, err := hadamard.Sylvester(order)
		require.NoError(t, err)
		assert.Equal(t, 1<<order, h.Rows())
		assert.Equal(t, order, hadamard.Order(h))
		assert.NoError(t, hadamard.Verify(h), "order %d", order)
	}
}

func TestSylvester_ReturnsCopies(t *testing.T) {
	h, err := hadamard.Sylvester(2)
	require.NoError(t, err)
	require.NoError(t, h.Set(0, 0, 42))

	again, err := hadamard.Sylvester(2)
	require.NoError(t, err)
	v, _ := again.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestSylvester_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*matrix.Dense, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = hadamard.Sylvester(4)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.True(t, results[0].Equal(r))
	}
}

func TestExpand(t *testing.T) {
	h2, err := hadamard.Sylvester(2)
	require.NoError(t, err)
	h3, err := hadamard.Sylvester(3)
	require.NoError(t, err)

	e, err := hadamard.Expand(h2)
	require.NoError(t, err)
	assert.True(t, h3.Equal(e))
	assert.Equal(t, 3, hadamard.Order(e))
}

func TestDeterminantOfH1(t *testing.T) {
	d, err := matrix.Determinant(hadamard.H1())
	require.NoError(t, err)
	assert.InDelta(t, -2, d, 1e-12)
}

func TestSequency(t *testing.T) {
	assert.Equal(t, 0, hadamard.Sequency([]float64{1, 1, 1, 1}))
	assert.Equal(t, 3, hadamard.Sequency([]float64{1, -1, 1, -1}))
	assert.Equal(t, 1, hadamard.Sequency([]float64{1, 1, -1, -1}))
	assert.Equal(t, 2, hadamard.Sequency([]float64{1, -1, -1, 1}))
	assert.Equal(t, 0, hadamard.Sequency([]float64{1, 0, -1}))
	assert.Equal(t, 0, hadamard.Sequency(nil))
}

func TestSortBySequency(t *testing.T) {
	w, err := hadamard.Walsh(2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, 1, 1, 1},
		{1, 1, -1, -1},
		{1, -1, -1, 1},
		{1, -1, 1, -1},
	}, w.ToRows())

	w, err = hadamard.Walsh(4)
	require.NoError(t, err)
	for i := 0; i < w.Rows(); i++ {
		row, _ := w.Row(i)
		assert.Equal(t, i, hadamard.Sequency(row), "row %d", i)
	}
	assert.NoError(t, hadamard.Verify(w))
}

func TestSortBySequency_Stable(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, -1}, {2, 2}, {-1, 1}, {3, 3}})
	require.NoError(t, err)
	s, err := hadamard.SortBySequency(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 2}, {3, 3}, {1, -1}, {-1, 1}}, s.ToRows())

	_, err = hadamard.SortBySequency(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVerify_Rejects(t *testing.T) {
	rect, _ := matrix.NewFromRows([][]float64{{1, 1}})
	require.ErrorIs(t, hadamard.Verify(rect), matrix.ErrNonSquare)

	notPM, _ := matrix.NewFromRows([][]float64{{1, 2}, {1, -1}})
	require.ErrorIs(t, hadamard.Verify(notPM), hadamard.ErrNotHadamard)

	notOrth, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 1}})
	require.ErrorIs(t, hadamard.Verify(notOrth), hadamard.ErrNotHadamard)
}
