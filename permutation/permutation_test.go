package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quartal/permutation"
)

func TestFromDisjointCycles(t *testing.T) {
	p, err := permutation.FromDisjointCycles([][]int{{0, 2, 3}, {1}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 0}, p)
}

func TestFromDisjointCycles_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cycles [][]int
	}{
		{"duplicate", [][]int{{0, 1}, {1}}},
		{"gap", [][]int{{0, 3}}},
		{"negative", [][]int{{-1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := permutation.FromDisjointCycles(tt.cycles)
			assert.ErrorIs(t, err, permutation.ErrInvalidArgument)
		})
	}
}

func TestDisjointCycles_RoundTrip(t *testing.T) {
	p := []int{3, 0, 4, 1, 2, 5}
	cycles, err := permutation.DisjointCycles(p)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3, 1}, {2, 4}, {5}}, cycles)

	back, err := permutation.FromDisjointCycles(cycles)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestOrder(t *testing.T) {
	o, err := permutation.Order([]int{3, 0, 4, 1, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, 6, o)

	o, err = permutation.Order(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, o)

	_, err = permutation.Order([]int{0, 0})
	assert.ErrorIs(t, err, permutation.ErrInvalidArgument)
}

func TestGCDLCM(t *testing.T) {
	assert.Equal(t, 4, permutation.GCD(12, -8))
	assert.Equal(t, 5, permutation.GCD(0, 5))
	assert.Equal(t, 0, permutation.GCD(0, 0))
	assert.Equal(t, 24, permutation.LCM(12, 8))
	assert.Equal(t, 0, permutation.LCM(0, 8))
	assert.Equal(t, 6, permutation.LCM(-3, 2))
}

func TestRotate(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"d", "a", "b", "c"}, permutation.Rotate(s, 1))
	assert.Equal(t, []string{"b", "c", "d", "a"}, permutation.Rotate(s, -1))
	assert.Equal(t, s, permutation.Rotate(s, 4))
	assert.Equal(t, s, permutation.Rotate(s, 0))
	assert.Equal(t, []string{"a", "b", "c", "d"}, s, "input untouched")
	assert.Empty(t, permutation.Rotate([]int{}, 3))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, permutation.Count(3, []int{3, 1, 3}))
	assert.Equal(t, 0, permutation.Count("x", nil))
}
