package sample

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, size := range []int{1, 5, DefaultSize, 30, 99} {
		seq, err := Sorted(r, size)
		require.NoError(t, err)
		require.Len(t, seq, size)
		assert.True(t, sort.IntsAreSorted(seq))

		seen := map[int]bool{}
		for _, v := range seq {
			assert.GreaterOrEqual(t, v, Min)
			assert.LessOrEqual(t, v, Max)
			assert.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	}
}

func TestSorted_Deterministic(t *testing.T) {
	a, _ := Sorted(rand.New(rand.NewSource(1)), 12)
	b, _ := Sorted(rand.New(rand.NewSource(1)), 12)
	assert.Equal(t, a, b)
}

func TestSorted_BadSize(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	_, err := Sorted(r, 0)
	assert.Error(t, err)
	_, err = Sorted(r, 100)
	assert.Error(t, err)
}
