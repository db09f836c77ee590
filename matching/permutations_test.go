package matching_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatch/matching"
	"github.com/stretchr/testify/require"
)

func TestPermutations_LexicographicOrder(t *testing.T) {
	p := matching.NewPermutations(3)
	var got [][]int
	for {
		order, ok := p.Next()
		if !ok {
			break
		}
		got = append(got, order)
	}
	require.Equal(t, [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}, got)

	// Exhausted generators stay exhausted until Reset.
	order, ok := p.Next()
	require.False(t, ok)
	require.Nil(t, order)

	p.Reset()
	order, ok = p.Next()
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestPermutations_FreshSlices(t *testing.T) {
	p := matching.NewPermutations(2)
	first, _ := p.Next()
	first[0] = 99
	second, _ := p.Next()
	require.Equal(t, []int{1, 0}, second)
}

func TestPermutations_Boundaries(t *testing.T) {
	for _, n := range []int{-1, 0} {
		var count int
		for order := range matching.NewPermutations(n).All() {
			require.Empty(t, order)
			count++
		}
		require.Equal(t, 1, count, "n=%d", n)
	}

	var count int
	for range matching.NewPermutations(1).All() {
		count++
	}
	require.Equal(t, 1, count)
}

func TestPermutations_AllRestartsAndStopsEarly(t *testing.T) {
	p := matching.NewPermutations(4)
	_, _ = p.Next()
	_, _ = p.Next()

	var seen int
	for range p.All() {
		seen++
		if seen == 5 {
			break
		}
	}
	require.Equal(t, 5, seen)

	var total int
	for range p.All() {
		total++
	}
	require.Equal(t, 24, total)
}

func TestPermutations_CountAndDistinct(t *testing.T) {
	p := matching.NewPermutations(5)
	require.Equal(t, 120, p.Count())

	seen := make(map[[5]int]struct{})
	for order := range p.All() {
		var k [5]int
		copy(k[:], order)
		seen[k] = struct{}{}
	}
	require.Len(t, seen, 120)

	require.Equal(t, 2432902008176640000, matching.NewPermutations(20).Count())
	require.Equal(t, math.MaxInt, matching.NewPermutations(25).Count())
	require.Equal(t, 1, matching.NewPermutations(0).Count())
}
