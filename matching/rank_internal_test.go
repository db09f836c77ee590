package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankTable_WorstHeld(t *testing.T) {
	in := &Instance{
		ParticipantPrefs: [][]int{{0}, {0}, {0}, {0}},
		ProjectPrefs:     [][]int{{2, 0}},
		Capacities:       []int{3},
		AcceptsUnlisted:  []bool{true},
	}
	rt := newRankTable(in)

	r, listed := rt.projectRank(0, 0)
	require.True(t, listed)
	require.Equal(t, 1, r)

	r, listed = rt.projectRank(0, 3)
	require.False(t, listed)
	require.Equal(t, 2, r)

	// Two unlisted holders tie at rank 2; the earlier one is the worst.
	pos, rank := rt.worstHeld(0, []int{2, 1, 3})
	require.Equal(t, 1, pos)
	require.Equal(t, 2, rank)

	pos, rank = rt.worstHeld(0, nil)
	require.Equal(t, -1, pos)
	require.Equal(t, -1, rank)

	require.Equal(t, 0, rt.participantRank(1, 0))
	require.True(t, rt.acceptable(0, 3))
}

func TestMatchingKey(t *testing.T) {
	require.Equal(t, "0,-1,2,", Matching{0, Unmatched, 2}.key())
	require.NotEqual(t, Matching{1, 12}.key(), Matching{11, 2}.key())
}
