package matching_test

import (
	"testing"

	"github.com/katalvlaran/lvmatch/matching"
	"github.com/stretchr/testify/require"
)

func TestIsStable(t *testing.T) {
	spare := &matching.Instance{
		ParticipantPrefs: [][]int{{0, 1}},
		ProjectPrefs:     [][]int{{0}, {0}},
		Capacities:       []int{1, 1},
		AcceptsUnlisted:  []bool{false, false},
	}
	refusing := &matching.Instance{
		ParticipantPrefs: [][]int{{0, 1}},
		ProjectPrefs:     [][]int{{}, {0}},
		Capacities:       []int{1, 1},
		AcceptsUnlisted:  []bool{false, false},
	}
	single := &matching.Instance{
		ParticipantPrefs: [][]int{{0}, {0}},
		ProjectPrefs:     [][]int{{0, 1}},
		Capacities:       []int{1},
		AcceptsUnlisted:  []bool{false},
	}

	cases := []struct {
		name string
		in   *matching.Instance
		m    matching.Matching
		opts []matching.Option
		want bool
	}{
		{"optimum", threeByThree(), matching.Matching{0, 2, 1}, nil, true},
		{"listed beats unlisted holder", threeByThree(), matching.Matching{1, 2, 0}, nil, false},
		{"spare capacity blocks", spare, matching.Matching{1}, nil, false},
		{"refusing project never blocks", refusing, matching.Matching{1}, nil, true},
		{"over capacity", single, matching.Matching{0, 0}, nil, false},
		{"unmatched ignored by default", single, matching.Matching{matching.Unmatched, 0}, nil, true},
		{"unmatched blocks when asked", single, matching.Matching{matching.Unmatched, 0},
			[]matching.Option{matching.WithUnmatchedBlocking()}, false},
		{"unmatched loser cannot block", single, matching.Matching{0, matching.Unmatched},
			[]matching.Option{matching.WithUnmatchedBlocking()}, true},
		{"unlisted tie holds", unlistedTie(), matching.Matching{0, 1}, nil, true},
		{"unlisted tie other side", unlistedTie(), matching.Matching{1, 0}, nil, true},
		{"everyone unmatched", threeByThree(), matching.Matching{-1, -1, -1}, nil, true},
		{"everyone unmatched, strict", threeByThree(), matching.Matching{-1, -1, -1},
			[]matching.Option{matching.WithUnmatchedBlocking()}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matching.IsStable(tc.in, tc.m, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestIsStable_Errors(t *testing.T) {
	in := threeByThree()

	_, err := matching.IsStable(in, matching.Matching{0, 2})
	require.ErrorIs(t, err, matching.ErrMatchingShape)

	_, err = matching.IsStable(in, matching.Matching{0, 2, 7})
	require.ErrorIs(t, err, matching.ErrMatchingShape)

	// Project 1 neither lists participant 1 nor accepts unlisted ones.
	_, err = matching.IsStable(in, matching.Matching{0, 1, matching.Unmatched})
	require.ErrorIs(t, err, matching.ErrUnacceptablePair)

	_, err = matching.IsStable(nil, matching.Matching{})
	require.ErrorIs(t, err, matching.ErrNilInstance)
}

func TestIsStable_OverflowRejected(t *testing.T) {
	in := crowdedUnlisted()
	m, err := matching.Propose(in, nil, matching.WithUnlistedOverflow())
	require.NoError(t, err)

	ok, err := matching.IsStable(in, m, matching.WithUnlistedOverflow())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsStable_Pure(t *testing.T) {
	in := threeByThree()
	before := cloneInstance(in)
	m := matching.Matching{1, 2, 0}
	mBefore := m.Clone()

	first, err := matching.IsStable(in, m)
	require.NoError(t, err)
	second, err := matching.IsStable(in, m)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, before, in)
	require.Equal(t, mBefore, m)
}
