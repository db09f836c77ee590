// Package matching_test provides fixtures shared across *_test.go files:
// hand-checked instances, a seeded random instance generator and a
// constant random source for pinning FillVacancies draws.
package matching_test

import (
	"math/rand"

	"github.com/katalvlaran/lvmatch/matching"
)

// seedDet is the fixed seed used by randomized fixtures.
const seedDet = int64(20240611)

// threeByThree is the reference instance: every participant gets its first
// choice and every project ranks its holder first, so the optimum is
// [0 2 1] with cost 0. Project 1 refuses unlisted participants.
func threeByThree() *matching.Instance {
	return &matching.Instance{
		ParticipantPrefs: [][]int{{0, 1, 2}, {2, 0, 1}, {1, 0, 2}},
		ProjectPrefs:     [][]int{{0, 1}, {2, 0}, {1, 0}},
		Capacities:       []int{1, 1, 1},
		AcceptsUnlisted:  []bool{true, false, true},
	}
}

// unlistedTie has two participants who both want project 0 first. Project 0
// lists nobody but accepts unlisted participants, so both rank 0 there and
// whoever proposes first keeps it:
//
//	order [0 1] ⇒ [0 1], cost 2
//	order [1 0] ⇒ [1 0], cost 1
func unlistedTie() *matching.Instance {
	return &matching.Instance{
		ParticipantPrefs: [][]int{{0, 1}, {0, 1}},
		ProjectPrefs:     [][]int{{}, {0, 1}},
		Capacities:       []int{1, 1},
		AcceptsUnlisted:  []bool{true, false},
	}
}

// crowdedUnlisted has one seat at a project that lists nobody but accepts
// anyone, and two participants who want nothing else.
func crowdedUnlisted() *matching.Instance {
	return &matching.Instance{
		ParticipantPrefs: [][]int{{0}, {0}},
		ProjectPrefs:     [][]int{{}},
		Capacities:       []int{1},
		AcceptsUnlisted:  []bool{true},
	}
}

// leftover has participant 1 lose project 0 to participant 0 and
// participant 2 rank nothing; project 1 lists nobody and has two seats.
func leftover() *matching.Instance {
	return &matching.Instance{
		ParticipantPrefs: [][]int{{0}, {0}, {}},
		ProjectPrefs:     [][]int{{0, 1, 2}, {}},
		Capacities:       []int{1, 2},
		AcceptsUnlisted:  []bool{false, false},
	}
}

// cloneInstance deep-copies in so tests can detect mutation.
func cloneInstance(in *matching.Instance) *matching.Instance {
	cp := &matching.Instance{
		ParticipantPrefs: make([][]int, len(in.ParticipantPrefs)),
		ProjectPrefs:     make([][]int, len(in.ProjectPrefs)),
		Capacities:       append([]int(nil), in.Capacities...),
		AcceptsUnlisted:  append([]bool(nil), in.AcceptsUnlisted...),
	}
	for i := range in.ParticipantPrefs {
		cp.ParticipantPrefs[i] = append([]int{}, in.ParticipantPrefs[i]...)
	}
	for j := range in.ProjectPrefs {
		cp.ProjectPrefs[j] = append([]int{}, in.ProjectPrefs[j]...)
	}

	return cp
}

// randomInstance builds a valid instance with n participants and m projects:
// partial lists of random length, capacities in [1..maxCap], random flags.
func randomInstance(r *rand.Rand, n, m, maxCap int) *matching.Instance {
	in := &matching.Instance{
		ParticipantPrefs: make([][]int, n),
		ProjectPrefs:     make([][]int, m),
		Capacities:       make([]int, m),
		AcceptsUnlisted:  make([]bool, m),
	}
	for i := 0; i < n; i++ {
		in.ParticipantPrefs[i] = r.Perm(m)[:r.Intn(m+1)]
	}
	for j := 0; j < m; j++ {
		in.ProjectPrefs[j] = r.Perm(n)[:r.Intn(n+1)]
		in.Capacities[j] = 1 + r.Intn(maxCap)
		in.AcceptsUnlisted[j] = r.Intn(2) == 0
	}

	return in
}

// zeroSource is a rand.Source that always yields 0, so Intn(k) is always 0
// and FillVacancies always picks the lowest-indexed vacant project.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

// lowestVacant returns a *rand.Rand backed by zeroSource.
func lowestVacant() *rand.Rand { return rand.New(zeroSource{}) }

// occupancy counts holders per project.
func occupancy(m matching.Matching, projects int) []int {
	occ := make([]int, projects)
	for _, p := range m {
		if p != matching.Unmatched {
			occ[p]++
		}
	}

	return occ
}

// contains reports whether v appears in list.
func contains(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}

	return false
}
