// Package matching - input validation and rank tables.
//
// Every public entry point validates its Instance once, up front, and then
// works on a rankTable so that each "where does X rank Y" question is O(1).
//
// Design principles:
//   - Fail fast: malformed input never reaches the engine.
//   - No panics on user input; only sentinels from types.go, wrapped with the
//     offending index.
//   - O(n·m) worst case, one pass per side.
package matching

import "fmt"

// Validate checks the shape of in: matching per-project lengths, indices in
// range, no duplicates inside a list, and positive capacities (zero allowed
// only with WithClosedProjects).
//
// Complexity: O(n·m) time, O(max(n,m)) extra space.
func Validate(in *Instance, opts ...Option) error {
	o := newOptions(opts...)

	return validateInstance(in, &o)
}

func validateInstance(in *Instance, o *Options) error {
	if in == nil {
		return ErrNilInstance
	}

	var (
		n = in.Participants()
		m = in.Projects()
	)

	// Stage 1: per-project slices must line up.
	if len(in.Capacities) != m {
		return fmt.Errorf("%w: %d capacities for %d projects", ErrDimensionMismatch, len(in.Capacities), m)
	}
	if len(in.AcceptsUnlisted) != m {
		return fmt.Errorf("%w: %d accept-unlisted flags for %d projects", ErrDimensionMismatch, len(in.AcceptsUnlisted), m)
	}

	// Stage 2: capacities.
	var (
		j, c  int
		least = 1
	)
	if o.AllowClosedProjects {
		least = 0
	}
	for j, c = range in.Capacities {
		if c < least {
			return fmt.Errorf("%w: project %d has capacity %d", ErrNonPositiveCapacity, j, c)
		}
	}

	// Stage 3: preference lists of both sides.
	var i int
	for i = 0; i < n; i++ {
		if err := validateList(in.ParticipantPrefs[i], m); err != nil {
			return fmt.Errorf("participant %d: %w", i, err)
		}
	}
	for j = 0; j < m; j++ {
		if err := validateList(in.ProjectPrefs[j], n); err != nil {
			return fmt.Errorf("project %d: %w", j, err)
		}
	}

	return nil
}

// validateList enforces entries in [0..bound-1] without repetition.
func validateList(list []int, bound int) error {
	seen := make(map[int]struct{}, len(list))

	var (
		k, v int
		ok   bool
	)
	for k, v = range list {
		if v < 0 || v >= bound {
			return fmt.Errorf("%w: entry %d is %d, want [0..%d)", ErrIndexOutOfRange, k, v, bound)
		}
		if _, ok = seen[v]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicatePreference, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// validateOrder enforces that order is a permutation of 0..n-1.
// A nil order is accepted and means the identity order.
func validateOrder(order []int, n int) error {
	if order == nil {
		return nil
	}
	if len(order) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidOrder, len(order), n)
	}
	seen := make([]bool, n)
	for k, s := range order {
		if s < 0 || s >= n || seen[s] {
			return fmt.Errorf("%w: entry %d is %d", ErrInvalidOrder, k, s)
		}
		seen[s] = true
	}

	return nil
}

// validateMatching checks length and project indices of m against in.
func validateMatching(in *Instance, m Matching) error {
	if len(m) != in.Participants() {
		return fmt.Errorf("%w: length %d, want %d", ErrMatchingShape, len(m), in.Participants())
	}
	for s, p := range m {
		if p == Unmatched {
			continue
		}
		if p < 0 || p >= in.Projects() {
			return fmt.Errorf("%w: participant %d holds project %d", ErrMatchingShape, s, p)
		}
	}

	return nil
}

// rankTable answers rank queries in O(1) for a validated Instance.
type rankTable struct {
	in *Instance

	// byParticipant[s][p] is the rank of project p for participant s, -1 if unlisted.
	byParticipant [][]int

	// byProject[p][s] is the rank of participant s for project p, -1 if unlisted.
	byProject [][]int
}

// newRankTable builds both rank directions. in must already be validated.
//
// Complexity: O(n·m) time and space.
func newRankTable(in *Instance) *rankTable {
	var (
		n  = in.Participants()
		m  = in.Projects()
		rt = &rankTable{
			in:            in,
			byParticipant: make([][]int, n),
			byProject:     make([][]int, m),
		}
	)

	for s := 0; s < n; s++ {
		rt.byParticipant[s] = invertList(in.ParticipantPrefs[s], m)
	}
	for p := 0; p < m; p++ {
		rt.byProject[p] = invertList(in.ProjectPrefs[p], n)
	}

	return rt
}

// invertList turns a preference list into an index → rank lookup (-1 = absent).
func invertList(list []int, size int) []int {
	inv := make([]int, size)
	for k := range inv {
		inv[k] = -1
	}
	for r, v := range list {
		inv[v] = r
	}

	return inv
}

// projectRank returns where project p ranks participant s.
// listed is false for an unlisted participant; rank is then len(list),
// i.e. behind every listed participant.
func (rt *rankTable) projectRank(p, s int) (rank int, listed bool) {
	r := rt.byProject[p][s]
	if r < 0 {
		return len(rt.in.ProjectPrefs[p]), false
	}

	return r, true
}

// acceptable reports whether project p would ever hold participant s.
func (rt *rankTable) acceptable(p, s int) bool {
	return rt.byProject[p][s] >= 0 || rt.in.AcceptsUnlisted[p]
}

// participantRank returns where participant s ranks project p, -1 if unlisted.
func (rt *rankTable) participantRank(s, p int) int {
	return rt.byParticipant[s][p]
}

// worstHeld returns the position inside held of the worst-ranked participant
// at project p and its rank. Ties go to the earliest position. For an empty
// held set it returns (-1, -1).
//
// Complexity: O(len(held)).
func (rt *rankTable) worstHeld(p int, held []int) (pos, rank int) {
	pos, rank = -1, -1

	var k, r int
	for k = range held {
		r, _ = rt.projectRank(p, held[k])
		if r > rank {
			pos, rank = k, r
		}
	}

	return pos, rank
}
