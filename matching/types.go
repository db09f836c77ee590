package matching

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors returned by the matching package.
// Callers branch with errors.Is; call sites wrap them with index context.
var (
	// ErrNilInstance indicates that a nil *Instance was passed.
	ErrNilInstance = errors.New("matching: instance is nil")

	// ErrDimensionMismatch indicates that per-project slices disagree in length
	// (ProjectPrefs, Capacities and AcceptsUnlisted must all have one entry per project).
	ErrDimensionMismatch = errors.New("matching: dimension mismatch")

	// ErrIndexOutOfRange indicates a preference list naming a non-existent entity.
	ErrIndexOutOfRange = errors.New("matching: index out of range")

	// ErrDuplicatePreference indicates that an entity appears twice in one list.
	ErrDuplicatePreference = errors.New("matching: duplicate preference entry")

	// ErrNonPositiveCapacity indicates a capacity < 1 (or < 0 when closed projects are allowed).
	ErrNonPositiveCapacity = errors.New("matching: capacity must be positive")

	// ErrInvalidOrder indicates a proposal order that is not a permutation of 0..n-1.
	ErrInvalidOrder = errors.New("matching: proposal order is not a permutation")

	// ErrMatchingShape indicates a matching of the wrong length or with an unknown project.
	ErrMatchingShape = errors.New("matching: malformed matching")

	// ErrUnacceptablePair indicates a matched pair that one side never agreed to.
	ErrUnacceptablePair = errors.New("matching: unacceptable pair")

	// ErrInstanceTooLarge indicates that exhaustive order search was requested
	// for more participants than Options.MaxSearchParticipants.
	ErrInstanceTooLarge = errors.New("matching: instance too large for exhaustive search")

	// ErrNeedRandSource indicates that the vacancy filler was called without an RNG.
	ErrNeedRandSource = errors.New("matching: rng is required")

	// ErrUnknownSearchMode indicates an unsupported SearchMode value.
	ErrUnknownSearchMode = errors.New("matching: unknown search mode")
)

// Unmatched marks a participant without a project in a Matching.
const Unmatched = -1

// Instance is the immutable input of one matching session.
//
// Participants are indexed 0..n-1 with n = len(ParticipantPrefs);
// projects are indexed 0..m-1 with m = len(ProjectPrefs).
type Instance struct {
	// ParticipantPrefs[i] lists project indices, most preferred first.
	ParticipantPrefs [][]int

	// ProjectPrefs[j] lists participant indices, most preferred first.
	ProjectPrefs [][]int

	// Capacities[j] is the number of participants project j may hold.
	Capacities []int

	// AcceptsUnlisted[j] lets project j hold participants missing from
	// ProjectPrefs[j]; they rank behind every listed participant.
	AcceptsUnlisted []bool
}

// Participants returns n.
func (in *Instance) Participants() int { return len(in.ParticipantPrefs) }

// Projects returns m.
func (in *Instance) Projects() int { return len(in.ProjectPrefs) }

// Matching maps participant index to project index or Unmatched.
type Matching []int

// Clone returns an independent copy of m.
func (m Matching) Clone() Matching {
	if m == nil {
		return nil
	}

	return append(Matching(nil), m...)
}

// Matched returns the number of participants holding a project.
func (m Matching) Matched() int {
	var c int
	for _, p := range m {
		if p != Unmatched {
			c++
		}
	}

	return c
}

// Holdings groups participants by project, in increasing participant order.
// Entries outside [0..projects-1] (other than Unmatched) are ignored.
//
// Complexity: O(n + projects).
func (m Matching) Holdings(projects int) [][]int {
	held := make([][]int, projects)

	var s, p int
	for s, p = range m {
		if p < 0 || p >= projects {
			continue
		}
		held[p] = append(held[p], s)
	}

	return held
}

// String renders m as "[0 2 -]" with "-" for unmatched participants.
func (m Matching) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range m {
		if i > 0 {
			b.WriteByte(' ')
		}
		if p == Unmatched {
			b.WriteByte('-')
			continue
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte(']')

	return b.String()
}

// key is a compact identity used to deduplicate candidate matchings.
func (m Matching) key() string {
	var b strings.Builder
	for _, p := range m {
		b.WriteString(strconv.Itoa(p))
		b.WriteByte(',')
	}

	return b.String()
}

// SearchStats describes one run of the search driver.
type SearchStats struct {
	// Orders is the number of proposal orders fed to the engine.
	Orders int

	// Distinct is the number of pairwise different candidate matchings.
	Distinct int

	// Stable is the number of distinct candidates that passed the stability check.
	Stable int
}

// Result is the outcome of Search / Solve.
//
// Found == false means that no stable matching was produced; Matching is
// then nil and Cost is meaningless. A stable matching of cost 0 has Found == true.
type Result struct {
	Matching Matching
	Cost     int
	Found    bool

	// Filled counts participants placed by FillVacancies (Solve with WithFill only).
	Filled int

	Stats SearchStats
}
