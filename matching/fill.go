package matching

import (
	"fmt"
	"math/rand"
)

// FillVacancies assigns every unmatched participant of m, in index order,
// to a project drawn uniformly by r among those with residual vacancy at
// that moment, and decrements that vacancy. When no project has room the
// participant stays Unmatched.
//
// This is a best-effort completion: it ignores both sides' preferences,
// the accept-unlisted flags and stability. m is modified in place; the
// number of participants placed is returned. Projects already above
// capacity count as having no vacancy.
//
// Errors: ErrNeedRandSource if r is nil, ErrMatchingShape if m names a
// project outside capacities.
//
// Complexity: O(n·projects).
func FillVacancies(m Matching, capacities []int, r *rand.Rand) (int, error) {
	if r == nil {
		return 0, ErrNeedRandSource
	}

	vacancy := make([]int, len(capacities))
	copy(vacancy, capacities)
	for s, p := range m {
		if p == Unmatched {
			continue
		}
		if p < 0 || p >= len(capacities) {
			return 0, fmt.Errorf("%w: participant %d holds project %d", ErrMatchingShape, s, p)
		}
		vacancy[p]--
	}

	var (
		placed int
		open   = make([]int, 0, len(capacities))
		p      int
	)
	for s := range m {
		if m[s] != Unmatched {
			continue
		}

		open = open[:0]
		for p = range vacancy {
			if vacancy[p] > 0 {
				open = append(open, p)
			}
		}
		if len(open) == 0 {
			continue
		}

		p = pickUniform(open, r)
		m[s] = p
		vacancy[p]--
		placed++
	}

	return placed, nil
}
