// Package matching - egalitarian cost of a matching.
//
// The cost of a matched pair (s, p) is the rank of p in s's list plus the
// rank of s in p's list, where an unlisted participant accepted by p ranks
// len(ProjectPrefs[p]). Unmatched participants add nothing, so the cost of
// a matching is never negative and a low cost means both sides are served
// close to the top of their lists.
package matching

// EgalitarianCost returns the egalitarian cost of m.
//
// Errors: validation sentinels, ErrMatchingShape, ErrUnacceptablePair.
// Neither in nor m is modified.
//
// Complexity: O(n·m) for the rank table, O(n) for the sum.
func EgalitarianCost(in *Instance, m Matching) (int, error) {
	o := DefaultOptions()
	o.AllowClosedProjects = true // cost does not depend on capacity
	if err := validateInstance(in, &o); err != nil {
		return 0, err
	}
	if err := validateMatching(in, m); err != nil {
		return 0, err
	}

	return egalitarianCost(newRankTable(in), m)
}

// egalitarianCost is the unchecked evaluator; m must have a valid shape.
func egalitarianCost(rt *rankTable, m Matching) (int, error) {
	if err := checkLegal(rt, m); err != nil {
		return 0, err
	}

	var (
		total int
		r     int
	)
	for s, p := range m {
		if p == Unmatched {
			continue
		}
		r, _ = rt.projectRank(p, s)
		total += rt.participantRank(s, p) + r
	}

	return total, nil
}
