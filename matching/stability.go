package matching

import "fmt"

// IsStable reports whether m is free of blocking pairs.
//
// Algorithm:
//  1. Rebuild per-project holdings from m; any project above capacity ⇒ false.
//  2. For every matched participant s at project q, scan the projects s
//     strictly prefers to q. Such a project p blocks with s when p would
//     accept s and either has spare capacity or ranks s strictly better
//     than its worst holder (unlisted holders rank len(ProjectPrefs[p])).
//  3. No blocking pair ⇒ true.
//
// With WithUnmatchedBlocking, unmatched participants are scanned over their
// whole list as well.
//
// Errors: validation sentinels, ErrMatchingShape, and ErrUnacceptablePair
// when m pairs a participant with a project that one side never accepted.
// Neither in nor m is modified.
//
// Complexity: O(L·c) with L the total participant list length and c the
// largest capacity.
func IsStable(in *Instance, m Matching, opts ...Option) (bool, error) {
	o := newOptions(opts...)
	if err := validateInstance(in, &o); err != nil {
		return false, err
	}
	if err := validateMatching(in, m); err != nil {
		return false, err
	}

	return isStable(newRankTable(in), m, &o)
}

// isStable is the unchecked validator; m must have a valid shape.
func isStable(rt *rankTable, m Matching, o *Options) (bool, error) {
	var (
		in   = rt.in
		held = m.Holdings(in.Projects())
		p    int
	)

	// Stage 1: capacity.
	for p = range held {
		if len(held[p]) > in.Capacities[p] {
			return false, nil
		}
	}

	// Stage 2: legality of every pair.
	if err := checkLegal(rt, m); err != nil {
		return false, err
	}

	// Stage 3: blocking pairs.
	var (
		s, q, k  int
		prefs    []int
		limit    int
		r, worst int
		listed   bool
	)
	for s, q = range m {
		prefs = in.ParticipantPrefs[s]
		if q == Unmatched {
			if !o.UnmatchedBlocking {
				continue
			}
			limit = len(prefs)
		} else {
			limit = rt.participantRank(s, q)
		}

		for k = 0; k < limit; k++ {
			p = prefs[k]
			r, listed = rt.projectRank(p, s)
			if !listed && !in.AcceptsUnlisted[p] {
				continue
			}
			if len(held[p]) < in.Capacities[p] {
				o.tracef("stability: participant %d and project %d block (spare capacity)", s, p)
				return false, nil
			}
			if _, worst = rt.worstHeld(p, held[p]); r < worst {
				o.tracef("stability: participant %d and project %d block (rank %d < %d)", s, p, r, worst)
				return false, nil
			}
		}
	}

	return true, nil
}

// checkLegal verifies that every matched participant lists its project and
// that the project lists it or accepts unlisted participants.
func checkLegal(rt *rankTable, m Matching) error {
	for s, p := range m {
		if p == Unmatched {
			continue
		}
		if rt.participantRank(s, p) < 0 || !rt.acceptable(p, s) {
			return fmt.Errorf("%w: participant %d with project %d", ErrUnacceptablePair, s, p)
		}
	}

	return nil
}
