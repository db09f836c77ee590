// Package matching computes capacity-constrained two-sided stable matchings
// of participants to projects when preference lists may be partial.
//
// 🚀 What is inside?
//
//	Propose           deferred acceptance for one proposal order, with
//	                  capacities and the accept-unlisted exception.
//	IsStable          blocking-pair check under capacity and partial lists.
//	EgalitarianCost   sum of both sides' ranks over the matched pairs.
//	Search            runs Propose over many proposal orders and keeps the
//	                  cheapest stable candidate.
//	FillVacancies     best-effort random placement of leftover participants.
//	Solve             Validate → Search → (optional) FillVacancies.
//
// ✨ Rules:
//
//   - Ranks are zero-based positions; lower is better.
//   - A participant missing from a project's list is unacceptable to it,
//     unless the project accepts unlisted participants, in which case it
//     ranks behind every listed participant (rank = list length).
//   - Capacities are enforced for unlisted participants too. The older,
//     tolerant rule that lets them in past capacity is available through
//     WithUnlistedOverflow; matchings it produces fail IsStable when a
//     project overflows.
//   - "No stable matching" is Result.Found == false, never a zero cost.
//
// ⚙️ Usage:
//
//	in := &matching.Instance{
//	    ParticipantPrefs: [][]int{{0, 1, 2}, {2, 0, 1}, {1, 0, 2}},
//	    ProjectPrefs:     [][]int{{0, 1}, {2, 0}, {1, 0}},
//	    Capacities:       []int{1, 1, 1},
//	    AcceptsUnlisted:  []bool{true, false, true},
//	}
//	res, err := matching.Solve(in, matching.WithFill(), matching.WithSeed(7))
//	if err != nil {
//	    // malformed instance
//	}
//	if !res.Found {
//	    // no stable matching
//	}
//	fmt.Println(res.Matching, res.Cost) // [0 2 1] 0
//
// Performance:
//
//   - Propose:  O(L·c), L = total participant list length, c = max capacity.
//   - IsStable: O(L·c).
//   - Search:   n! engine runs with SearchAllOrders; intended for n ≲ 9
//     (see WithMaxSearchParticipants), one run with SearchSingleOrder.
//
// Nothing in this package is safe for concurrent mutation, and nothing
// needs to be: every call owns its working state.
package matching
