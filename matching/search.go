package matching

import (
	"fmt"
	"iter"
)

// Search explores proposal orders and returns the stable matching of lowest
// egalitarian cost among the candidates the engine produced.
//
// Order sources (Options.Mode):
//   - SearchAllOrders: every permutation of the participants, in
//     lexicographic order, each threaded into Propose as its initial queue.
//   - SearchSingleOrder: the identity order only.
//
// Candidates are filtered with the stability check, scored with the
// egalitarian cost, and the first strictly cheaper one wins, so ties go to
// the earliest order. Identical candidates are scored once.
//
// If no candidate is stable, Result.Found is false and the error is nil.
//
// Errors: validation sentinels, ErrInstanceTooLarge (SearchAllOrders with
// n > MaxSearchParticipants), ErrUnknownSearchMode.
//
// Complexity: SearchAllOrders runs the engine n! times.
func Search(in *Instance, opts ...Option) (Result, error) {
	o := newOptions(opts...)
	if err := validateInstance(in, &o); err != nil {
		return Result{}, err
	}

	return search(newRankTable(in), &o)
}

func search(rt *rankTable, o *Options) (Result, error) {
	n := rt.in.Participants()

	var orders iter.Seq[[]int]
	switch o.Mode {
	case SearchAllOrders:
		if n > o.MaxSearchParticipants {
			return Result{}, fmt.Errorf("%w: %d participants, limit %d", ErrInstanceTooLarge, n, o.MaxSearchParticipants)
		}
		orders = NewPermutations(n).All()
	case SearchSingleOrder:
		orders = func(yield func([]int) bool) { yield(nil) }
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownSearchMode, o.Mode)
	}

	var (
		res    Result
		seen   = make(map[string]struct{})
		cand   Matching
		key    string
		ok     bool
		stable bool
		cost   int
		err    error
	)
	for order := range orders {
		res.Stats.Orders++
		cand = propose(rt, order, o)

		key = cand.key()
		if _, ok = seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res.Stats.Distinct++

		if stable, err = isStable(rt, cand, o); err != nil {
			return Result{}, err
		}
		if !stable {
			o.tracef("search: order %v gave unstable %v", order, cand)
			continue
		}
		res.Stats.Stable++

		if cost, err = egalitarianCost(rt, cand); err != nil {
			return Result{}, err
		}
		o.tracef("search: order %v gave stable %v (cost %d)", order, cand, cost)
		if !res.Found || cost < res.Cost {
			res.Matching, res.Cost, res.Found = cand, cost, true
		}
	}

	return res, nil
}

// Solve validates in, runs Search and, with WithFill, places still-unmatched
// participants into vacant projects of the selected matching.
//
// Result.Cost is the cost of the optimised matching before filling; filled
// placements ignore preferences and stability.
func Solve(in *Instance, opts ...Option) (Result, error) {
	o := newOptions(opts...)
	if err := validateInstance(in, &o); err != nil {
		return Result{}, err
	}

	res, err := search(newRankTable(in), &o)
	if err != nil {
		return Result{}, err
	}
	if !res.Found || !o.Fill {
		return res, nil
	}

	r := o.Rand
	if r == nil {
		r = rngFromSeed(0)
	}
	if res.Filled, err = FillVacancies(res.Matching, in.Capacities, r); err != nil {
		return Result{}, err
	}
	o.tracef("solve: filled %d vacancies, final %v", res.Filled, res.Matching)

	return res, nil
}
