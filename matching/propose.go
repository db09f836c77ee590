package matching

// Propose runs capacity-aware deferred acceptance for one proposal order.
//
// Participants wait in a FIFO queue initialised with order (nil ⇒ identity)
// and propose down their own list through a cursor that never moves back.
// For the participant at the front, the next listed project p is tried:
//
//  1. p does not list it and does not accept unlisted participants:
//     rejected, the participant tries its next project in the same turn.
//  2. p does not list it but accepts unlisted participants: the participant
//     competes with rank len(ProjectPrefs[p]). With WithUnlistedOverflow it
//     is held unconditionally instead, even past capacity.
//  3. p holds fewer than Capacities[p]: held, turn ends.
//  4. p is full: if the participant ranks strictly better than p's worst
//     holder (earliest-held wins ties), that holder goes to the back of the
//     queue and the participant is held; otherwise the participant goes to
//     the back of the queue and resumes from its cursor on a later turn.
//
// A participant whose list is exhausted stays Unmatched. The result depends
// only on the instance, the order and the options.
//
// Errors: validation sentinels from types.go, ErrInvalidOrder.
//
// Complexity: O(L·c) where L is the total length of participant lists and
// c the largest capacity (one worst-holder scan per full-project proposal).
func Propose(in *Instance, order []int, opts ...Option) (Matching, error) {
	o := newOptions(opts...)
	if err := validateInstance(in, &o); err != nil {
		return nil, err
	}
	if err := validateOrder(order, in.Participants()); err != nil {
		return nil, err
	}

	return propose(newRankTable(in), order, &o), nil
}

// propose is the unchecked engine; rt and order must be valid.
func propose(rt *rankTable, order []int, o *Options) Matching {
	var (
		in    = rt.in
		n     = in.Participants()
		queue = make([]int, 0, n)
		next  = make([]int, n)               // per-participant cursor into its list
		held  = make([][]int, in.Projects()) // candidate set, in acceptance order
	)
	if order == nil {
		for s := 0; s < n; s++ {
			queue = append(queue, s)
		}
	} else {
		queue = append(queue, order...)
	}

	var (
		s, p, r   int
		listed    bool
		pos, wr   int
		displaced int
	)
	for len(queue) > 0 {
		s = queue[0]
		queue = queue[1:]

		for next[s] < len(in.ParticipantPrefs[s]) {
			p = in.ParticipantPrefs[s][next[s]]
			next[s]++

			r, listed = rt.projectRank(p, s)
			if !listed {
				if !in.AcceptsUnlisted[p] {
					o.tracef("propose: participant %d -> project %d: unacceptable", s, p)
					continue
				}
				if o.UnlistedOverflow {
					held[p] = append(held[p], s)
					o.tracef("propose: participant %d -> project %d: held unlisted (%d/%d)", s, p, len(held[p]), in.Capacities[p])
					break
				}
			}

			if len(held[p]) < in.Capacities[p] {
				held[p] = append(held[p], s)
				o.tracef("propose: participant %d -> project %d: held (%d/%d)", s, p, len(held[p]), in.Capacities[p])
				break
			}

			pos, wr = rt.worstHeld(p, held[p])
			if pos >= 0 && r < wr {
				displaced = held[p][pos]
				held[p] = append(held[p][:pos], held[p][pos+1:]...)
				held[p] = append(held[p], s)
				queue = append(queue, displaced)
				o.tracef("propose: participant %d -> project %d: displaced participant %d", s, p, displaced)
				break
			}

			queue = append(queue, s)
			o.tracef("propose: participant %d -> project %d: full, requeued", s, p)
			break
		}
	}

	m := make(Matching, n)
	for s = range m {
		m[s] = Unmatched
	}
	for p = range held {
		for _, s = range held[p] {
			m[s] = p
		}
	}

	return m
}
