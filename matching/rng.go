// Package matching - RNG utilities used by the vacancy filler.
//
// The only randomness in a matching session is the uniform draw among
// vacant projects. It always flows from an explicit *rand.Rand; no
// time-based or global source is read anywhere.
//
// math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package matching

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or leave Options.Rand nil.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// pickUniform returns one element of candidates chosen uniformly by r.
// candidates must be non-empty. Exactly one value is drawn from r per call,
// so a seeded stream advances identically whatever the candidate count.
//
// Complexity: O(1).
func pickUniform(candidates []int, r *rand.Rand) int {
	return candidates[r.Intn(len(candidates))]
}
