package matching

import (
	"iter"
	"math"
)

// Permutations is a lazy, restartable sequence of every ordering of 0..n-1,
// produced iteratively in lexicographic order (next-permutation). No
// recursion is involved, so n is bounded only by patience: n! orderings.
//
// A Permutations value is not safe for concurrent use.
type Permutations struct {
	n    int
	cur  []int
	done bool
	seen bool
}

// NewPermutations returns a generator over the orderings of 0..n-1.
// For n <= 0 it yields exactly one empty ordering.
func NewPermutations(n int) *Permutations {
	if n < 0 {
		n = 0
	}
	p := &Permutations{n: n, cur: make([]int, n)}
	p.Reset()

	return p
}

// Reset restarts the sequence at the identity ordering.
func (p *Permutations) Reset() {
	for i := range p.cur {
		p.cur[i] = i
	}
	p.done = false
	p.seen = false
}

// Next returns the next ordering as a fresh slice, or (nil, false) once the
// sequence is exhausted.
//
// Complexity: O(n) per call.
func (p *Permutations) Next() ([]int, bool) {
	if p.done {
		return nil, false
	}
	if p.seen && !p.advance() {
		p.done = true
		return nil, false
	}
	p.seen = true

	return append([]int{}, p.cur...), true
}

// advance rearranges cur into its lexicographic successor.
// It returns false when cur is already the last (descending) ordering.
func (p *Permutations) advance() bool {
	a := p.cur

	// Longest non-increasing suffix starts right after pivot.
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	// Rightmost element above the pivot.
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]

	// Reverse the suffix.
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}

// All returns a range-over-func view that restarts the sequence first.
//
//	for order := range matching.NewPermutations(3).All() { ... }
func (p *Permutations) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p.Reset()
		for {
			order, ok := p.Next()
			if !ok || !yield(order) {
				return
			}
		}
	}
}

// Count returns n!, saturating at math.MaxInt.
func (p *Permutations) Count() int {
	c := 1
	for k := 2; k <= p.n; k++ {
		if c > math.MaxInt/k {
			return math.MaxInt
		}
		c *= k
	}

	return c
}
