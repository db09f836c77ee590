package matching

import (
	"fmt"
	"log"
	"math/rand"
)

// SearchMode selects where the search driver takes its proposal orders from.
type SearchMode int

const (
	// SearchAllOrders feeds every permutation of the participants to the engine.
	// Complexity is factorial in the participant count.
	SearchAllOrders SearchMode = iota

	// SearchSingleOrder runs the engine once, on the identity order.
	SearchSingleOrder
)

// String implements fmt.Stringer.
func (m SearchMode) String() string {
	switch m {
	case SearchAllOrders:
		return "all"
	case SearchSingleOrder:
		return "single"
	default:
		return fmt.Sprintf("SearchMode(%d)", int(m))
	}
}

// ParseSearchMode maps "all" / "single" to a SearchMode.
func ParseSearchMode(s string) (SearchMode, error) {
	switch s {
	case "all", "":
		return SearchAllOrders, nil
	case "single":
		return SearchSingleOrder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSearchMode, s)
	}
}

// DefaultMaxSearchParticipants bounds exhaustive search (9! = 362880 engine runs).
const DefaultMaxSearchParticipants = 9

// Options configures the engine, the validator, the search driver and the filler.
//
// Mode                  – order source for the search driver.
// UnlistedOverflow      – accept unlisted participants without a capacity check.
// UnmatchedBlocking     – let unmatched participants form blocking pairs too.
// AllowClosedProjects   – accept capacity 0 (a project that takes nobody).
// MaxSearchParticipants – upper bound on n for SearchAllOrders.
// Fill                  – run FillVacancies on the selected matching in Solve.
// Rand                  – random source for the filler (nil ⇒ seed-0 stream).
// Logger                – trace sink; nil keeps the library silent.
type Options struct {
	Mode                  SearchMode
	UnlistedOverflow      bool
	UnmatchedBlocking     bool
	AllowClosedProjects   bool
	MaxSearchParticipants int
	Fill                  bool
	Rand                  *rand.Rand
	Logger                *log.Logger
}

// Option represents a functional option for configuring a matching session.
type Option func(*Options)

// DefaultOptions returns exhaustive search, enforced capacities, no filling
// and no tracing.
func DefaultOptions() Options {
	return Options{
		Mode:                  SearchAllOrders,
		MaxSearchParticipants: DefaultMaxSearchParticipants,
	}
}

// newOptions applies opts in order over DefaultOptions (last wins).
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSearchMode selects the order source of the search driver.
func WithSearchMode(mode SearchMode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithUnlistedOverflow restores the tolerant accept-unlisted rule: a project
// that accepts unlisted participants takes them even when it is full.
// Matchings produced this way may exceed capacity and are then rejected
// by IsStable.
func WithUnlistedOverflow() Option {
	return func(o *Options) {
		o.UnlistedOverflow = true
	}
}

// WithUnmatchedBlocking makes IsStable also scan the full preference list of
// every unmatched participant.
func WithUnmatchedBlocking() Option {
	return func(o *Options) {
		o.UnmatchedBlocking = true
	}
}

// WithClosedProjects allows projects with capacity 0.
func WithClosedProjects() Option {
	return func(o *Options) {
		o.AllowClosedProjects = true
	}
}

// WithMaxSearchParticipants raises or lowers the exhaustive search bound.
// Panics if k < 1.
func WithMaxSearchParticipants(k int) Option {
	if k < 1 {
		panic("matching: WithMaxSearchParticipants(k<1)")
	}
	return func(o *Options) {
		o.MaxSearchParticipants = k
	}
}

// WithFill makes Solve place leftover participants into vacant projects.
func WithFill() Option {
	return func(o *Options) {
		o.Fill = true
	}
}

// WithRand provides the random source of the vacancy filler. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("matching: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a deterministic random source (seed 0 ⇒ defaultRNGSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithLogger enables tracing of proposals and search progress.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// tracef writes to the configured logger, if any.
func (o *Options) tracef(format string, args ...any) {
	if o.Logger == nil {
		return
	}
	o.Logger.Printf(format, args...)
}
