// Package setup implements the parent-linked stack of clause batches that
// accumulates derived knowledge: each Setup is an immutable-once-spawned
// slice of the overall proof state, chained to the ancestors it was spawned
// from.
package setup

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/go-lela/lela/clause"
	"github.com/go-lela/lela/literal"
	"github.com/go-lela/lela/term"
)

// Index identifies a clause by its position in the full ancestor chain,
// counting from the root.
type Index = uint32

type options struct {
	log        logger.Logger
	occursHint int
}

// Option configures a Setup at construction or spawn time.
type Option func(*options)

// WithLogger attaches a logger to a Setup; add/reject/accept decisions are
// logged at debug level through it. Without it, Setup logs nothing.
func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithOccursIndexHint pre-sizes the occurs acceleration index for n
// expected distinct lhs terms. Purely an allocation hint.
func WithOccursIndexHint(n int) Option {
	return func(o *options) { o.occursHint = n }
}

// Setup is one batch of clauses in an append-only stack: clauses are
// assigned dense indices starting at first, and Setup never forgets a
// clause once added. A Setup that has had Spawn called on it is frozen:
// further Add calls panic, matching the original's borrow-checker-enforced
// invariant that no new sibling may mutate a setup a child has borrowed
// from.
type Setup struct {
	parent  *Setup
	first   Index
	clauses []clause.Clause
	occurs  map[term.Term][]int
	empty   []int
	log     logger.Logger
	frozen  bool
}

// New returns a fresh root Setup with no parent.
func New(opts ...Option) *Setup {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Setup{
		occurs: make(map[term.Term][]int, o.occursHint),
		log:    o.log,
	}
}

// Spawn returns a new child Setup chained to s, starting at s's current
// last index. Spawning freezes s: it panics if s.Add is called afterward.
func (s *Setup) Spawn(opts ...Option) *Setup {
	s.frozen = true

	o := options{log: s.log}
	for _, opt := range opts {
		opt(&o)
	}
	return &Setup{
		parent: s,
		first:  s.last(),
		occurs: make(map[term.Term][]int, o.occursHint),
		log:    o.log,
	}
}

// Root returns the setup at the top of s's ancestor chain.
func (s *Setup) Root() *Setup {
	if s.parent == nil {
		return s
	}
	return s.parent.Root()
}

func (s *Setup) last() Index {
	return s.first + Index(len(s.clauses))
}

// Add appends c to s and returns its index and true, unless c is Valid or
// already subsumed by some clause in s or an ancestor, in which case it
// returns (0, false) without storing anything. It panics with ErrFrozen if
// s has already been spawned from.
func (s *Setup) Add(c clause.Clause) (Index, bool) {
	if s.frozen {
		panic(fmt.Errorf("%w", ErrFrozen))
	}

	if c.Valid() {
		s.debugf("setup: reject valid clause")
		return 0, false
	}
	if s.Subsumes(c) {
		s.debugf("setup: reject clause already subsumed by an existing clause")
		return 0, false
	}

	local := len(s.clauses)
	s.clauses = append(s.clauses, c)
	for _, t := range c.LhsTerms() {
		s.occurs[t] = append(s.occurs[t], local)
	}
	if c.Empty() {
		s.empty = append(s.empty, local)
	}

	idx := s.first + Index(local)
	s.debugf("setup: accepted clause at index %d (%d literals)", idx, c.Len())
	return idx, true
}

// Subsumes reports whether some clause already present in s or any of its
// ancestors subsumes c. The occurs index restricts the per-ancestor scan to
// clauses sharing at least one lhs term with c, plus any empty clause
// (which subsumes everything).
func (s *Setup) Subsumes(c clause.Clause) bool {
	lhs := c.LhsTerms()
	for cur := s; cur != nil; cur = cur.parent {
		if len(cur.empty) > 0 {
			return true
		}
		seen := make(map[int]bool)
		for _, t := range lhs {
			for _, idx := range cur.occurs[t] {
				if seen[idx] {
					continue
				}
				seen[idx] = true
				if cur.clauses[idx].Subsumes(c) {
					return true
				}
			}
		}
	}
	return false
}

// Clauses returns every clause reachable from s, child-first: s's own
// clauses followed by its parent's, recursively.
func (s *Setup) Clauses() []clause.Clause {
	if s.parent == nil {
		out := make([]clause.Clause, len(s.clauses))
		copy(out, s.clauses)
		return out
	}
	return append(append([]clause.Clause{}, s.clauses...), s.parent.Clauses()...)
}

// Literals returns every literal of every clause in s's ancestor chain,
// child-first.
func (s *Setup) Literals() []literal.Literal {
	var out []literal.Literal
	for _, c := range s.Clauses() {
		out = append(out, c.Literals()...)
	}
	return out
}

// LhsTerms returns the lhs term of every literal of every clause in s's
// ancestor chain, child-first.
func (s *Setup) LhsTerms() []term.Term {
	var out []term.Term
	for _, c := range s.Clauses() {
		out = append(out, c.LhsTerms()...)
	}
	return out
}

// SubTerms returns every subterm of every clause in s's ancestor chain,
// child-first.
func (s *Setup) SubTerms() []term.Term {
	var out []term.Term
	for _, c := range s.Clauses() {
		out = append(out, c.SubTerms()...)
	}
	return out
}

func (s *Setup) debugf(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}
