// Package clause implements the canonical clause representation: a sorted,
// duplicate-free, valid-literal-filtered list backed by a Bloom summary of
// its literals' lhs terms, supporting subsumption and unit propagation.
package clause

import (
	"fmt"
	"slices"

	"github.com/go-lela/lela/bloom"
	"github.com/go-lela/lela/literal"
	"github.com/go-lela/lela/term"
)

// Clause is a canonicalized disjunction of literals.
type Clause struct {
	bloom bloom.Set[term.Term]
	lits  []literal.Literal
}

// New canonicalizes lits: sorts them by literal.Literal.Less, removes
// adjacent duplicates, discards every literal for which Valid holds, and
// builds a Bloom summary over the surviving literals' lhs terms.
func New(lits []literal.Literal) Clause {
	cp := make([]literal.Literal, len(lits))
	copy(cp, lits)

	slices.SortFunc(cp, func(a, b literal.Literal) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	cp = slices.CompactFunc(cp, literal.Literal.Equal)

	kept := make([]literal.Literal, 0, len(cp))
	var b bloom.Set[term.Term]
	for _, l := range cp {
		if l.Valid() {
			continue
		}
		kept = append(kept, l)
		b.Add(l.Lhs())
	}

	return Clause{bloom: b, lits: kept}
}

// Empty reports whether c is the empty clause (≡ ⊥).
func (c Clause) Empty() bool { return len(c.lits) == 0 }

// Unit reports whether c has exactly one literal.
func (c Clause) Unit() bool { return len(c.lits) == 1 }

// Len returns the number of literals in c.
func (c Clause) Len() int { return len(c.lits) }

// Valid reports whether any literal in c is valid. Because New already
// discards every valid literal, this is always false for a clause built by
// New; it is kept as a derived predicate so callers scanning whatever
// literals are currently stored still get a correct answer.
func (c Clause) Valid() bool {
	for _, l := range c.lits {
		if l.Valid() {
			return true
		}
	}
	return false
}

// Invalid reports whether every literal in c is invalid (vacuously true
// for the empty clause).
func (c Clause) Invalid() bool {
	for _, l := range c.lits {
		if !l.Invalid() {
			return false
		}
	}
	return true
}

// Ground reports whether every literal in c is ground.
func (c Clause) Ground() bool {
	for _, l := range c.lits {
		if !l.Ground() {
			return false
		}
	}
	return true
}

// Primitive reports whether every literal in c is primitive.
func (c Clause) Primitive() bool {
	for _, l := range c.lits {
		if !l.Primitive() {
			return false
		}
	}
	return true
}

// Quasiprimitive reports whether every literal in c is quasiprimitive.
func (c Clause) Quasiprimitive() bool {
	for _, l := range c.lits {
		if !l.Quasiprimitive() {
			return false
		}
	}
	return true
}

// Literals returns c's canonical literal list. Callers must not mutate it.
func (c Clause) Literals() []literal.Literal { return c.lits }

// LhsTerms returns the lhs term of every literal in c.
func (c Clause) LhsTerms() []term.Term {
	out := make([]term.Term, len(c.lits))
	for i, l := range c.lits {
		out[i] = l.Lhs()
	}
	return out
}

// SubTerms returns every subterm appearing anywhere in c: both sides of
// every literal, not just lhs, and all of their arguments at every depth.
func (c Clause) SubTerms() []term.Term {
	var out []term.Term
	var walk func(t term.Term)
	walk = func(t term.Term) {
		out = append(out, t)
		for _, a := range t.Args() {
			walk(a)
		}
	}
	for _, l := range c.lits {
		walk(l.Lhs())
		walk(l.Rhs())
	}
	return out
}

// Subsumes reports whether c subsumes other: c's Bloom must be a possible
// subset of other's (the mandatory fast path), and every literal of c must
// be subsumed by some literal of other. Both clauses must be primitive;
// Subsumes panics otherwise.
func (c Clause) Subsumes(other Clause) bool {
	mustPrimitive(c)
	mustPrimitive(other)

	if !other.bloom.PossiblyIncludes(c.bloom) {
		return false
	}
	for _, a := range c.lits {
		subsumed := false
		for _, b := range other.lits {
			if a.Subsumes(b) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			return false
		}
	}
	return true
}

// PropagateInPlace removes, in place, every literal of c complementary to
// a, assuming a holds as a unit clause. It returns whether anything was
// removed. c and a must both be primitive; it panics otherwise. If a.Lhs()
// is not possibly an lhs in c (the Bloom precheck), it returns false
// without scanning.
func (c *Clause) PropagateInPlace(a literal.Literal) bool {
	mustPrimitive(*c)
	mustPrimitiveLiteral(a)

	if !c.bloom.PossiblyContains(a.Lhs()) {
		return false
	}

	before := len(c.lits)
	kept := make([]literal.Literal, 0, before)
	for _, b := range c.lits {
		if !literal.Complementary(a, b) {
			kept = append(kept, b)
		}
	}
	c.lits = kept
	return len(kept) != before
}

// Propagate is the non-destructive variant of PropagateInPlace: it returns
// a new clause and true only when at least one literal was eliminated;
// otherwise it returns the zero Clause and false.
func (c Clause) Propagate(a literal.Literal) (Clause, bool) {
	cp := c.clone()
	if cp.PropagateInPlace(a) {
		return cp, true
	}
	return Clause{}, false
}

func (c Clause) clone() Clause {
	lits := make([]literal.Literal, len(c.lits))
	copy(lits, c.lits)
	return Clause{bloom: c.bloom, lits: lits}
}

func mustPrimitive(c Clause) {
	if !c.Primitive() {
		panic(fmt.Errorf("%w", ErrNotPrimitive))
	}
}

func mustPrimitiveLiteral(l literal.Literal) {
	if !l.Primitive() {
		panic(fmt.Errorf("%w", ErrNotPrimitive))
	}
}
