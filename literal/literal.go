// Package literal implements oriented equations and disequations between
// two terms, with the canonical-ordering and validity/subsumption algebra
// that clause canonicalization and unit propagation build on.
package literal

import (
	"fmt"

	"github.com/go-lela/lela/term"
)

// Literal is an oriented equation (Pos) or disequation (Neg) between lhs
// and rhs. The pair is canonically oriented at construction time: see
// orient.
type Literal struct {
	pos      bool
	lhs, rhs term.Term
}

// orient picks which of a, b becomes lhs: if exactly one side is a function
// term, that side becomes lhs; otherwise the side that is smaller in the
// term factory's address-like order becomes lhs.
func orient(a, b term.Term) (lhs, rhs term.Term) {
	switch {
	case a.IsFun() && !b.IsFun():
		return a, b
	case b.IsFun() && !a.IsFun():
		return b, a
	case a.Less(b):
		return a, b
	default:
		return b, a
	}
}

// NewPos constructs a positive literal (an equation) between a and b,
// orienting the pair per orient.
func NewPos(a, b term.Term) Literal {
	lhs, rhs := orient(a, b)
	return Literal{pos: true, lhs: lhs, rhs: rhs}
}

// NewNeg constructs a negative literal (a disequation) between a and b,
// orienting the pair per orient.
func NewNeg(a, b term.Term) Literal {
	lhs, rhs := orient(a, b)
	return Literal{pos: false, lhs: lhs, rhs: rhs}
}

// Pos reports whether l is an equation (true) or a disequation (false).
func (l Literal) Pos() bool { return l.pos }

// Lhs returns l's canonically-oriented left-hand term.
func (l Literal) Lhs() term.Term { return l.lhs }

// Rhs returns l's canonically-oriented right-hand term.
func (l Literal) Rhs() term.Term { return l.rhs }

// Flip returns l with its polarity inverted; the lhs/rhs pair is unchanged.
func (l Literal) Flip() Literal { return Literal{pos: !l.pos, lhs: l.lhs, rhs: l.rhs} }

// Ground reports whether both sides of l are ground terms.
func (l Literal) Ground() bool { return l.lhs.Ground() && l.rhs.Ground() }

// Primitive reports whether lhs is a primitive term and rhs is a name.
func (l Literal) Primitive() bool { return l.lhs.Primitive() && l.rhs.IsName() }

// Quasiprimitive reports whether lhs is quasiprimitive and rhs is a name or
// variable.
func (l Literal) Quasiprimitive() bool {
	return l.lhs.Quasiprimitive() && (l.rhs.IsName() || l.rhs.IsVar())
}

// Valid reports whether l is a tautology: Pos(x,x); or Neg(n1,n2) with both
// sides distinct names; or any disequation between terms of distinct sorts.
func (l Literal) Valid() bool {
	switch {
	case l.pos && l.lhs.Equal(l.rhs):
		return true
	case !l.pos && l.lhs.IsName() && l.rhs.IsName() && !l.lhs.Equal(l.rhs):
		return true
	case !l.pos && l.lhs.Sort() != l.rhs.Sort():
		return true
	default:
		return false
	}
}

// Invalid reports whether l is a contradiction: Neg(x,x); or Pos(n1,n2)
// with both sides distinct names; or any equation between terms of
// distinct sorts.
func (l Literal) Invalid() bool {
	switch {
	case !l.pos && l.lhs.Equal(l.rhs):
		return true
	case l.pos && l.lhs.IsName() && l.rhs.IsName() && !l.lhs.Equal(l.rhs):
		return true
	case l.pos && l.lhs.Sort() != l.rhs.Sort():
		return true
	default:
		return false
	}
}

// Complementary reports whether a and b, both primitive, contradict each
// other: same lhs, and either opposite polarity with equal rhs, or equal
// polarity with distinct name rhs. Panics if either operand is not
// primitive.
func Complementary(a, b Literal) bool {
	mustPrimitive(a)
	mustPrimitive(b)
	if !a.lhs.Equal(b.lhs) {
		return false
	}
	if a.pos != b.pos && a.rhs.Equal(b.rhs) {
		return true
	}
	if a.pos == b.pos && a.rhs.IsName() && b.rhs.IsName() && !a.rhs.Equal(b.rhs) {
		return true
	}
	return false
}

// Subsumes reports whether a (primitive) subsumes b (primitive): same lhs,
// and either same polarity with same rhs, or a positive and b negative with
// distinct name rhs. Panics if either operand is not primitive.
func (a Literal) Subsumes(b Literal) bool {
	mustPrimitive(a)
	mustPrimitive(b)
	if !a.lhs.Equal(b.lhs) {
		return false
	}
	if a.pos == b.pos && a.rhs.Equal(b.rhs) {
		return true
	}
	if a.pos && !b.pos && a.rhs.IsName() && b.rhs.IsName() && !a.rhs.Equal(b.rhs) {
		return true
	}
	return false
}

// Equal reports whether a and b are the same oriented literal.
func (a Literal) Equal(b Literal) bool {
	return a.pos == b.pos && a.lhs.Equal(b.lhs) && a.rhs.Equal(b.rhs)
}

// Less imposes the total order clause canonicalization sorts by:
// polarity-major (positive before negative, matching the original's
// declaration order Pos < Neg), then lhs identity, then rhs identity.
func (a Literal) Less(b Literal) bool {
	if a.pos != b.pos {
		return a.pos
	}
	if c := a.lhs.Compare(b.lhs); c != 0 {
		return c < 0
	}
	return a.rhs.Compare(b.rhs) < 0
}

// Terms returns lhs.Terms() chained with rhs.Terms(): each side followed by
// its immediate arguments. It does not descend into nested arguments.
func (l Literal) Terms() []term.Term {
	out := l.lhs.Terms()
	return append(out, l.rhs.Terms()...)
}

func mustPrimitive(l Literal) {
	if !l.Primitive() {
		panic(fmt.Errorf("%w", ErrNotPrimitive))
	}
}
