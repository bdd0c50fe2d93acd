package clause

import (
	"testing"

	"github.com/go-lela/lela/literal"
	"github.com/go-lela/lela/symbol"
	"github.com/go-lela/lela/term"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	sf *symbol.Factory
	tf *term.Factory
	s  symbol.Sort
	a  term.Term
	b  term.Term
	n1 term.Term
	n2 term.Term
	n3 term.Term
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	sf := symbol.NewFactory()
	tf := term.NewFactory()
	s := sf.NewSort()

	return fixture{
		sf: sf,
		tf: tf,
		s:  s,
		a:  tf.NewTerm(sf.NewFun(s, 0), nil),
		b:  tf.NewTerm(sf.NewFun(s, 0), nil),
		n1: tf.NewTerm(sf.NewName(s), nil),
		n2: tf.NewTerm(sf.NewName(s), nil),
		n3: tf.NewTerm(sf.NewName(s), nil),
	}
}

func TestNewSortsDedupesAndDropsValid(t *testing.T) {
	f := newFixture(t)
	dup := literal.NewPos(f.a, f.n1)
	c := New([]literal.Literal{
		literal.NewNeg(f.b, f.n2),
		dup,
		dup,
		literal.NewPos(f.n1, f.n1), // valid, dropped
	})

	require.Equal(t, 2, c.Len())
	lits := c.Literals()
	require.True(t, lits[0].Pos())
}

func TestEmptyClauseIsInvalid(t *testing.T) {
	c := New(nil)
	require.True(t, c.Empty())
	require.True(t, c.Invalid())
}

func TestUnitClause(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{literal.NewPos(f.a, f.n1)})
	require.True(t, c.Unit())
	require.Equal(t, 1, c.Len())
}

func TestValidLiteralFilteredLeavesNonValidSurvivors(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{
		literal.NewPos(f.n1, f.n1), // valid
		literal.NewPos(f.a, f.n2),
	})
	require.Equal(t, 1, c.Len())
	require.False(t, c.Valid())
}

func TestSubTermsCollectsBothSidesOfEveryLiteral(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{literal.NewPos(f.a, f.n1)})
	st := c.SubTerms()
	require.Contains(t, st, f.a)
	require.Contains(t, st, f.n1)
}

func TestSubsumesIsReflexive(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{literal.NewPos(f.a, f.n1), literal.NewNeg(f.b, f.n2)})
	require.True(t, c.Subsumes(c))
}

func TestSubsumesRequiresEveryLiteralCovered(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{literal.NewPos(f.a, f.n1), literal.NewPos(f.b, f.n2)})
	d := New([]literal.Literal{literal.NewPos(f.a, f.n1)})
	require.False(t, c.Subsumes(d))
	require.True(t, d.Subsumes(c))
}

func TestSubsumesBloomPrecheckRejectsDisjointLhsSets(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{literal.NewPos(f.a, f.n1)})
	d := New([]literal.Literal{literal.NewPos(f.b, f.n2)})
	require.False(t, c.Subsumes(d))
}

func TestSubsumesPanicsOnNonPrimitiveClause(t *testing.T) {
	f := newFixture(t)
	v := f.tf.NewTerm(f.sf.NewVar(f.s), nil)
	c := New([]literal.Literal{literal.NewPos(f.a, v)})
	require.Panics(t, func() { c.Subsumes(c) })
}

func TestPropagateInPlaceRemovesComplementaryLiterals(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{
		literal.NewPos(f.a, f.n1),
		literal.NewPos(f.b, f.n2),
	})
	a := literal.NewNeg(f.a, f.n1)

	changed := c.PropagateInPlace(a)
	require.True(t, changed)
	require.Equal(t, 1, c.Len())
	require.True(t, c.Literals()[0].Lhs().Equal(f.b))
}

func TestPropagateInPlaceBloomPrecheckShortCircuitsUnrelatedLhs(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{literal.NewPos(f.b, f.n2)})
	a := literal.NewNeg(f.a, f.n1)

	require.False(t, c.PropagateInPlace(a))
	require.Equal(t, 1, c.Len())
}

func TestPropagateIsNonDestructive(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{
		literal.NewPos(f.a, f.n1),
		literal.NewPos(f.b, f.n2),
	})
	a := literal.NewNeg(f.a, f.n1)

	next, changed := c.Propagate(a)
	require.True(t, changed)
	require.Equal(t, 2, c.Len())
	require.Equal(t, 1, next.Len())
}

func TestPropagateNoChangeReturnsFalse(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{literal.NewPos(f.b, f.n2)})
	a := literal.NewNeg(f.a, f.n1)

	_, changed := c.Propagate(a)
	require.False(t, changed)
}

func TestPropagateIdempotentOnAlreadyPropagatedClause(t *testing.T) {
	f := newFixture(t)
	c := New([]literal.Literal{
		literal.NewPos(f.a, f.n1),
		literal.NewPos(f.b, f.n2),
	})
	a := literal.NewNeg(f.a, f.n1)

	once, _ := c.Propagate(a)
	_, changedAgain := once.Propagate(a)
	require.False(t, changedAgain)
}
