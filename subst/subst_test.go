package subst

import (
	"testing"

	"github.com/go-lela/lela/symbol"
	"github.com/go-lela/lela/term"
	"github.com/stretchr/testify/require"
)

func TestSingleSubstitutesOnlyOldTerm(t *testing.T) {
	sf := symbol.NewFactory()
	s := sf.NewSort()
	tf := term.NewFactory()

	old := tf.NewTerm(sf.NewName(s), nil)
	new := tf.NewTerm(sf.NewName(s), nil)
	other := tf.NewTerm(sf.NewName(s), nil)

	sub := NewSingle(old, new)

	got, ok := sub.Substitute(old)
	require.True(t, ok)
	require.True(t, got.Equal(new))

	_, ok = sub.Substitute(other)
	require.False(t, ok)
}

func TestSingleAppliedThroughTermSubstitute(t *testing.T) {
	sf := symbol.NewFactory()
	s := sf.NewSort()
	tf := term.NewFactory()

	fn1 := sf.NewFun(s, 1)
	n1 := tf.NewTerm(sf.NewName(s), nil)
	n2 := tf.NewTerm(sf.NewName(s), nil)
	orig := tf.NewTerm(fn1, []term.Term{n1})

	got := orig.Substitute(NewSingle(n1, n2), tf)
	require.True(t, got.Equal(tf.NewTerm(fn1, []term.Term{n2})))
}
