// Package subst provides term.Substitution implementations. Keeping the
// interface to a single method (see term.Substitution) sidesteps the
// explosion of substitution representations — maps, composed substitutions,
// renamings — and lets the term layer stay oblivious to all of them.
package subst

import "github.com/go-lela/lela/term"

// Single is a one-point substitution: it maps exactly one term to another
// and leaves everything else unchanged.
type Single struct {
	old, new term.Term
}

// NewSingle returns a Substitution mapping old to new and nothing else.
func NewSingle(old, new term.Term) Single {
	return Single{old: old, new: new}
}

// Substitute returns (new, true) when t is old, else (zero, false).
func (s Single) Substitute(t term.Term) (term.Term, bool) {
	if s.old.Equal(t) {
		return s.new, true
	}
	return term.Term{}, false
}
