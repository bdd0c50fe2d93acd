// Package term implements hash-consed first-order terms: a Factory
// deduplicates (symbol, args) tuples so that syntactic equality becomes
// pointer equality, and a Term is a stable, non-owning handle into the
// Factory that created it.
//
// Two Terms compare equal with == iff they refer to the same interned node,
// which NewTerm returns for every request with the same structure — Go
// gives this for free here because Term
// holds exactly one pointer field, so referential identity and Go's
// built-in equality coincide. The same property makes Term usable directly
// as a map key (Setup's occurs index relies on this).
package term

import (
	"fmt"

	"github.com/go-lela/lela/fnv1a"
	"github.com/go-lela/lela/symbol"
)

// Substitution answers "what does t become under me?", returning ok=false
// to mean "no change at this node". It is the sole contract Term.Substitute
// depends on; concrete substitutions (see package subst) implement it.
type Substitution interface {
	Substitute(t Term) (Term, bool)
}

// node is the interned storage a Term points to. Nodes are never mutated or
// freed after creation; serial fixes their position in a deterministic,
// address-like total order usable for sorting literal lists, without
// resorting to unsafe.Pointer/uintptr tricks.
type node struct {
	sym     symbol.Symbol
	args    []Term
	serial  uint64
	factory *Factory
}

// Term is a non-owning handle to an interned node. The zero Term is not a
// valid term; every Term in use was returned by some Factory.NewTerm.
type Term struct {
	n *node
}

// Sym returns t's head symbol.
func (t Term) Sym() symbol.Symbol { return t.n.sym }

// Sort returns t's sort (that of its head symbol).
func (t Term) Sort() symbol.Sort { return t.n.sym.Sort() }

// IsVar reports whether t's head symbol is a variable.
func (t Term) IsVar() bool { return t.n.sym.IsVar() }

// IsName reports whether t's head symbol is a name.
func (t Term) IsName() bool { return t.n.sym.IsName() }

// IsFun reports whether t's head symbol is a function.
func (t Term) IsFun() bool { return t.n.sym.IsFun() }

// Arity returns the number of arguments t was built with.
func (t Term) Arity() symbol.Arity { return t.n.sym.Arity() }

// Args returns t's argument terms. Callers must not mutate the slice.
func (t Term) Args() []Term { return t.n.args }

// Arg returns t's i'th argument.
func (t Term) Arg(i int) Term { return t.n.args[i] }

// Ground reports whether t is a name, or a function all of whose arguments
// are ground.
func (t Term) Ground() bool {
	switch {
	case t.IsName():
		return true
	case t.IsFun():
		for _, a := range t.n.args {
			if !a.Ground() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Primitive reports whether t is a function applied only to names.
func (t Term) Primitive() bool {
	if !t.IsFun() {
		return false
	}
	for _, a := range t.n.args {
		if !a.IsName() {
			return false
		}
	}
	return true
}

// Quasiprimitive reports whether t is a function applied only to names or
// variables.
func (t Term) Quasiprimitive() bool {
	if !t.IsFun() {
		return false
	}
	for _, a := range t.n.args {
		if !a.IsName() && !a.IsVar() {
			return false
		}
	}
	return true
}

// Terms returns t itself followed by its immediate arguments (not
// recursive — callers wanting the full subterm closure of a clause use
// clause.Clause.SubTerms, which recurses through every literal).
func (t Term) Terms() []Term {
	out := make([]Term, 0, 1+len(t.n.args))
	out = append(out, t)
	out = append(out, t.n.args...)
	return out
}

// Equal reports whether t and other are the same interned node.
func (t Term) Equal(other Term) bool { return t.n == other.n }

// Less imposes a deterministic total order usable for sorting literal
// lists; it is derived from insertion order, not structure.
func (t Term) Less(other Term) bool { return t.n.serial < other.n.serial }

// Compare returns -1, 0, or 1 as t is less than, equal to, or greater than
// other in the address-like total order.
func (t Term) Compare(other Term) int {
	switch {
	case t.n == other.n:
		return 0
	case t.n.serial < other.n.serial:
		return -1
	default:
		return 1
	}
}

// HashInto feeds t's identity into h, satisfying bloom.Hashable. Because
// Term equality is referential, hashing the serial is exactly as
// discriminating as hashing the structure would be.
func (t Term) HashInto(h *fnv1a.Hasher) {
	h.WriteUint64(t.n.serial)
}

// Substitute returns the term produced by applying theta at every node: if
// theta maps this term directly, its image is returned; otherwise, if t has
// arguments, they are each substituted and the result is re-interned in f
// with t's symbol; otherwise t is returned unchanged. f is required because
// substitution may fabricate subtrees not yet present in any factory.
func (t Term) Substitute(theta Substitution, f *Factory) Term {
	if repl, ok := theta.Substitute(t); ok {
		return repl
	}
	if t.Arity() == 0 {
		return t
	}
	args := make([]Term, len(t.n.args))
	for i, a := range t.n.args {
		args[i] = a.Substitute(theta, f)
	}
	return f.NewTerm(t.n.sym, args)
}

// Factory is a deduplicating store of term nodes: hash-consing. Given
// (sym, args) it returns the existing node with that structure if one
// exists, otherwise it stores a fresh node and returns a handle to it.
// Every Term a Factory returns is a weak reference bounded by the
// Factory's lifetime; Factory is not safe for concurrent use.
type Factory struct {
	buckets map[uint64][]*node
	next    uint64
}

// NewFactory returns an empty term Factory.
func NewFactory() *Factory {
	return &Factory{buckets: make(map[uint64][]*node)}
}

// NewTerm interns (sym, args), returning the canonical handle for that
// structure. It panics if sym.Arity() != len(args) (ErrArityMismatch), or
// if any arg was produced by a different Factory (ErrForeignFactory) —
// both are programmer contract violations, not recoverable runtime errors.
func (f *Factory) NewTerm(sym symbol.Symbol, args []Term) Term {
	if int(sym.Arity()) != len(args) {
		panic(fmt.Errorf("%w: symbol arity %d, got %d args", ErrArityMismatch, sym.Arity(), len(args)))
	}
	for _, a := range args {
		if a.n.factory != f {
			panic(fmt.Errorf("%w", ErrForeignFactory))
		}
	}

	key := internKey(sym, args)
	for _, candidate := range f.buckets[key] {
		if structurallyEqual(candidate, sym, args) {
			return Term{n: candidate}
		}
	}

	stored := make([]Term, len(args))
	copy(stored, args)
	n := &node{sym: sym, args: stored, serial: f.next, factory: f}
	f.next++
	f.buckets[key] = append(f.buckets[key], n)
	return Term{n: n}
}

func internKey(sym symbol.Symbol, args []Term) uint64 {
	h := fnv1a.New()
	h.WriteUint32(uint32(sym.Kind()))
	h.WriteUint32(uint32(sym.ID()))
	h.WriteUint32(uint32(sym.Sort()))
	h.WriteUint32(uint32(sym.Arity()))
	for _, a := range args {
		h.WriteUint64(a.n.serial)
	}
	return h.Sum64()
}

func structurallyEqual(n *node, sym symbol.Symbol, args []Term) bool {
	if n.sym != sym || len(n.args) != len(args) {
		return false
	}
	for i, a := range args {
		if n.args[i].n != a.n {
			return false
		}
	}
	return true
}
