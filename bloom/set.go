package bloom

import "github.com/go-lela/lela/fnv1a"

// Hashable is implemented by values that can feed a deterministic digest
// into the FNV-1a hasher underlying a Set. It plays the role Rust's std
// Hash trait plays for the original BloomSet::add<T: Hash>.
type Hashable interface {
	HashInto(h *fnv1a.Hasher)
}

// Set is a typed wrapper around a Bloom that hashes an arbitrary Hashable
// value with fnv1a before delegating to the bit-level filter.
type Set[T Hashable] struct {
	bits Bloom
}

// Add inserts x into the set.
func (s *Set[T]) Add(x T) {
	s.bits.Add(digest(x))
}

// PossiblyContains reports whether x might have been added; false is
// certain, true may be a false positive.
func (s *Set[T]) PossiblyContains(x T) bool {
	return s.bits.Contains(digest(x))
}

// PossiblyIncludes reports whether s might be a superset of other: every
// element possibly in other is also possibly in s. A false result is
// certain; a true result may be a false positive.
func (s Set[T]) PossiblyIncludes(other Set[T]) bool {
	return Subset(other.bits, s.bits)
}

// PossiblyOverlap reports whether a and b might share an element.
func PossiblyOverlap[T Hashable](a, b Set[T]) bool {
	return Overlap(a.bits, b.bits)
}

// UnionSet returns the union of a and b.
func UnionSet[T Hashable](a, b Set[T]) Set[T] {
	return Set[T]{bits: Union(a.bits, b.bits)}
}

// IntersectionSet returns the intersection of a and b.
func IntersectionSet[T Hashable](a, b Set[T]) Set[T] {
	return Set[T]{bits: Intersection(a.bits, b.bits)}
}

func digest[T Hashable](x T) uint64 {
	h := fnv1a.New()
	x.HashInto(h)
	return h.Sum64()
}
