// Package bloom implements a single 64-bit-word Bloom filter, and a typed
// Set wrapper that hashes arbitrary values before delegating to it.
//
// All queries are sound one-sidedly: Contains and Overlap never produce a
// false negative, only possibly a false positive; Subset, read in the
// "might-include" direction, is likewise a one-sided overapproximation.
// Callers on a hot path (clause subsumption, unit propagation) are expected
// to treat a positive Bloom result as "worth the exact check", never as the
// final answer.
package bloom

// Bloom is a single 64-bit bitset approximating set membership. The zero
// value is the empty filter.
type Bloom uint64

// windows splits key into its four independent 16-bit hash positions.
func windows(key uint64) [4]uint64 {
	return [4]uint64{
		(key >> 0) & 0xFFFF,
		(key >> 16) & 0xFFFF,
		(key >> 32) & 0xFFFF,
		(key >> 48) & 0xFFFF,
	}
}

// Add sets the four bits key maps to.
func (b *Bloom) Add(key uint64) {
	for _, w := range windows(key) {
		*b |= 1 << (w % 64)
	}
}

// Contains reports whether all four bits key maps to are set. A true result
// may be a false positive; a false result is never a false negative.
func (b Bloom) Contains(key uint64) bool {
	for _, w := range windows(key) {
		if b&(1<<(w%64)) == 0 {
			return false
		}
	}
	return true
}

// Union returns the bitwise OR of a and b.
func Union(a, b Bloom) Bloom { return a | b }

// Intersection returns the bitwise AND of a and b.
func Intersection(a, b Bloom) Bloom { return a & b }

// Subset reports whether every bit set in a is also set in b: a "might be a
// subset of" relation, sound in the "a is not a subset" direction.
func Subset(a, b Bloom) bool { return ^a|b == ^Bloom(0) }

// Overlap reports whether a and b share any set bit.
func Overlap(a, b Bloom) bool { return a&b != 0 }
