// Package fnv1a implements a deterministic, byte-level 64-bit FNV-1a hash.
//
// The standard library's hash/fnv exists, but it folds multi-byte writes
// big-endian and gives no guarantee beyond that; term and literal interning
// keys need a specific little-endian fold so that the same logical key
// always lands in the same bucket, on any platform. That requirement is
// what rules out hash/fnv here — everything else in this repo reaches for
// the standard library first.
package fnv1a

import "encoding/binary"

const (
	offsetBasis uint64 = 0xCBF29CE484222325
	prime       uint64 = 0x100000001B3
)

// Hasher is a running FNV-1a state. The zero value is not usable; use New.
// Hasher implements hash.Hash64.
type Hasher struct {
	state uint64
}

// New returns a Hasher initialized to the FNV-1a offset basis.
func New() *Hasher {
	return &Hasher{state: offsetBasis}
}

// Reset restores the hasher to the offset basis.
func (h *Hasher) Reset() { h.state = offsetBasis }

// Write folds p into the running state one byte at a time, low index first.
func (h *Hasher) Write(p []byte) (int, error) {
	state := h.state
	for _, b := range p {
		state = (state ^ uint64(b)) * prime
	}
	h.state = state
	return len(p), nil
}

// WriteByte folds a single byte into the running state.
func (h *Hasher) WriteByte(b byte) error {
	h.state = (h.state ^ uint64(b)) * prime
	return nil
}

// WriteUint64 folds v into the running state as eight little-endian bytes.
func (h *Hasher) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, _ = h.Write(b[:])
}

// WriteUint32 folds v into the running state as four little-endian bytes.
func (h *Hasher) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, _ = h.Write(b[:])
}

// Sum64 returns the current hash value. It does not reset the state.
func (h *Hasher) Sum64() uint64 { return h.state }

// Sum appends the current hash, big-endian, to b and returns the result,
// satisfying hash.Hash.
func (h *Hasher) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], h.state)
	return append(b, out[:]...)
}

// Size returns the number of bytes Sum will append: 8.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the hasher's natural block size: 1 (byte at a time).
func (h *Hasher) BlockSize() int { return 1 }

// Sum64String is a convenience for hashing a single string to completion.
func Sum64String(s string) uint64 {
	h := New()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Sum64Bytes is a convenience for hashing a single byte slice to completion.
func Sum64Bytes(b []byte) uint64 {
	h := New()
	_, _ = h.Write(b)
	return h.Sum64()
}
