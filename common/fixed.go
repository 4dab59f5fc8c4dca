package common

import (
	"math/bits"
	"math/rand"
)

// Align selects how bytes are placed when a fixed-size value is built from
// input of a different length.
type Align int

const (
	// AlignLeft copies into the low indices, zero-filling the tail.
	AlignLeft Align = iota
	// AlignRight copies into the high indices, zero-filling the head.
	AlignRight
	// FailIfDifferent accepts only exact-length input; anything else
	// yields the zero value.
	FailIfDifferent
)

// setAligned zero-fills dst and copies min(len(dst), len(src)) bytes from
// src according to the alignment policy. Exact-length input is copied
// verbatim under every policy.
func setAligned(dst, src []byte, al Align) {
	for i := range dst {
		dst[i] = 0
	}
	if len(src) == len(dst) {
		copy(dst, src)
		return
	}
	if al == FailIfDifferent {
		return
	}
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if al == AlignRight {
		for i := 0; i < n; i++ {
			dst[len(dst)-1-i] = src[len(src)-1-i]
		}
		return
	}
	copy(dst[:n], src[:n])
}

// putUint64 writes v into dst big-endian, truncating high-order bytes when
// dst is shorter than 8 bytes and zero-filling the head when it is longer.
func putUint64(dst []byte, v uint64) {
	for i := len(dst); i > 0; i-- {
		dst[i-1] = byte(v)
		v >>= 8
	}
}

// bytesContain reports whether every bit set in b is also set in a.
// a and b must have the same length.
func bytesContain(a, b []byte) bool {
	for i := range a {
		if a[i]&b[i] != b[i] {
			return false
		}
	}
	return true
}

// incBytes increments p as a big-endian integer, carrying into more
// significant bytes and wrapping to all-zero on overflow.
func incBytes(p []byte) {
	for i := len(p) - 1; i >= 0; i-- {
		p[i]++
		if p[i] != 0 {
			break
		}
	}
}

// firstBitSet returns the index of the first one bit, counting from the
// most significant bit of byte 0, or len(p)*8 when p is all zero.
func firstBitSet(p []byte) int {
	for i, b := range p {
		if b != 0 {
			return i*8 + bits.LeadingZeros8(b)
		}
	}
	return len(p) * 8
}

func isZero(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}

func randomFill(r *rand.Rand, p []byte) {
	if r == nil {
		rand.Read(p)
		return
	}
	r.Read(p)
}
