package common

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizedTypeLengths(t *testing.T) {
	assert.Len(t, Hash64{}.Bytes(), 8)
	assert.Len(t, Hash128{}.Bytes(), 16)
	assert.Len(t, Address{}.Bytes(), 20)
	assert.Len(t, Hash{}.Bytes(), 32)
	assert.Len(t, Hash512{}.Bytes(), 64)
	assert.Len(t, Signature{}.Bytes(), 65)
	assert.Len(t, Hash1024{}.Bytes(), 128)
	assert.Len(t, Bloom{}.Bytes(), 256)
}

func TestHash64Uint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0xdeadbeef, 1<<64 - 1} {
		h := Uint64ToHash64(v)
		assert.Equal(t, v, h.Uint64())
		assert.Equal(t, v, h.Big().Uint64())
	}
}

func TestHash128SetBytes(t *testing.T) {
	h := BytesToHash128([]byte{1, 2, 3})
	assert.Equal(t, Hash128{13: 1, 14: 2, 15: 3}, h)

	long := make([]byte, 20)
	long[3] = 0xaa
	long[4] = 0xbb
	h = BytesToHash128(long)
	assert.Equal(t, byte(0xbb), h[0], "oversized input keeps its low bytes")
}

func TestHash512Resize(t *testing.T) {
	var h Hash
	for i := range h {
		h[i] = byte(i + 1)
	}

	left := AlignedBytesToHash512(h[:], AlignLeft)
	assert.Equal(t, h[:], left[:HashLength])
	assert.True(t, isZero(left[HashLength:]))

	right := AlignedBytesToHash512(h[:], AlignRight)
	assert.True(t, isZero(right[:Hash512Length-HashLength]))
	assert.Equal(t, h[:], right[Hash512Length-HashLength:])
}

func TestSignatureHexRoundTrip(t *testing.T) {
	var sig Signature
	sig[0] = 0x1b
	sig[64] = 0x01

	var dec Signature
	require.NoError(t, dec.UnmarshalText([]byte(sig.Hex())))
	assert.Equal(t, sig, dec)

	// Fixed-size decoding rejects wrong lengths.
	assert.Error(t, dec.UnmarshalText([]byte(Hash{}.Hex())))
}

func TestHash1024Increment(t *testing.T) {
	var h Hash1024
	for i := range h {
		h[i] = 0xff
	}
	h.Increment()
	assert.True(t, h.IsZero())
	assert.Equal(t, Hash1024Length*8, h.FirstBitSet())
}

func TestSizedRandomDeterminism(t *testing.T) {
	a := RandomHash512(rand.New(rand.NewSource(7)))
	b := RandomHash512(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
	assert.False(t, a.IsZero())
}

func TestSizedBitwise(t *testing.T) {
	a := BytesToHash64([]byte{0xf0, 0x0f, 0xff, 0x00, 0xaa, 0x55, 0x01, 0x80})
	b := a.Not()

	assert.True(t, a.Or(b).Not().IsZero())
	assert.True(t, a.And(b).IsZero())
	assert.Equal(t, a.Or(b), a.Xor(b))

	c := a
	c.Set(b)
	assert.Equal(t, b, c)
	assert.Equal(t, -a.Cmp(b), b.Cmp(a))
}
