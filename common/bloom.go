package common

import (
	"bytes"
	"fmt"
	"math/big"
	"math/bits"
	"math/rand"

	"github.com/atlaschain/go-atlas/common/bitutil"
	"github.com/atlaschain/go-atlas/common/hexutil"
)

const (
	// BloomLength is the length of a bloom filter in bytes.
	BloomLength = 256
	// BloomBitLength is the number of bits a bloom filter addresses.
	BloomBitLength = 8 * BloomLength
	// BloomIndexes is the default number of bits set per added hash.
	BloomIndexes = 3
)

// Bloom represents a 2048 bit bloom filter. Bit addressing is big-endian:
// bit i of the filter is bit i%8 of byte BloomLength-1-i/8.
type Bloom [BloomLength]byte

func BytesToBloom(b []byte) Bloom {
	var h Bloom
	h.SetBytes(b)
	return h
}

func StringToBloom(s string) Bloom { return BytesToBloom([]byte(s)) }
func BigToBloom(b *big.Int) Bloom  { return BytesToBloom(b.Bytes()) }
func HexToBloom(s string) Bloom    { return BytesToBloom(FromHex(s)) }

func Uint64ToBloom(v uint64) Bloom {
	var h Bloom
	putUint64(h[:], v)
	return h
}

func BloomFromBytes(b []byte) (Bloom, error) {
	var h Bloom
	if len(b) != BloomLength {
		return h, fmt.Errorf("invalid Bloom length: have %d, want %d", len(b), BloomLength)
	}
	copy(h[:], b)
	return h, nil
}

func AlignedBytesToBloom(b []byte, al Align) Bloom {
	var h Bloom
	setAligned(h[:], b, al)
	return h
}

func RandomBloom(r *rand.Rand) Bloom {
	var h Bloom
	randomFill(r, h[:])
	return h
}

func (h Bloom) Str() string   { return string(h[:]) }
func (h Bloom) Bytes() []byte { return h[:] }
func (h Bloom) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Bloom) Hex() string   { return hexutil.Encode(h[:]) }

func (h Bloom) String() string { return h.Hex() }

func (h Bloom) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

func (h Bloom) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Bloom) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Bloom", input, h[:])
}

func (h *Bloom) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-BloomLength:]
	}
	copy(h[BloomLength-len(b):], b)
}

func (h *Bloom) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *Bloom) SetString(s string) { h.SetBytes([]byte(s)) }

func (h *Bloom) Set(other Bloom) {
	for i, v := range other {
		h[i] = v
	}
}

func (h *Bloom) Clear() {
	*h = Bloom{}
}

func (h *Bloom) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

func (h *Bloom) Increment() {
	incBytes(h[:])
}

func (h Bloom) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

func (h Bloom) Cmp(other Bloom) int {
	return bytes.Compare(h[:], other[:])
}

func (h Bloom) Xor(other Bloom) Bloom {
	var out Bloom
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

func (h Bloom) Or(other Bloom) Bloom {
	var out Bloom
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

func (h Bloom) And(other Bloom) Bloom {
	var out Bloom
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

func (h Bloom) Not() Bloom {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

func (h Bloom) Contains(other Bloom) bool {
	return bytesContain(h[:], other[:])
}

func (h Bloom) FirstBitSet() int {
	return firstBitSet(h[:])
}

// BloomPartInto projects src onto dst as a bloom filter bit-set. For each
// of the k probes it consumes enough bytes from src to address a bit of
// dst, folds them big-endian into an index, masks the index to the filter
// width and sets bit index%8 of byte len(dst)-1-index/8. The length of dst
// must be a power of two and src must supply k probes worth of bytes;
// violating either is a caller error and panics.
func BloomPartInto(dst, src []byte, k int) {
	nbits := len(dst) * 8
	if nbits == 0 || nbits&(nbits-1) != 0 {
		panic(fmt.Sprintf("bloom filter length %d is not a power of two", len(dst)))
	}
	idxBytes := (bits.Len(uint(nbits-1)) + 7) / 8
	if k*idxBytes > len(src) {
		panic(fmt.Sprintf("bloom source too short: %d probes need %d bytes, have %d", k, k*idxBytes, len(src)))
	}
	p := 0
	for i := 0; i < k; i++ {
		index := 0
		for j := 0; j < idxBytes; j++ {
			index = index<<8 | int(src[p])
			p++
		}
		index &= nbits - 1
		dst[len(dst)-1-index/8] |= 1 << (index % 8)
	}
}

// BloomPart projects the hash onto a bloom filter using k probes.
func (h Hash) BloomPart(k int) Bloom {
	var b Bloom
	BloomPartInto(b[:], h[:], k)
	return b
}

// Shift merges the k-probe projection of h into the filter.
func (b *Bloom) Shift(h Hash, k int) {
	part := h.BloomPart(k)
	bitutil.ORBytes(b[:], b[:], part[:])
}

// ContainsHash reports whether the filter already encodes the k-probe
// projection of h. False positives are possible, false negatives are not.
func (b Bloom) ContainsHash(h Hash, k int) bool {
	part := h.BloomPart(k)
	return bytesContain(b[:], part[:])
}

// Add sets the bits of the default projection of h in the filter.
func (b *Bloom) Add(h Hash) {
	b.Shift(h, BloomIndexes)
}

// Test checks whether the default projection of h is encoded in the
// filter.
func (b Bloom) Test(h Hash) bool {
	return b.ContainsHash(h, BloomIndexes)
}
