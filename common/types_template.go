//go:build none
// +build none

//sed -e 's/_N_/Hash64/g' -e 's/_S_/Hash64Length/g' -e '1,3d' types_template.go >> hashes.go

package common

import (
	"bytes"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/atlaschain/go-atlas/common/bitutil"
	"github.com/atlaschain/go-atlas/common/hexutil"
)

type _N_ [_S_]byte

func BytesTo_N_(b []byte) _N_ {
	var h _N_
	h.SetBytes(b)
	return h
}

func StringTo_N_(s string) _N_ { return BytesTo_N_([]byte(s)) }
func BigTo_N_(b *big.Int) _N_  { return BytesTo_N_(b.Bytes()) }
func HexTo_N_(s string) _N_    { return BytesTo_N_(FromHex(s)) }

func Uint64To_N_(v uint64) _N_ {
	var h _N_
	putUint64(h[:], v)
	return h
}

func _N_FromBytes(b []byte) (_N_, error) {
	var h _N_
	if len(b) != _S_ {
		return h, fmt.Errorf("invalid _N_ length: have %d, want %d", len(b), _S_)
	}
	copy(h[:], b)
	return h, nil
}

func AlignedBytesTo_N_(b []byte, al Align) _N_ {
	var h _N_
	setAligned(h[:], b, al)
	return h
}

func Random_N_(r *rand.Rand) _N_ {
	var h _N_
	randomFill(r, h[:])
	return h
}

func (h _N_) Str() string   { return string(h[:]) }
func (h _N_) Bytes() []byte { return h[:] }
func (h _N_) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h _N_) Hex() string   { return hexutil.Encode(h[:]) }

func (h _N_) String() string { return h.Hex() }

func (h _N_) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

func (h _N_) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *_N_) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("_N_", input, h[:])
}

func (h *_N_) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-_S_:]
	}
	copy(h[_S_-len(b):], b)
}

func (h *_N_) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *_N_) SetString(s string) { h.SetBytes([]byte(s)) }

func (h *_N_) Set(other _N_) {
	for i, v := range other {
		h[i] = v
	}
}

func (h *_N_) Clear() {
	*h = _N_{}
}

func (h *_N_) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

func (h *_N_) Increment() {
	incBytes(h[:])
}

func (h _N_) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

func (h _N_) Cmp(other _N_) int {
	return bytes.Compare(h[:], other[:])
}

func (h _N_) Xor(other _N_) _N_ {
	var out _N_
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

func (h _N_) Or(other _N_) _N_ {
	var out _N_
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

func (h _N_) And(other _N_) _N_ {
	var out _N_
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

func (h _N_) Not() _N_ {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

func (h _N_) Contains(other _N_) bool {
	return bytesContain(h[:], other[:])
}

func (h _N_) FirstBitSet() int {
	return firstBitSet(h[:])
}
