// Code in this file is expanded from types_template.go for each of the
// fixed sizes below; keep the method sets in sync with the template.

package common

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/atlaschain/go-atlas/common/bitutil"
	"github.com/atlaschain/go-atlas/common/hexutil"
)

const (
	// Hash64Length is the length of a short hash in bytes.
	Hash64Length = 8
	// Hash128Length is the length of a 128 bit hash in bytes.
	Hash128Length = 16
	// Hash512Length is the length of a 512 bit hash in bytes.
	Hash512Length = 64
	// SignatureLength is the length of a recoverable signature in bytes.
	SignatureLength = 65
	// Hash1024Length is the length of a 1024 bit hash in bytes.
	Hash1024Length = 128
)

type Hash64 [Hash64Length]byte

func BytesToHash64(b []byte) Hash64 {
	var h Hash64
	h.SetBytes(b)
	return h
}

func StringToHash64(s string) Hash64 { return BytesToHash64([]byte(s)) }
func BigToHash64(b *big.Int) Hash64  { return BytesToHash64(b.Bytes()) }
func HexToHash64(s string) Hash64    { return BytesToHash64(FromHex(s)) }

func Uint64ToHash64(v uint64) Hash64 {
	var h Hash64
	putUint64(h[:], v)
	return h
}

func Hash64FromBytes(b []byte) (Hash64, error) {
	var h Hash64
	if len(b) != Hash64Length {
		return h, fmt.Errorf("invalid Hash64 length: have %d, want %d", len(b), Hash64Length)
	}
	copy(h[:], b)
	return h, nil
}

func AlignedBytesToHash64(b []byte, al Align) Hash64 {
	var h Hash64
	setAligned(h[:], b, al)
	return h
}

func RandomHash64(r *rand.Rand) Hash64 {
	var h Hash64
	randomFill(r, h[:])
	return h
}

func (h Hash64) Str() string   { return string(h[:]) }
func (h Hash64) Bytes() []byte { return h[:] }
func (h Hash64) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Hash64) Hex() string   { return hexutil.Encode(h[:]) }

func (h Hash64) String() string { return h.Hex() }

func (h Hash64) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

func (h Hash64) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Hash64) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash64", input, h[:])
}

func (h *Hash64) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash64Length:]
	}
	copy(h[Hash64Length-len(b):], b)
}

func (h *Hash64) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *Hash64) SetString(s string) { h.SetBytes([]byte(s)) }

func (h *Hash64) Set(other Hash64) {
	for i, v := range other {
		h[i] = v
	}
}

func (h *Hash64) Clear() {
	*h = Hash64{}
}

func (h *Hash64) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

func (h *Hash64) Increment() {
	incBytes(h[:])
}

func (h Hash64) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

func (h Hash64) Cmp(other Hash64) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash64) Xor(other Hash64) Hash64 {
	var out Hash64
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash64) Or(other Hash64) Hash64 {
	var out Hash64
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash64) And(other Hash64) Hash64 {
	var out Hash64
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

func (h Hash64) Not() Hash64 {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

func (h Hash64) Contains(other Hash64) bool {
	return bytesContain(h[:], other[:])
}

func (h Hash64) FirstBitSet() int {
	return firstBitSet(h[:])
}

type Hash128 [Hash128Length]byte

func BytesToHash128(b []byte) Hash128 {
	var h Hash128
	h.SetBytes(b)
	return h
}

func StringToHash128(s string) Hash128 { return BytesToHash128([]byte(s)) }
func BigToHash128(b *big.Int) Hash128  { return BytesToHash128(b.Bytes()) }
func HexToHash128(s string) Hash128    { return BytesToHash128(FromHex(s)) }

func Uint64ToHash128(v uint64) Hash128 {
	var h Hash128
	putUint64(h[:], v)
	return h
}

func Hash128FromBytes(b []byte) (Hash128, error) {
	var h Hash128
	if len(b) != Hash128Length {
		return h, fmt.Errorf("invalid Hash128 length: have %d, want %d", len(b), Hash128Length)
	}
	copy(h[:], b)
	return h, nil
}

func AlignedBytesToHash128(b []byte, al Align) Hash128 {
	var h Hash128
	setAligned(h[:], b, al)
	return h
}

func RandomHash128(r *rand.Rand) Hash128 {
	var h Hash128
	randomFill(r, h[:])
	return h
}

func (h Hash128) Str() string   { return string(h[:]) }
func (h Hash128) Bytes() []byte { return h[:] }
func (h Hash128) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Hash128) Hex() string   { return hexutil.Encode(h[:]) }

func (h Hash128) String() string { return h.Hex() }

func (h Hash128) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

func (h Hash128) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Hash128) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash128", input, h[:])
}

func (h *Hash128) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash128Length:]
	}
	copy(h[Hash128Length-len(b):], b)
}

func (h *Hash128) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *Hash128) SetString(s string) { h.SetBytes([]byte(s)) }

func (h *Hash128) Set(other Hash128) {
	for i, v := range other {
		h[i] = v
	}
}

func (h *Hash128) Clear() {
	*h = Hash128{}
}

func (h *Hash128) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

func (h *Hash128) Increment() {
	incBytes(h[:])
}

func (h Hash128) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

func (h Hash128) Cmp(other Hash128) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash128) Xor(other Hash128) Hash128 {
	var out Hash128
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash128) Or(other Hash128) Hash128 {
	var out Hash128
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash128) And(other Hash128) Hash128 {
	var out Hash128
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

func (h Hash128) Not() Hash128 {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

func (h Hash128) Contains(other Hash128) bool {
	return bytesContain(h[:], other[:])
}

func (h Hash128) FirstBitSet() int {
	return firstBitSet(h[:])
}

type Hash512 [Hash512Length]byte

func BytesToHash512(b []byte) Hash512 {
	var h Hash512
	h.SetBytes(b)
	return h
}

func StringToHash512(s string) Hash512 { return BytesToHash512([]byte(s)) }
func BigToHash512(b *big.Int) Hash512  { return BytesToHash512(b.Bytes()) }
func HexToHash512(s string) Hash512    { return BytesToHash512(FromHex(s)) }

func Uint64ToHash512(v uint64) Hash512 {
	var h Hash512
	putUint64(h[:], v)
	return h
}

func Hash512FromBytes(b []byte) (Hash512, error) {
	var h Hash512
	if len(b) != Hash512Length {
		return h, fmt.Errorf("invalid Hash512 length: have %d, want %d", len(b), Hash512Length)
	}
	copy(h[:], b)
	return h, nil
}

func AlignedBytesToHash512(b []byte, al Align) Hash512 {
	var h Hash512
	setAligned(h[:], b, al)
	return h
}

func RandomHash512(r *rand.Rand) Hash512 {
	var h Hash512
	randomFill(r, h[:])
	return h
}

func (h Hash512) Str() string   { return string(h[:]) }
func (h Hash512) Bytes() []byte { return h[:] }
func (h Hash512) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Hash512) Hex() string   { return hexutil.Encode(h[:]) }

func (h Hash512) String() string { return h.Hex() }

func (h Hash512) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

func (h Hash512) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Hash512) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash512", input, h[:])
}

func (h *Hash512) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash512Length:]
	}
	copy(h[Hash512Length-len(b):], b)
}

func (h *Hash512) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *Hash512) SetString(s string) { h.SetBytes([]byte(s)) }

func (h *Hash512) Set(other Hash512) {
	for i, v := range other {
		h[i] = v
	}
}

func (h *Hash512) Clear() {
	*h = Hash512{}
}

func (h *Hash512) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

func (h *Hash512) Increment() {
	incBytes(h[:])
}

func (h Hash512) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

func (h Hash512) Cmp(other Hash512) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash512) Xor(other Hash512) Hash512 {
	var out Hash512
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash512) Or(other Hash512) Hash512 {
	var out Hash512
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash512) And(other Hash512) Hash512 {
	var out Hash512
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

func (h Hash512) Not() Hash512 {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

func (h Hash512) Contains(other Hash512) bool {
	return bytesContain(h[:], other[:])
}

func (h Hash512) FirstBitSet() int {
	return firstBitSet(h[:])
}

type Signature [SignatureLength]byte

func BytesToSignature(b []byte) Signature {
	var h Signature
	h.SetBytes(b)
	return h
}

func StringToSignature(s string) Signature { return BytesToSignature([]byte(s)) }
func BigToSignature(b *big.Int) Signature  { return BytesToSignature(b.Bytes()) }
func HexToSignature(s string) Signature    { return BytesToSignature(FromHex(s)) }

func Uint64ToSignature(v uint64) Signature {
	var h Signature
	putUint64(h[:], v)
	return h
}

func SignatureFromBytes(b []byte) (Signature, error) {
	var h Signature
	if len(b) != SignatureLength {
		return h, fmt.Errorf("invalid Signature length: have %d, want %d", len(b), SignatureLength)
	}
	copy(h[:], b)
	return h, nil
}

func AlignedBytesToSignature(b []byte, al Align) Signature {
	var h Signature
	setAligned(h[:], b, al)
	return h
}

func RandomSignature(r *rand.Rand) Signature {
	var h Signature
	randomFill(r, h[:])
	return h
}

func (h Signature) Str() string   { return string(h[:]) }
func (h Signature) Bytes() []byte { return h[:] }
func (h Signature) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Signature) Hex() string   { return hexutil.Encode(h[:]) }

func (h Signature) String() string { return h.Hex() }

func (h Signature) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

func (h Signature) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Signature) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Signature", input, h[:])
}

func (h *Signature) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-SignatureLength:]
	}
	copy(h[SignatureLength-len(b):], b)
}

func (h *Signature) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *Signature) SetString(s string) { h.SetBytes([]byte(s)) }

func (h *Signature) Set(other Signature) {
	for i, v := range other {
		h[i] = v
	}
}

func (h *Signature) Clear() {
	*h = Signature{}
}

func (h *Signature) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

func (h *Signature) Increment() {
	incBytes(h[:])
}

func (h Signature) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

func (h Signature) Cmp(other Signature) int {
	return bytes.Compare(h[:], other[:])
}

func (h Signature) Xor(other Signature) Signature {
	var out Signature
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

func (h Signature) Or(other Signature) Signature {
	var out Signature
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

func (h Signature) And(other Signature) Signature {
	var out Signature
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

func (h Signature) Not() Signature {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

func (h Signature) Contains(other Signature) bool {
	return bytesContain(h[:], other[:])
}

func (h Signature) FirstBitSet() int {
	return firstBitSet(h[:])
}

type Hash1024 [Hash1024Length]byte

func BytesToHash1024(b []byte) Hash1024 {
	var h Hash1024
	h.SetBytes(b)
	return h
}

func StringToHash1024(s string) Hash1024 { return BytesToHash1024([]byte(s)) }
func BigToHash1024(b *big.Int) Hash1024  { return BytesToHash1024(b.Bytes()) }
func HexToHash1024(s string) Hash1024    { return BytesToHash1024(FromHex(s)) }

func Uint64ToHash1024(v uint64) Hash1024 {
	var h Hash1024
	putUint64(h[:], v)
	return h
}

func Hash1024FromBytes(b []byte) (Hash1024, error) {
	var h Hash1024
	if len(b) != Hash1024Length {
		return h, fmt.Errorf("invalid Hash1024 length: have %d, want %d", len(b), Hash1024Length)
	}
	copy(h[:], b)
	return h, nil
}

func AlignedBytesToHash1024(b []byte, al Align) Hash1024 {
	var h Hash1024
	setAligned(h[:], b, al)
	return h
}

func RandomHash1024(r *rand.Rand) Hash1024 {
	var h Hash1024
	randomFill(r, h[:])
	return h
}

func (h Hash1024) Str() string   { return string(h[:]) }
func (h Hash1024) Bytes() []byte { return h[:] }
func (h Hash1024) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Hash1024) Hex() string   { return hexutil.Encode(h[:]) }

func (h Hash1024) String() string { return h.Hex() }

func (h Hash1024) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

func (h Hash1024) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Hash1024) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash1024", input, h[:])
}

func (h *Hash1024) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash1024Length:]
	}
	copy(h[Hash1024Length-len(b):], b)
}

func (h *Hash1024) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *Hash1024) SetString(s string) { h.SetBytes([]byte(s)) }

func (h *Hash1024) Set(other Hash1024) {
	for i, v := range other {
		h[i] = v
	}
}

func (h *Hash1024) Clear() {
	*h = Hash1024{}
}

func (h *Hash1024) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

func (h *Hash1024) Increment() {
	incBytes(h[:])
}

func (h Hash1024) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

func (h Hash1024) Cmp(other Hash1024) int {
	return bytes.Compare(h[:], other[:])
}

func (h Hash1024) Xor(other Hash1024) Hash1024 {
	var out Hash1024
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash1024) Or(other Hash1024) Hash1024 {
	var out Hash1024
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

func (h Hash1024) And(other Hash1024) Hash1024 {
	var out Hash1024
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

func (h Hash1024) Not() Hash1024 {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

func (h Hash1024) Contains(other Hash1024) bool {
	return bytesContain(h[:], other[:])
}

func (h Hash1024) FirstBitSet() int {
	return firstBitSet(h[:])
}

// Uint64 interprets the short hash as a big-endian integer.
func (h Hash64) Uint64() uint64 {
	return binary.BigEndian.Uint64(h[:])
}
