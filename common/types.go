package common

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"math/rand"
	"reflect"

	"github.com/atlaschain/go-atlas/common/bitutil"
	"github.com/atlaschain/go-atlas/common/hexutil"
	"golang.org/x/crypto/sha3"
)

const (
	// HashLength is the expected length of a hash in bytes.
	HashLength = 32
	// AddressLength is the expected length of an address in bytes.
	AddressLength = 20
)

var (
	hashT    = reflect.TypeOf(Hash{})
	addressT = reflect.TypeOf(Address{})
)

// Hash represents the 32 byte hash of arbitrary data. Byte 0 is the most
// significant when the hash is interpreted as a big-endian integer.
type Hash [HashLength]byte

// BytesToHash sets b to a hash. If b is larger than the hash length, b is
// cropped from the left; if smaller, it is zero-padded on the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

func StringToHash(s string) Hash { return BytesToHash([]byte(s)) }

// BigToHash converts b to a hash, using its big-endian byte representation.
// The sign of b is ignored.
func BigToHash(b *big.Int) Hash { return BytesToHash(b.Bytes()) }

func HexToHash(s string) Hash { return BytesToHash(FromHex(s)) }

// Uint64ToHash writes v into the low 8 bytes of a hash.
func Uint64ToHash(v uint64) Hash {
	var h Hash
	putUint64(h[:], v)
	return h
}

// HashFromBytes is the strict counterpart of BytesToHash: input of any
// length other than HashLength is an error instead of being cropped or
// padded.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLength {
		return h, fmt.Errorf("invalid hash length: have %d, want %d", len(b), HashLength)
	}
	copy(h[:], b)
	return h, nil
}

// AlignedBytesToHash builds a hash from b under an explicit alignment
// policy. See Align for the placement rules.
func AlignedBytesToHash(b []byte, al Align) Hash {
	var h Hash
	setAligned(h[:], b, al)
	return h
}

// RandomHash returns a hash filled from r, or from the shared math/rand
// source when r is nil.
func RandomHash(r *rand.Rand) Hash {
	var h Hash
	randomFill(r, h[:])
	return h
}

func (h Hash) Str() string   { return string(h[:]) }
func (h Hash) Bytes() []byte { return h[:] }
func (h Hash) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }
func (h Hash) Hex() string   { return hexutil.Encode(h[:]) }

// TerminalString implements log.TerminalStringer, formatting a string for
// console output during logging.
func (h Hash) TerminalString() string {
	return fmt.Sprintf("%x…%x", h[:3], h[29:])
}

func (h Hash) String() string {
	return h.Hex()
}

// Format implements fmt.Formatter, forcing the byte slice to be formatted
// as is, without going through the stringer interface used for logging.
func (h Hash) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), h[:])
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Hash", input, h[:])
}

// UnmarshalJSON parses a hash in hex syntax.
func (h *Hash) UnmarshalJSON(input []byte) error {
	return hexutil.UnmarshalFixedJSON(hashT, input, h[:])
}

// MarshalText returns the hex representation of h.
func (h Hash) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

// SetBytes sets the hash to the value of b. If b is larger than the hash
// length, b is cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// SetBytesAligned sets the hash to the value of b under an explicit
// alignment policy.
func (h *Hash) SetBytesAligned(b []byte, al Align) {
	setAligned(h[:], b, al)
}

func (h *Hash) SetString(s string) { h.SetBytes([]byte(s)) }

// Set sets h to other.
func (h *Hash) Set(other Hash) {
	for i, v := range other {
		h[i] = v
	}
}

// Clear zeroes the hash in place.
func (h *Hash) Clear() {
	*h = Hash{}
}

// Randomize fills the hash from r, or from the shared math/rand source
// when r is nil.
func (h *Hash) Randomize(r *rand.Rand) {
	randomFill(r, h[:])
}

// Increment adds one to the hash interpreted as a big-endian integer,
// wrapping to zero on overflow.
func (h *Hash) Increment() {
	incBytes(h[:])
}

// IsZero reports whether the hash is the all-zero value.
func (h Hash) IsZero() bool {
	return !bitutil.TestBytes(h[:])
}

// Cmp compares two hashes lexicographically, byte 0 most significant.
func (h Hash) Cmp(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

// Xor returns the bitwise exclusive-or of h and other.
func (h Hash) Xor(other Hash) Hash {
	var out Hash
	bitutil.XORBytes(out[:], h[:], other[:])
	return out
}

// Or returns the bitwise or of h and other.
func (h Hash) Or(other Hash) Hash {
	var out Hash
	bitutil.ORBytes(out[:], h[:], other[:])
	return out
}

// And returns the bitwise and of h and other.
func (h Hash) And(other Hash) Hash {
	var out Hash
	bitutil.ANDBytes(out[:], h[:], other[:])
	return out
}

// Not returns the bitwise complement of h.
func (h Hash) Not() Hash {
	for i := range h {
		h[i] = ^h[i]
	}
	return h
}

// Contains reports whether every bit set in other is also set in h.
func (h Hash) Contains(other Hash) bool {
	return bytesContain(h[:], other[:])
}

// FirstBitSet returns the index of the first one bit, counting from the
// most significant bit of byte 0, or HashLength*8 when h is zero.
func (h Hash) FirstBitSet() int {
	return firstBitSet(h[:])
}

// Generate implements testing/quick.Generator.
func (h Hash) Generate(rand *rand.Rand, size int) reflect.Value {
	m := rand.Intn(len(h))
	for i := len(h) - 1; i > m; i-- {
		h[i] = byte(rand.Uint32())
	}
	return reflect.ValueOf(h)
}

// EmptyHash reports whether h is the all-zero hash.
func EmptyHash(h Hash) bool {
	return h == Hash{}
}

// UnprefixedHash allows marshaling a Hash without the 0x prefix.
type UnprefixedHash Hash

// UnmarshalText decodes the hash from hex. The 0x prefix is optional.
func (h *UnprefixedHash) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedUnprefixedText("UnprefixedHash", input, h[:])
}

// MarshalText encodes the hash as hex.
func (h UnprefixedHash) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h[:])), nil
}

// Address represents the 20 byte address of an account.
type Address [AddressLength]byte

// BytesToAddress sets b to an address. If b is larger than the address
// length, b is cropped from the left; if smaller, it is zero-padded on
// the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

func StringToAddress(s string) Address { return BytesToAddress([]byte(s)) }

// BigToAddress converts b to an address, using its big-endian byte
// representation. The sign of b is ignored.
func BigToAddress(b *big.Int) Address { return BytesToAddress(b.Bytes()) }

func HexToAddress(s string) Address { return BytesToAddress(FromHex(s)) }

// Uint64ToAddress writes v into the low 8 bytes of an address.
func Uint64ToAddress(v uint64) Address {
	var a Address
	putUint64(a[:], v)
	return a
}

// AddressFromBytes is the strict counterpart of BytesToAddress: input of
// any length other than AddressLength is an error.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("invalid address length: have %d, want %d", len(b), AddressLength)
	}
	copy(a[:], b)
	return a, nil
}

// AlignedBytesToAddress builds an address from b under an explicit
// alignment policy.
func AlignedBytesToAddress(b []byte, al Align) Address {
	var a Address
	setAligned(a[:], b, al)
	return a
}

// RandomAddress returns an address filled from r, or from the shared
// math/rand source when r is nil.
func RandomAddress(r *rand.Rand) Address {
	var a Address
	randomFill(r, a[:])
	return a
}

// Right160 extracts the low 20 bytes of a 32 byte hash into an address.
func Right160(h Hash) Address {
	var a Address
	copy(a[:], h[HashLength-AddressLength:])
	return a
}

// IsHexAddress verifies whether a string can represent a valid
// hex-encoded address or not.
func IsHexAddress(s string) bool {
	if hasHexPrefix(s) {
		s = s[2:]
	}
	return len(s) == 2*AddressLength && isHex(s)
}

func (a Address) Str() string   { return string(a[:]) }
func (a Address) Bytes() []byte { return a[:] }
func (a Address) Big() *big.Int { return new(big.Int).SetBytes(a[:]) }

// Hash converts the address to a hash by left-padding it with zeros.
func (a Address) Hash() Hash { return BytesToHash(a[:]) }

// Hex returns a checksummed hex string representation of the address. The
// case of each letter encodes four bits of the keccak hash of the
// lowercase hex address.
func (a Address) Hex() string {
	unchecksummed := hex.EncodeToString(a[:])
	sha := sha3.NewLegacyKeccak256()
	sha.Write([]byte(unchecksummed))
	hash := sha.Sum(nil)

	result := []byte(unchecksummed)
	for i := 0; i < len(result); i++ {
		hashByte := hash[i/2]
		if i%2 == 0 {
			hashByte = hashByte >> 4
		} else {
			hashByte &= 0xf
		}
		if result[i] > '9' && hashByte > 7 {
			result[i] -= 32
		}
	}
	return "0x" + string(result)
}

func (a Address) String() string {
	return a.Hex()
}

// Format implements fmt.Formatter, forcing the byte slice to be formatted
// as is, without going through the stringer interface used for logging.
func (a Address) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "%"+string(c), a[:])
}

// SetBytes sets the address to the value of b. If b is larger than the
// address length, b is cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// SetBytesAligned sets the address to the value of b under an explicit
// alignment policy.
func (a *Address) SetBytesAligned(b []byte, al Align) {
	setAligned(a[:], b, al)
}

func (a *Address) SetString(s string) { a.SetBytes([]byte(s)) }

// Set sets a to other.
func (a *Address) Set(other Address) {
	for i, v := range other {
		a[i] = v
	}
}

// Clear zeroes the address in place.
func (a *Address) Clear() {
	*a = Address{}
}

// Randomize fills the address from r, or from the shared math/rand source
// when r is nil.
func (a *Address) Randomize(r *rand.Rand) {
	randomFill(r, a[:])
}

// Increment adds one to the address interpreted as a big-endian integer,
// wrapping to zero on overflow.
func (a *Address) Increment() {
	incBytes(a[:])
}

// IsZero reports whether the address is the all-zero value.
func (a Address) IsZero() bool {
	return !bitutil.TestBytes(a[:])
}

// Cmp compares two addresses lexicographically, byte 0 most significant.
func (a Address) Cmp(other Address) int {
	return bytes.Compare(a[:], other[:])
}

// Xor returns the bitwise exclusive-or of a and other.
func (a Address) Xor(other Address) Address {
	var out Address
	bitutil.XORBytes(out[:], a[:], other[:])
	return out
}

// Or returns the bitwise or of a and other.
func (a Address) Or(other Address) Address {
	var out Address
	bitutil.ORBytes(out[:], a[:], other[:])
	return out
}

// And returns the bitwise and of a and other.
func (a Address) And(other Address) Address {
	var out Address
	bitutil.ANDBytes(out[:], a[:], other[:])
	return out
}

// Not returns the bitwise complement of a.
func (a Address) Not() Address {
	for i := range a {
		a[i] = ^a[i]
	}
	return a
}

// Contains reports whether every bit set in other is also set in a.
func (a Address) Contains(other Address) bool {
	return bytesContain(a[:], other[:])
}

// FirstBitSet returns the index of the first one bit, counting from the
// most significant bit of byte 0, or AddressLength*8 when a is zero.
func (a Address) FirstBitSet() int {
	return firstBitSet(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return hexutil.Bytes(a[:]).MarshalText()
}

// UnmarshalText parses an address in hex syntax.
func (a *Address) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Address", input, a[:])
}

// UnmarshalJSON parses an address in hex syntax.
func (a *Address) UnmarshalJSON(input []byte) error {
	return hexutil.UnmarshalFixedJSON(addressT, input, a[:])
}

// Generate implements testing/quick.Generator.
func (a Address) Generate(rand *rand.Rand, size int) reflect.Value {
	m := rand.Intn(len(a))
	for i := len(a) - 1; i > m; i-- {
		a[i] = byte(rand.Uint32())
	}
	return reflect.ValueOf(a)
}

// UnprefixedAddress allows marshaling an Address without the 0x prefix.
type UnprefixedAddress Address

// UnmarshalText decodes the address from hex. The 0x prefix is optional.
func (a *UnprefixedAddress) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedUnprefixedText("UnprefixedAddress", input, a[:])
}

// MarshalText encodes the address as hex.
func (a UnprefixedAddress) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(a[:])), nil
}
