// Package number wraps big.Int with fixed-width unsigned and signed
// semantics: results of every operation are reduced to 256 bits. It is the
// arbitrary-precision collaborator of the fixed-size hash types.
package number

import (
	"math/big"

	"github.com/atlaschain/go-atlas/common"
	"github.com/atlaschain/go-atlas/common/math"
)

func limitUnsigned256(x *Number) *Number {
	math.U256(x.num)
	return x
}

func limitSigned256(x *Number) *Number {
	math.U256(x.num)
	x.num.Set(math.S256(x.num))
	return x
}

// Initialiser builds Numbers sharing one limiter.
type Initialiser func(n int64) *Number

// Number wraps a big.Int together with the width limit applied after every
// operation.
type Number struct {
	num   *big.Int
	limit func(n *Number) *Number
}

func NewInitialiser(limiter func(*Number) *Number) Initialiser {
	return func(n int64) *Number {
		return &Number{big.NewInt(n), limiter}
	}
}

// Uint256 returns a new Number with unsigned 256 bit wrapping semantics.
func Uint256(n int64) *Number {
	return &Number{big.NewInt(n), limitUnsigned256}
}

// Int256 returns a new Number with signed 256 bit wrapping semantics.
func Int256(n int64) *Number {
	return &Number{big.NewInt(n), limitSigned256}
}

// Big returns a new Number with unbounded semantics.
func Big(n int64) *Number {
	return &Number{big.NewInt(n), func(x *Number) *Number { return x }}
}

func (i *Number) Add(x, y *Number) *Number {
	i.num.Add(x.num, y.num)
	return i.limit(i)
}

func (i *Number) Sub(x, y *Number) *Number {
	i.num.Sub(x.num, y.num)
	return i.limit(i)
}

func (i *Number) Mul(x, y *Number) *Number {
	i.num.Mul(x.num, y.num)
	return i.limit(i)
}

func (i *Number) Div(x, y *Number) *Number {
	i.num.Div(x.num, y.num)
	return i.limit(i)
}

func (i *Number) Mod(x, y *Number) *Number {
	i.num.Mod(x.num, y.num)
	return i.limit(i)
}

func (i *Number) Lsh(x *Number, s uint) *Number {
	i.num.Lsh(x.num, s)
	return i.limit(i)
}

func (i *Number) Pow(x, y *Number) *Number {
	i.num.Exp(x.num, y.num, big.NewInt(0))
	return i.limit(i)
}

func (i *Number) Set(x *Number) *Number {
	i.num.Set(x.num)
	return i.limit(i)
}

func (i *Number) SetBytes(x []byte) *Number {
	i.num.SetBytes(x)
	return i.limit(i)
}

func (i *Number) Cmp(x *Number) int {
	return i.num.Cmp(x.num)
}

func (i *Number) String() string {
	return i.num.String()
}

func (i *Number) Bytes() []byte {
	return i.num.Bytes()
}

func (i *Number) Uint64() uint64 {
	return i.num.Uint64()
}

func (i *Number) Int64() int64 {
	return i.num.Int64()
}

func (i *Number) Int256() *Number {
	return Int(0).Set(i)
}

func (i *Number) Uint256() *Number {
	return Uint(0).Set(i)
}

// ToHash writes the low 256 bits of the number into a hash, big-endian.
func (i *Number) ToHash() common.Hash {
	var h common.Hash
	math.ReadBits(i.num, h[:])
	return h
}

// ToAddress writes the low 160 bits of the number into an address,
// big-endian.
func (i *Number) ToAddress() common.Address {
	var a common.Address
	math.ReadBits(i.num, a[:])
	return a
}

// FirstBitSet returns the index of the lowest one bit, or the bit length
// when the number is zero.
func (i *Number) FirstBitSet() int {
	for j := 0; j < i.num.BitLen(); j++ {
		if i.num.Bit(j) > 0 {
			return j
		}
	}
	return i.num.BitLen()
}

var (
	Zero       = Uint(0)
	One        = Uint(1)
	Two        = Uint(2)
	MaxUint256 = Uint(0).SetBytes(common.Hex2Bytes("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"))

	MinOne = Int(-1)

	Uint = Uint256
	Int  = Int256
)
