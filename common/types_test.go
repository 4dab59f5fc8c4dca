package common

import (
	"math/big"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToHashAlignment(t *testing.T) {
	exp := Hash{31: 5}
	assert.Equal(t, exp, BytesToHash([]byte{5}), "short input must be left-padded")

	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i)
	}
	got := BytesToHash(long)
	assert.Equal(t, long[8:], got.Bytes(), "long input must be cropped from the left")
}

func TestHashFromBytesStrict(t *testing.T) {
	_, err := HashFromBytes(make([]byte, 31))
	require.Error(t, err)
	_, err = HashFromBytes(make([]byte, 33))
	require.Error(t, err)

	h, err := HashFromBytes(make([]byte, 32))
	require.NoError(t, err)
	assert.True(t, h.IsZero())
}

func TestHashBigRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 1<<32 - 1, 1 << 63, 1<<64 - 1} {
		h := Uint64ToHash(v)
		assert.Equal(t, v, h.Big().Uint64(), "value %d must survive the round trip", v)
	}

	b, _ := new(big.Int).SetString("f000000000000000000000000000000000000000000000000000000000000001", 16)
	assert.Equal(t, 0, BigToHash(b).Big().Cmp(b))

	// Values wider than 256 bits lose their high-order bytes.
	wide := new(big.Int).Lsh(big.NewInt(1), 256)
	wide.Add(wide, big.NewInt(7))
	assert.Equal(t, int64(7), BigToHash(wide).Big().Int64())
}

func TestHashIsZero(t *testing.T) {
	var h Hash
	assert.True(t, h.IsZero())
	assert.True(t, EmptyHash(h))
	for i := 0; i < HashLength; i++ {
		h = Hash{}
		h[i] = 1
		assert.False(t, h.IsZero(), "byte %d set must not be zero", i)
	}
}

func TestHashClear(t *testing.T) {
	h := HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	h.Clear()
	assert.True(t, h.IsZero())
}

func TestHashCmpTotality(t *testing.T) {
	vals := []Hash{
		{},
		{31: 1},
		{31: 2},
		{0: 1},
		{0: 1, 31: 1},
		HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	}
	for _, a := range vals {
		for _, b := range vals {
			lt := a.Cmp(b) < 0
			eq := a.Cmp(b) == 0
			gt := a.Cmp(b) > 0
			n := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					n++
				}
			}
			assert.Equal(t, 1, n, "exactly one ordering must hold for %v %v", a, b)
			assert.Equal(t, a == b, eq)
			assert.Equal(t, lt, b.Cmp(a) > 0)
		}
	}
}

func TestHashBitwiseIdentities(t *testing.T) {
	err := quick.Check(func(a, b Hash) bool {
		zero := Hash{}
		if a.Xor(a) != zero {
			return false
		}
		if a.And(zero) != zero {
			return false
		}
		if a.Or(zero) != a {
			return false
		}
		if a.Not().Not() != a {
			return false
		}
		if a.Xor(b) != b.Xor(a) {
			return false
		}
		return true
	}, nil)
	require.NoError(t, err)
}

func TestHashContains(t *testing.T) {
	err := quick.Check(func(a, b Hash) bool {
		if !a.Contains(a) {
			return false
		}
		if !a.Or(b).Contains(b) {
			return false
		}
		return a.Contains(a.And(b))
	}, nil)
	require.NoError(t, err)

	zero := Hash{}
	assert.True(t, zero.Contains(zero))
	assert.False(t, zero.Contains(Hash{31: 1}))
}

func TestHashIncrement(t *testing.T) {
	h := Hash{}
	h.Increment()
	assert.Equal(t, Hash{31: 1}, h)

	// Carry across byte boundaries.
	h = Hash{30: 1, 31: 0xff}
	h.Increment()
	assert.Equal(t, Hash{30: 2}, h)

	// The all-ones value wraps to zero.
	h = HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	h.Increment()
	assert.True(t, h.IsZero())
}

func TestHashFirstBitSet(t *testing.T) {
	var h Hash
	assert.Equal(t, HashLength*8, h.FirstBitSet())

	h = Hash{0: 0x80}
	assert.Equal(t, 0, h.FirstBitSet())

	h = Hash{0: 0x01}
	assert.Equal(t, 7, h.FirstBitSet())

	h = Hash{31: 0x01}
	assert.Equal(t, 255, h.FirstBitSet())

	h = Hash{5: 0x20}
	assert.Equal(t, 5*8+2, h.FirstBitSet())
}

func TestAlignedBytesToHash(t *testing.T) {
	src := make([]byte, AddressLength)
	for i := range src {
		src[i] = byte(i + 1)
	}

	left := AlignedBytesToHash(src, AlignLeft)
	for i := 0; i < AddressLength; i++ {
		assert.Equal(t, src[i], left[i])
	}
	for i := AddressLength; i < HashLength; i++ {
		assert.Zero(t, left[i])
	}

	right := AlignedBytesToHash(src, AlignRight)
	for i := 0; i < HashLength-AddressLength; i++ {
		assert.Zero(t, right[i])
	}
	for i := 0; i < AddressLength; i++ {
		assert.Equal(t, src[i], right[HashLength-AddressLength+i])
	}

	// FailIfDifferent zeroes mismatched input but copies exact input.
	assert.True(t, AlignedBytesToHash(src, FailIfDifferent).IsZero())
	exact := make([]byte, HashLength)
	exact[0] = 0xaa
	assert.Equal(t, byte(0xaa), AlignedBytesToHash(exact, FailIfDifferent)[0])
}

func TestRight160(t *testing.T) {
	var h Hash
	for i := range h {
		h[i] = byte(i)
	}
	a := Right160(h)
	assert.Equal(t, h[12:], a.Bytes())
}

func TestRandomize(t *testing.T) {
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	h1 := RandomHash(r1)
	h2 := RandomHash(r2)
	assert.Equal(t, h1, h2, "equal seeds must produce equal hashes")

	var h3 Hash
	h3.Randomize(rand.New(rand.NewSource(43)))
	assert.NotEqual(t, h1, h3)
}

func TestHashJSONMarshaling(t *testing.T) {
	var tests = []struct {
		input   string
		wantErr bool
	}{
		{`"0x0000000000000000000000000000000000000000000000000000000000000000"`, false},
		{`"0x7af746cd6ea13b2dd286a55de522c1cb783dde791dbce0e5e693f22e1e168c2c"`, false},
		{`"0x7af746cd6ea13b2dd286a55de522c1cb783dde791dbce0e5e693f22e1e168c2"`, true}, // odd length
		{`"0x7af746cd6ea13b2dd286a55de522c1cb783dde791dbce0e5e693f22e1e168c"`, true},  // too short
		{`"7af746cd6ea13b2dd286a55de522c1cb783dde791dbce0e5e693f22e1e168c2c"`, true},   // missing prefix
		{`"0xgg00000000000000000000000000000000000000000000000000000000000000"`, true}, // bad syntax
		{`5`, true}, // non-string
	}
	for _, test := range tests {
		var h Hash
		err := h.UnmarshalJSON([]byte(test.input))
		if test.wantErr {
			assert.Error(t, err, "input %s", test.input)
			continue
		}
		require.NoError(t, err, "input %s", test.input)
		out, err := h.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, test.input, `"`+string(out)+`"`)
	}
}

func TestUnprefixedHashText(t *testing.T) {
	var h UnprefixedHash
	err := h.UnmarshalText([]byte("7af746cd6ea13b2dd286a55de522c1cb783dde791dbce0e5e693f22e1e168c2c"))
	require.NoError(t, err)
	out, err := h.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "7af746cd6ea13b2dd286a55de522c1cb783dde791dbce0e5e693f22e1e168c2c", string(out))
}

func TestIsHexAddress(t *testing.T) {
	tests := []struct {
		str string
		exp bool
	}{
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0X5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", true},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed1", false},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beae", false},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaeg", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.exp, IsHexAddress(test.str), "input %s", test.str)
	}
}

func TestAddressChecksumHex(t *testing.T) {
	// Mixed-case rendering depends on the keccak hash of the lowercase
	// hex address.
	tests := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, want := range tests {
		assert.Equal(t, want, HexToAddress(want).Hex())
	}
}

func TestAddressHashPadding(t *testing.T) {
	a := HexToAddress("0x0102030405060708090a0b0c0d0e0f1011121314")
	h := a.Hash()
	assert.True(t, isZero(h[:12]))
	assert.Equal(t, a.Bytes(), h[12:])
	assert.Equal(t, a, Right160(h))
}

func TestAddressOps(t *testing.T) {
	a := HexToAddress("0xffffffffffffffffffffffffffffffffffffffff")
	a.Increment()
	assert.True(t, a.IsZero())

	b := Uint64ToAddress(1)
	assert.Equal(t, Address{19: 1}, b)
	assert.Equal(t, AddressLength*8-1, b.FirstBitSet())
	assert.True(t, b.Not().Contains(Address{0: 0xf0}))
}
