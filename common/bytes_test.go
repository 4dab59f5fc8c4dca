package common

import (
	"bytes"
	"testing"

	checker "gopkg.in/check.v1"
)

func Test(t *testing.T) { checker.TestingT(t) }

type BytesSuite struct{}

var _ = checker.Suite(&BytesSuite{})

func (s *BytesSuite) TestCopyBytes(c *checker.C) {
	data1 := []byte{1, 2, 3, 4}
	exp1 := []byte{1, 2, 3, 4}
	res1 := CopyBytes(data1)
	c.Assert(res1, checker.DeepEquals, exp1)

	res1[0] = 99
	c.Assert(data1, checker.DeepEquals, exp1)

	c.Assert(CopyBytes(nil), checker.IsNil)
}

func (s *BytesSuite) TestLeftPadBytes(c *checker.C) {
	val1 := []byte{1, 2, 3, 4}
	exp1 := []byte{0, 0, 0, 0, 1, 2, 3, 4}

	res1 := LeftPadBytes(val1, 8)
	res2 := LeftPadBytes(val1, 2)

	c.Assert(res1, checker.DeepEquals, exp1)
	c.Assert(res2, checker.DeepEquals, val1)
}

func (s *BytesSuite) TestRightPadBytes(c *checker.C) {
	val := []byte{1, 2, 3, 4}
	exp := []byte{1, 2, 3, 4, 0, 0, 0, 0}

	resstd := RightPadBytes(val, 8)
	resshrt := RightPadBytes(val, 2)

	c.Assert(resstd, checker.DeepEquals, exp)
	c.Assert(resshrt, checker.DeepEquals, val)
}

func (s *BytesSuite) TestFromHex(c *checker.C) {
	input := "0x01"
	expected := []byte{1}
	result := FromHex(input)
	c.Assert(result, checker.DeepEquals, expected)

	// Odd-length input is zero-padded on the left.
	c.Assert(FromHex("0x1"), checker.DeepEquals, []byte{1})
	c.Assert(FromHex("0x12345"), checker.DeepEquals, []byte{0x01, 0x23, 0x45})

	// The prefix is optional.
	c.Assert(FromHex("01"), checker.DeepEquals, []byte{1})
}

func (s *BytesSuite) TestToHex(c *checker.C) {
	c.Assert(ToHex(nil), checker.Equals, "0x0")
	c.Assert(ToHex([]byte{0x01, 0xff}), checker.Equals, "0x01ff")
}

func (s *BytesSuite) TestHex2BytesFixed(c *checker.C) {
	c.Assert(Hex2BytesFixed("0102", 2), checker.DeepEquals, []byte{1, 2})
	c.Assert(Hex2BytesFixed("010203", 2), checker.DeepEquals, []byte{2, 3})
	c.Assert(Hex2BytesFixed("01", 2), checker.DeepEquals, []byte{0, 1})
}

func TestIsHex(t *testing.T) {
	tests := []struct {
		str string
		exp bool
	}{
		{"", true},
		{"00", true},
		{"aAbB09", true},
		{"0x00", false}, // the prefix is not hex
		{"0", false},    // odd length
		{"zz", false},
	}
	for _, test := range tests {
		if got := isHex(test.str); got != test.exp {
			t.Errorf("isHex(%q) = %v, want %v", test.str, got, test.exp)
		}
	}
}

func TestBytes2Hex(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef}
	if got := Bytes2Hex(in); got != "deadbeef" {
		t.Errorf("Bytes2Hex = %s, want deadbeef", got)
	}
	if !bytes.Equal(Hex2Bytes("deadbeef"), in) {
		t.Errorf("Hex2Bytes round trip failed")
	}
}
