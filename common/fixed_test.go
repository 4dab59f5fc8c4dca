package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAligned(t *testing.T) {
	src := []byte{1, 2, 3}

	dst := make([]byte, 5)
	setAligned(dst, src, AlignLeft)
	assert.Equal(t, []byte{1, 2, 3, 0, 0}, dst)

	setAligned(dst, src, AlignRight)
	assert.Equal(t, []byte{0, 0, 1, 2, 3}, dst)

	// Shrinking keeps min(N, M) bytes from the chosen end.
	dst = make([]byte, 2)
	setAligned(dst, src, AlignLeft)
	assert.Equal(t, []byte{1, 2}, dst)

	setAligned(dst, src, AlignRight)
	assert.Equal(t, []byte{2, 3}, dst)

	// The destination is always zeroed first.
	dst = []byte{9, 9, 9, 9}
	setAligned(dst, src, FailIfDifferent)
	assert.Equal(t, []byte{0, 0, 0, 0}, dst)

	setAligned(dst, []byte{5, 6, 7, 8}, FailIfDifferent)
	assert.Equal(t, []byte{5, 6, 7, 8}, dst)
}

func TestPutUint64(t *testing.T) {
	buf := make([]byte, 8)
	putUint64(buf, 0x0102030405060708)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf)

	// Narrow destinations drop high-order bytes.
	buf = make([]byte, 2)
	putUint64(buf, 0x0102030405060708)
	assert.Equal(t, []byte{7, 8}, buf)

	// Wide destinations zero-fill the head.
	buf = []byte{9, 9, 9, 9}
	putUint64(buf[:], 0x0102)
	assert.Equal(t, []byte{0, 0, 1, 2}, buf)
}

func TestIncBytesCarry(t *testing.T) {
	p := []byte{0, 0xff, 0xff}
	incBytes(p)
	assert.Equal(t, []byte{1, 0, 0}, p)

	p = []byte{0xff, 0xff, 0xff}
	incBytes(p)
	assert.Equal(t, []byte{0, 0, 0}, p)

	p = []byte{}
	incBytes(p) // must not panic
}

func TestFirstBitSetBytes(t *testing.T) {
	assert.Equal(t, 0, firstBitSet([]byte{0x80}))
	assert.Equal(t, 7, firstBitSet([]byte{0x01}))
	assert.Equal(t, 8, firstBitSet([]byte{0, 0x80}))
	assert.Equal(t, 16, firstBitSet([]byte{0, 0}))
	assert.Equal(t, 0, firstBitSet([]byte{0xff, 0xff}))
}

func TestBytesContain(t *testing.T) {
	assert.True(t, bytesContain([]byte{0xff}, []byte{0x0f}))
	assert.True(t, bytesContain([]byte{0x0f}, []byte{0x0f}))
	assert.False(t, bytesContain([]byte{0x0e}, []byte{0x0f}))
	assert.True(t, bytesContain(nil, nil))
}
