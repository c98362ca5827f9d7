package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferStartsEmpty(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer()

	assert.Equal(0, buf.Len(), "new buffer should have nothing written")
	assert.Equal(DEFAULT_BUFFER_SIZE, buf.Remaining(), "new buffer should have the default capacity free")
	assert.Empty(buf.Bytes(), "new buffer should finalize to zero bytes")
}

func TestBufferLenTracksWrites(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer().PutByte(0x2a).PutUint32(7)

	assert.Equal(5, buf.Len(), "Len() should count every written byte")
	assert.Equal(DEFAULT_BUFFER_SIZE-5, buf.Remaining(), "Remaining() should shrink as bytes are written")
}

func TestBufferBytesReturnsExactlyWritten(t *testing.T) {
	assert := assert.New(t)

	buf := NewBufferSize(64).PutByte(1).PutByte(2).PutByte(3)

	assert.Equal([]byte{1, 2, 3}, buf.Bytes(), "Bytes() should discard unused trailing capacity")
}

func TestBufferGrowthPreservesBytes(t *testing.T) {
	assert := assert.New(t)

	buf := NewBufferSize(4).PutUint32(0xdeadbeef)
	assert.Equal(0, buf.Remaining())

	// The next write forces a growth step; earlier bytes must not move.
	buf.PutByte(0x01)

	assert.Equal([]byte{0xde, 0xad, 0xbe, 0xef, 0x01}, buf.Bytes())
	assert.GreaterOrEqual(buf.Remaining(), DEFAULT_BUFFER_SIZE-1, "growth steps are never smaller than the default size")
}

func TestBufferGrowthIsTransparent(t *testing.T) {
	assert := assert.New(t)

	// A payload far larger than the initial capacity must encode to the
	// same bytes as one written into a pre-sized buffer.
	payload := bytes.Repeat([]byte{0xa5}, 10000)

	small := NewBuffer().PutBytes(payload)
	large := NewBufferSize(16384).PutBytes(payload)

	assert.Equal(large.Bytes(), small.Bytes(), "growth must not change the encoded bytes")
	assert.Equal(4+len(payload), small.Len())
}

func TestBufferGrowthStepCoversLargeWrite(t *testing.T) {
	assert := assert.New(t)

	// A single write bigger than the minimum step grows by the write size.
	payload := make([]byte, 1000)
	buf := NewBufferSize(0).PutRaw(payload)

	assert.Equal(1000, buf.Len())
	assert.Nil(buf.Err())
}

func TestNegativeInitialSizeIsClamped(t *testing.T) {
	assert := assert.New(t)

	buf := NewBufferSize(-1)

	assert.Equal(0, buf.Remaining())
	buf.PutByte(9)
	assert.Equal([]byte{9}, buf.Bytes())
}
