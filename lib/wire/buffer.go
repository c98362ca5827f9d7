// Package wire implements the low-level SSH data type encodings.
package wire

/*
SSH Data Type Representations
https://www.rfc-editor.org/rfc/rfc4251#section-5
Accurate for RFC 4251

All protocol messages are built out of a small set of wire primitives:
bytes, booleans, big-endian uint32, length-prefixed strings, mpints and
name-lists. Buffer is the growable byte buffer those primitives write
into, tracking an allocated backing store and a write offset.
*/

import (
	"github.com/go-ssh/sshwire/lib/util/logger"
	"github.com/sirupsen/logrus"
)

var log = logger.GetSSHWireLogger()

// DEFAULT_BUFFER_SIZE is the initial capacity of a Buffer and the minimum
// number of bytes added per growth step.
const DEFAULT_BUFFER_SIZE = 256

// Buffer is an append-only byte buffer with a logical write cursor.
//
// A Buffer is owned exclusively by one encoding operation from creation
// until Bytes is called; it must not be shared between concurrent encodes.
// The write offset never exceeds the allocated length: any put that would
// violate that grows the backing store first.
type Buffer struct {
	data []byte // backing storage; len(data) is the allocated capacity
	off  int    // write offset; off <= len(data) always
	err  error  // sticky error, checked by every put and surfaced by callers
}

// NewBuffer creates an empty Buffer with the default initial capacity.
func NewBuffer() *Buffer {
	return NewBufferSize(DEFAULT_BUFFER_SIZE)
}

// NewBufferSize creates an empty Buffer with the given initial capacity.
func NewBufferSize(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{data: make([]byte, size)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return b.off
}

// Remaining returns the number of bytes that can be written before the
// backing store has to grow.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.off
}

// Err returns the first error recorded by a put operation, or nil. Once an
// error is recorded all further puts are no-ops and no output is usable.
func (b *Buffer) Err() error {
	return b.err
}

// fail records a sticky error. The first error wins.
func (b *Buffer) fail(err error) *Buffer {
	if b.err == nil {
		b.err = err
		log.WithError(err).Error("wire buffer entered failed state")
	}
	return b
}

// ensure grows the backing store so that at least n bytes can be written at
// the current offset. Growth steps are coarse (never less than
// DEFAULT_BUFFER_SIZE bytes) so encoding a many-field message does not
// reallocate per field. Previously written bytes keep their positions.
func (b *Buffer) ensure(n int) {
	if b.Remaining() >= n {
		return
	}
	step := n
	if step < DEFAULT_BUFFER_SIZE {
		step = DEFAULT_BUFFER_SIZE
	}
	grown := make([]byte, len(b.data)+step)
	copy(grown, b.data[:b.off])
	b.data = grown
	log.WithFields(logrus.Fields{
		"needed":       n,
		"new_capacity": len(b.data),
	}).Debug("grew wire buffer")
}

// advance moves the write cursor forward by n bytes. The caller must
// already have written those bytes at the prior offset; advance is
// bookkeeping only and never copies.
func (b *Buffer) advance(n int) {
	b.off += n
}

// Bytes finalizes the Buffer, returning exactly the bytes written and
// discarding unused trailing capacity. The Buffer should not be written to
// afterwards.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.off]
}
