package wire

/*
SSH wire primitives
https://www.rfc-editor.org/rfc/rfc4251#section-5
Accurate for RFC 4251

byte      raw 8-bit value
boolean   one byte, 0 is FALSE and 1 is TRUE
uint32    four bytes, network byte order (big-endian)
string    uint32 byte count followed by that many raw bytes
name-list a string containing comma-separated names
*/

import (
	"encoding/binary"
	"strings"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// Every put ensures capacity, writes at the current offset, advances the
// cursor and returns the Buffer so writes chain left to right in wire order.
// Puts never fail under normal operation; the exceptions (a failing
// randomness source, an invalid name-list) record a sticky error that stops
// all further output.

// PutByte writes one raw byte.
func (b *Buffer) PutByte(v byte) *Buffer {
	if b.err != nil {
		return b
	}
	b.ensure(1)
	b.data[b.off] = v
	b.advance(1)
	return b
}

// PutBool writes an SSH boolean: one byte, 0x01 for true and 0x00 for false.
func (b *Buffer) PutBool(v bool) *Buffer {
	if v {
		return b.PutByte(1)
	}
	return b.PutByte(0)
}

// PutUint32 writes a 32-bit integer in network byte order.
func (b *Buffer) PutUint32(v uint32) *Buffer {
	if b.err != nil {
		return b
	}
	b.ensure(4)
	binary.BigEndian.PutUint32(b.data[b.off:], v)
	b.advance(4)
	return b
}

// PutRaw writes bytes verbatim with no length prefix, for use where the
// length is implied by context or was already written.
func (b *Buffer) PutRaw(data []byte) *Buffer {
	if b.err != nil {
		return b
	}
	b.ensure(len(data))
	copy(b.data[b.off:], data)
	b.advance(len(data))
	return b
}

// PutString writes an SSH string: uint32 byte count then the raw bytes.
// The count is bytes, not characters.
func (b *Buffer) PutString(s string) *Buffer {
	if b.err != nil {
		return b
	}
	b.PutUint32(uint32(len(s)))
	b.ensure(len(s))
	copy(b.data[b.off:], s)
	b.advance(len(s))
	return b
}

// PutBytes writes a binary payload with SSH string framing: uint32 byte
// count then the bytes. Used for opaque blobs such as signatures and
// public-key blobs.
func (b *Buffer) PutBytes(data []byte) *Buffer {
	return b.PutUint32(uint32(len(data))).PutRaw(data)
}

// PutNameList writes a name-list: the names joined with commas, then
// string-encoded. Order is significant on the wire (it expresses
// preference) and is preserved verbatim. An empty list encodes as a string
// of length zero. Names must not themselves contain commas; one that does
// is a programming error and fails the Buffer.
func (b *Buffer) PutNameList(names []string) *Buffer {
	if b.err != nil {
		return b
	}
	for _, name := range names {
		if strings.Contains(name, ",") {
			log.WithFields(logrus.Fields{
				"name": name,
			}).Error("name-list entry contains a comma")
			return b.fail(oops.Errorf("name-list entry %q contains a comma", name))
		}
	}
	return b.PutString(strings.Join(names, ","))
}

// PutRandom writes n bytes drawn from the given randomness source. A short
// or failed read fails the Buffer; no partial random data is ever emitted.
func (b *Buffer) PutRandom(src RandomSource, n int) *Buffer {
	if b.err != nil {
		return b
	}
	b.ensure(n)
	if err := fillRandom(src, b.data[b.off:b.off+n]); err != nil {
		return b.fail(oops.Wrapf(err, "reading %d random bytes", n))
	}
	b.advance(n)
	return b
}

// PutMessageID writes the one-byte numeric message type code that starts
// every SSH protocol message.
func (b *Buffer) PutMessageID(id byte) *Buffer {
	return b.PutByte(id)
}
