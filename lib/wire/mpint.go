package wire

/*
SSH mpint
https://www.rfc-editor.org/rfc/rfc4251#section-5
Accurate for RFC 4251

Multiple precision integers are encoded two's-complement, big-endian, as an
SSH string. If the most significant bit of a positive number's first byte
would be set, the value is preceded by an extra zero byte so the peer cannot
read it as negative. Zero is stored as a string of zero bytes of data.
*/

import (
	"math/big"

	"github.com/samber/oops"
)

// PutMpint writes a non-negative arbitrary-precision integer as an SSH
// mpint. Zero encodes as a bare zero length. A magnitude whose leading byte
// has bit 7 set gains one 0x00 pad byte inside the length-prefixed framing.
// The values encoded here (DH exponents, RSA key components) are never
// negative; a negative input is a programming error and fails the Buffer.
func (b *Buffer) PutMpint(v *big.Int) *Buffer {
	if b.err != nil {
		return b
	}
	if v.Sign() < 0 {
		return b.fail(oops.Errorf("mpint value is negative"))
	}
	magnitude := v.Bytes()
	if len(magnitude) > 0 && magnitude[0]&0x80 != 0 {
		return b.PutUint32(uint32(len(magnitude) + 1)).PutByte(0).PutRaw(magnitude)
	}
	return b.PutUint32(uint32(len(magnitude))).PutRaw(magnitude)
}
