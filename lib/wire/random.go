package wire

import (
	"crypto/rand"
	"io"
)

// RandomSource supplies cryptographically secure random bytes. It is the
// one external capability this package consumes; passing it in explicitly
// keeps encoding deterministic under test. Implementations must be safe for
// concurrent use if encodes run concurrently.
type RandomSource interface {
	Read(p []byte) (n int, err error)
}

// CryptoRandom is the default RandomSource, backed by crypto/rand.
var CryptoRandom RandomSource = rand.Reader

func fillRandom(src RandomSource, p []byte) error {
	_, err := io.ReadFull(src, p)
	return err
}
