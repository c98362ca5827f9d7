package messages

/*
SSH RSA Public Key Blob
https://www.rfc-editor.org/rfc/rfc4253#section-6.6
Accurate for RFC 4253

string   "ssh-rsa"
mpint    e (public exponent)
mpint    n (modulus)

The same blob layout serves as the host-key field of SSH_MSG_KEXDH_REPLY
and as a standalone public-key blob.
*/

import (
	"math/big"

	"github.com/go-ssh/sshwire/lib/wire"
)

// RSAPublicKey is an RSA public key destined for an SSH public-key blob.
type RSAPublicKey struct {
	E *big.Int // public exponent
	N *big.Int // modulus
}

// Blob returns the key in SSH public-key blob layout: the algorithm name
// followed by the mpint-encoded exponent and modulus.
func (k RSAPublicKey) Blob() []byte {
	return k.blobBuffer().Bytes()
}

func (k RSAPublicKey) blobBuffer() *wire.Buffer {
	return wire.NewBuffer().
		PutString(KEY_ALGO_RSA).
		PutMpint(k.E).
		PutMpint(k.N)
}
