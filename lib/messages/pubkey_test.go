package messages

import (
	"crypto/rand"
	"crypto/rsa"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ssh"
)

func testRSAKey(t *testing.T) (*rsa.PrivateKey, RSAPublicKey) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating RSA key: %v", err)
	}
	return priv, RSAPublicKey{E: big.NewInt(int64(priv.E)), N: priv.N}
}

func TestRSABlobMatchesXCryptoSSH(t *testing.T) {
	assert := assert.New(t)

	priv, key := testRSAKey(t)
	reference, err := ssh.NewPublicKey(&priv.PublicKey)
	assert.Nil(err)

	assert.Equal(reference.Marshal(), key.Blob(), "blob must be byte-identical to the ecosystem encoding")
}

func TestRSABlobParses(t *testing.T) {
	assert := assert.New(t)

	_, key := testRSAKey(t)

	parsed, err := ssh.ParsePublicKey(key.Blob())
	assert.Nil(err)
	assert.Equal("ssh-rsa", parsed.Type())
}

func TestKexDHReplyRoundTrip(t *testing.T) {
	assert := assert.New(t)

	_, key := testRSAKey(t)
	f, ok := new(big.Int).SetString("80cc913af0b2e332a7f234af09b2e332a7", 16)
	assert.True(ok)
	signature := []byte{0xde, 0xad, 0xbe, 0xef}

	out, err := Encode(KexDHReply{HostKey: key, F: f, Signature: signature})
	assert.Nil(err)

	var decoded kexDHReplyMsg
	assert.Nil(ssh.Unmarshal(out, &decoded))
	assert.Equal(key.Blob(), decoded.HostKey)
	assert.Zero(f.Cmp(decoded.Y))
	assert.Equal(signature, decoded.Signature)

	parsed, err := ssh.ParsePublicKey(decoded.HostKey)
	assert.Nil(err)
	assert.Equal("ssh-rsa", parsed.Type())
}

func TestKexDHReplyRejectsNegativeKeyComponent(t *testing.T) {
	assert := assert.New(t)

	bad := RSAPublicKey{E: big.NewInt(-3), N: big.NewInt(65537)}
	out, err := Encode(KexDHReply{HostKey: bad, F: big.NewInt(1), Signature: nil})

	assert.Error(err)
	assert.Nil(out)
}
