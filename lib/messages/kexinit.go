package messages

/*
SSH Algorithm Negotiation
https://www.rfc-editor.org/rfc/rfc4253#section-7.1
Accurate for RFC 4253

byte         SSH_MSG_KEXINIT
byte[16]     cookie (random bytes)
name-list    kex_algorithms
name-list    server_host_key_algorithms
name-list    encryption_algorithms_client_to_server
name-list    encryption_algorithms_server_to_client
name-list    mac_algorithms_client_to_server
name-list    mac_algorithms_server_to_client
name-list    compression_algorithms_client_to_server
name-list    compression_algorithms_server_to_client
name-list    languages_client_to_server
name-list    languages_server_to_client
boolean      first_kex_packet_follows
uint32       0 (reserved for future extension)
*/

import (
	"github.com/go-ssh/sshwire/lib/wire"
)

// KexInit is the algorithm negotiation record carried by SSH_MSG_KEXINIT.
// Each list is ordered by preference and that order is preserved verbatim
// on the wire; an empty list still emits its length field. The trailing
// reserved field is always written as zero; the protocol reserves it for
// future extension and any other value breaks interoperability.
type KexInit struct {
	KexAlgos                []string
	ServerHostKeyAlgos      []string
	CiphersClientServer     []string
	CiphersServerClient     []string
	MACsClientServer        []string
	MACsServerClient        []string
	CompressionClientServer []string
	CompressionServerClient []string
	LanguagesClientServer   []string
	LanguagesServerClient   []string
	FirstKexPacketFollows   bool
}

// encodeInto writes the negotiation record in the fixed order the protocol
// mandates: the ten name-lists, the guess flag, then the reserved zero.
// The cookie preceding the record is written by the caller.
func (k KexInit) encodeInto(buf *wire.Buffer) *wire.Buffer {
	return buf.
		PutNameList(k.KexAlgos).
		PutNameList(k.ServerHostKeyAlgos).
		PutNameList(k.CiphersClientServer).
		PutNameList(k.CiphersServerClient).
		PutNameList(k.MACsClientServer).
		PutNameList(k.MACsServerClient).
		PutNameList(k.CompressionClientServer).
		PutNameList(k.CompressionServerClient).
		PutNameList(k.LanguagesClientServer).
		PutNameList(k.LanguagesServerClient).
		PutBool(k.FirstKexPacketFollows).
		PutUint32(0)
}
