package config

import (
	"github.com/go-ssh/sshwire/lib/messages"
)

// ProposalConfig holds the local side's algorithm preferences for key
// exchange negotiation. Each list is ordered most-preferred first; the
// order goes onto the wire verbatim. The same cipher, MAC and compression
// preferences are offered in both directions, which is how every mainstream
// implementation behaves.
type ProposalConfig struct {
	KexAlgos              []string
	HostKeyAlgos          []string
	Ciphers               []string
	MACs                  []string
	Compression           []string
	Languages             []string
	FirstKexPacketFollows bool
}

// DefaultProposalConfig is the out-of-the-box algorithm proposal.
var DefaultProposalConfig = ProposalConfig{
	KexAlgos: []string{
		"curve25519-sha256",
		"diffie-hellman-group14-sha256",
		"diffie-hellman-group14-sha1",
	},
	HostKeyAlgos: []string{
		"rsa-sha2-512",
		"rsa-sha2-256",
		"ssh-rsa",
	},
	Ciphers: []string{
		"aes128-ctr",
		"aes192-ctr",
		"aes256-ctr",
	},
	MACs: []string{
		"hmac-sha2-256",
		"hmac-sha1",
	},
	Compression: []string{
		"none",
	},
	Languages:             []string{},
	FirstKexPacketFollows: false,
}

// KexInit expands the proposal into the negotiation record carried by
// SSH_MSG_KEXINIT, offering the same cipher, MAC and compression lists in
// both directions.
func (c *ProposalConfig) KexInit() messages.KexInit {
	return messages.KexInit{
		KexAlgos:                c.KexAlgos,
		ServerHostKeyAlgos:      c.HostKeyAlgos,
		CiphersClientServer:     c.Ciphers,
		CiphersServerClient:     c.Ciphers,
		MACsClientServer:        c.MACs,
		MACsServerClient:        c.MACs,
		CompressionClientServer: c.Compression,
		CompressionServerClient: c.Compression,
		LanguagesClientServer:   c.Languages,
		LanguagesServerClient:   c.Languages,
		FirstKexPacketFollows:   c.FirstKexPacketFollows,
	}
}
