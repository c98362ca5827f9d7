package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaultsFlowIntoProposal(t *testing.T) {
	assert := assert.New(t)

	viper.Reset()
	setDefaults()
	cfg := NewProposalConfigFromViper()

	assert.Equal(DefaultProposalConfig.KexAlgos, cfg.KexAlgos)
	assert.Equal(DefaultProposalConfig.HostKeyAlgos, cfg.HostKeyAlgos)
	assert.Equal(DefaultProposalConfig.Ciphers, cfg.Ciphers)
	assert.Equal(DefaultProposalConfig.MACs, cfg.MACs)
	assert.Equal(DefaultProposalConfig.Compression, cfg.Compression)
	assert.False(cfg.FirstKexPacketFollows)
}

func TestViperOverridesBeatDefaults(t *testing.T) {
	assert := assert.New(t)

	viper.Reset()
	setDefaults()
	viper.Set("proposal.ciphers", []string{"chacha20-poly1305@openssh.com"})
	viper.Set("proposal.first_kex_packet_follows", true)

	cfg := NewProposalConfigFromViper()

	assert.Equal([]string{"chacha20-poly1305@openssh.com"}, cfg.Ciphers)
	assert.True(cfg.FirstKexPacketFollows)
	assert.Equal(DefaultProposalConfig.KexAlgos, cfg.KexAlgos, "untouched keys keep their defaults")
}

func TestKexInitOffersSameListsBothDirections(t *testing.T) {
	assert := assert.New(t)

	cfg := &ProposalConfig{
		KexAlgos:     []string{"curve25519-sha256"},
		HostKeyAlgos: []string{"ssh-rsa"},
		Ciphers:      []string{"aes128-ctr", "aes256-ctr"},
		MACs:         []string{"hmac-sha2-256"},
		Compression:  []string{"none"},
	}

	record := cfg.KexInit()

	assert.Equal(cfg.KexAlgos, record.KexAlgos)
	assert.Equal(cfg.HostKeyAlgos, record.ServerHostKeyAlgos)
	assert.Equal(cfg.Ciphers, record.CiphersClientServer)
	assert.Equal(cfg.Ciphers, record.CiphersServerClient)
	assert.Equal(cfg.MACs, record.MACsClientServer)
	assert.Equal(cfg.MACs, record.MACsServerClient)
	assert.Equal(cfg.Compression, record.CompressionClientServer)
	assert.Equal(cfg.Compression, record.CompressionServerClient)
}

func TestDefaultProposalHasNoEmptyMandatoryLists(t *testing.T) {
	assert := assert.New(t)

	assert.NotEmpty(DefaultProposalConfig.KexAlgos)
	assert.NotEmpty(DefaultProposalConfig.HostKeyAlgos)
	assert.NotEmpty(DefaultProposalConfig.Ciphers)
	assert.NotEmpty(DefaultProposalConfig.MACs)
	assert.NotEmpty(DefaultProposalConfig.Compression)
}
