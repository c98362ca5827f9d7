// Package config loads the algorithm negotiation preferences used when
// building a key-exchange proposal.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-ssh/sshwire/lib/util"
	"github.com/go-ssh/sshwire/lib/util/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetSSHWireLogger()
)

const SSHWIRE_BASE_DIR = ".sshwire"

func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.sshwire/
		viper.AddConfigPath(BuildSSHWireDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()
}

func setDefaults() {
	viper.SetDefault("proposal.kex_algorithms", DefaultProposalConfig.KexAlgos)
	viper.SetDefault("proposal.host_key_algorithms", DefaultProposalConfig.HostKeyAlgos)
	viper.SetDefault("proposal.ciphers", DefaultProposalConfig.Ciphers)
	viper.SetDefault("proposal.macs", DefaultProposalConfig.MACs)
	viper.SetDefault("proposal.compression", DefaultProposalConfig.Compression)
	viper.SetDefault("proposal.languages", DefaultProposalConfig.Languages)
	viper.SetDefault("proposal.first_kex_packet_follows", DefaultProposalConfig.FirstKexPacketFollows)
}

// NewProposalConfigFromViper creates a new ProposalConfig from current viper settings.
func NewProposalConfigFromViper() *ProposalConfig {
	return &ProposalConfig{
		KexAlgos:              viper.GetStringSlice("proposal.kex_algorithms"),
		HostKeyAlgos:          viper.GetStringSlice("proposal.host_key_algorithms"),
		Ciphers:               viper.GetStringSlice("proposal.ciphers"),
		MACs:                  viper.GetStringSlice("proposal.macs"),
		Compression:           viper.GetStringSlice("proposal.compression"),
		Languages:             viper.GetStringSlice("proposal.languages"),
		FirstKexPacketFollows: viper.GetBool("proposal.first_kex_packet_follows"),
	}
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.WriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildSSHWireDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildSSHWireDirPath() string {
	return filepath.Join(util.UserHome(), SSHWIRE_BASE_DIR)
}
