package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/go-ssh/sshwire/lib/config"
	"github.com/go-ssh/sshwire/lib/messages"
	"github.com/go-ssh/sshwire/lib/util/logger"
	"github.com/go-ssh/sshwire/lib/wire"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var log = logger.GetSSHWireLogger()

var showYAML bool

var rootCmd = &cobra.Command{
	Use:   "sshwire",
	Short: "Inspect SSH wire-format encodings",
	Long: "sshwire encodes SSH transport messages and dumps the exact bytes\n" +
		"they put on the wire. It is an inspection tool over the encoding\n" +
		"library, not a packet injector.",
	SilenceUsage: true,
}

var kexinitCmd = &cobra.Command{
	Use:   "kexinit",
	Short: "Encode the configured key-exchange proposal as SSH_MSG_KEXINIT",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.InitConfig()
		proposal := config.NewProposalConfigFromViper()
		record := proposal.KexInit()
		if showYAML {
			out, err := yaml.Marshal(record)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		}
		log.Debug("encoding key-exchange proposal")
		encoded, err := messages.Encode(record)
		if err != nil {
			return err
		}
		fmt.Print(hex.Dump(encoded))
		return nil
	},
}

var mpintCmd = &cobra.Command{
	Use:   "mpint <decimal>",
	Short: "Encode one non-negative integer as an SSH mpint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return fmt.Errorf("%q is not a decimal integer", args[0])
		}
		buf := wire.NewBuffer().PutMpint(value)
		if err := buf.Err(); err != nil {
			return err
		}
		fmt.Print(hex.Dump(buf.Bytes()))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.sshwire/config.yaml)")
	kexinitCmd.Flags().BoolVar(&showYAML, "yaml", false, "also print the negotiation record as YAML")
	rootCmd.AddCommand(kexinitCmd)
	rootCmd.AddCommand(mpintCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
