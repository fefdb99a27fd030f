package cmd

import (
	"github.com/spf13/cobra"

	"github.com/andrei-cloud/go_cmac/internal/cli"
)

var ciphersCmd = &cobra.Command{
	Use:   "ciphers",
	Short: "List supported block ciphers",
	Run: func(cmd *cobra.Command, _ []string) {
		cli.PrintSupportedCiphers(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(ciphersCmd)
}
