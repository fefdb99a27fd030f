// Package cmd provides the CLI commands for the go_cmac application.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "go_cmac",
	Short: "CMAC message authentication server and utilities",
	Long: `A CMAC (RFC 4493) and AES-CMAC-PRF-128 (RFC 4615) toolkit: generate and
verify authentication tags over AES or triple DES, derive pseudorandom keys,
and serve MAC operations over TCP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
