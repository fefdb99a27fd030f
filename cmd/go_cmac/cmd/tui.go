package cmd

import (
	"github.com/spf13/cobra"

	"github.com/andrei-cloud/go_cmac/internal/cli"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive MAC calculator",
	Long:  `Open an interactive terminal calculator to compute CMAC tags.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return cli.RunCalculator()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
