package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/andrei-cloud/go_cmac/internal/cli"
	"github.com/andrei-cloud/go_cmac/pkg/cmac"
	"github.com/andrei-cloud/go_cmac/pkg/cryptoutils"
)

var prfCmd = &cobra.Command{
	Use:   "prf",
	Short: "Derive 16 pseudorandom bytes with AES-CMAC-PRF-128",
	Long: `Derive a 16-byte pseudorandom output from an arbitrary-length hex key and
a hex message using AES-CMAC-PRF-128 (RFC 4615). Keys that are not exactly
16 bytes are first compressed with CMAC under the all-zero key.`,
	Example: `  go_cmac prf --key 000102030405060708090A0B0C0D0E0FEDCB \
    --message 000102030405060708090A0B0C0D0E0F10111213`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		keyHex, _ := cmd.Flags().GetString("key")
		messageHex, _ := cmd.Flags().GetString("message")

		if keyHex == "" {
			return errors.New("key is required")
		}

		key, err := cli.DecodeHexField("key", keyHex)
		if err != nil {
			return err
		}
		message, err := cli.DecodeHexField("message", messageHex)
		if err != nil {
			return err
		}

		out, err := cmac.PRF128(key, message)
		if err != nil {
			return err
		}

		cmd.Printf("prf output: %s\n", cryptoutils.Raw2Str(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(prfCmd)

	prfCmd.Flags().String("key", "", "PRF key in hex (any length)")
	prfCmd.Flags().String("message", "", "Message in hex (may be empty)")
}
