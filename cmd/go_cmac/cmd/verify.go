package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/andrei-cloud/go_cmac/internal/cli"
	"github.com/andrei-cloud/go_cmac/pkg/cmac"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a CMAC tag against a message",
	Long: `Recompute the CMAC tag over a hex-encoded message and compare it against
the supplied candidate tag in constant time. The command exits non-zero when
the tag does not match.`,
	Example: `  go_cmac verify --cipher aes --key 2B7E151628AED2A6ABF7158809CF4F3C \
    --message 6BC1BEE22E409F96E93D7E117393172A \
    --tag 070A16B46B4D4144F79BDD9DD04A287C`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cipherName, _ := cmd.Flags().GetString("cipher")
		keyHex, _ := cmd.Flags().GetString("key")
		messageHex, _ := cmd.Flags().GetString("message")
		tagHex, _ := cmd.Flags().GetString("tag")

		if keyHex == "" || tagHex == "" {
			return errors.New("key and tag are required")
		}

		cipherID, err := cli.ParseCipher(cipherName)
		if err != nil {
			return err
		}
		key, err := cli.DecodeHexField("key", keyHex)
		if err != nil {
			return err
		}
		message, err := cli.DecodeHexField("message", messageHex)
		if err != nil {
			return err
		}
		tag, err := cli.DecodeHexField("tag", tagHex)
		if err != nil {
			return err
		}

		if err := cmac.VerifySum(cipherID, key, message, tag); err != nil {
			return err
		}

		cmd.Println("mac verified")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().String("cipher", "aes", "Cipher engine (aes or des3)")
	verifyCmd.Flags().String("key", "", "Clear key in hex")
	verifyCmd.Flags().String("message", "", "Message in hex (may be empty)")
	verifyCmd.Flags().String("tag", "", "Candidate tag in hex")
}
