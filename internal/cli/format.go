// Package cli contains utilities for CLI operations.
package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/andrei-cloud/go_cmac/pkg/cmac"
)

// SupportedCiphers returns cipher flags mapped to readable descriptions.
func SupportedCiphers() map[string]string {
	return map[string]string{
		"aes":  "AES (16-byte block; keys of 16, 24 or 32 bytes; tags 2-16)",
		"des3": "Triple DES (8-byte block; keys of 16 or 24 bytes; tags 2-8)",
	}
}

// PrintSupportedCiphers prints the supported ciphers in a readable format.
func PrintSupportedCiphers(w io.Writer) {
	fmt.Fprintln(w, "Supported ciphers:")
	fmt.Fprintln(w, "------------------")
	for name, desc := range SupportedCiphers() {
		fmt.Fprintf(w, "%s: %s\n", name, desc)
	}
}

// ParseCipher maps a cipher name to its CipherID.
func ParseCipher(name string) (cmac.CipherID, error) {
	switch strings.ToLower(name) {
	case "aes":
		return cmac.CipherAES, nil
	case "des3", "3des":
		return cmac.CipherDES3, nil
	default:
		return 0, fmt.Errorf("unsupported cipher %q (valid: aes, des3)", name)
	}
}

// DecodeHexField decodes a hex-encoded CLI flag value, naming the field in
// the error.
func DecodeHexField(name, value string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("invalid hex in %s: %w", name, err)
	}

	return b, nil
}
