// Package cryptoutils provides key material helpers shared by the go_cmac
// CLI and server: random key generation, DES parity adjustment and hex
// formatting.
package cryptoutils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	KEY_LENGTH_DOUBLE = 16
	KEY_LENGTH_TRIPLE = 24
	KEY_LENGTH_AES256 = 32
	XOR_BIT_FLIP      = 1
)

// GenerateRandomKey generates a cryptographically secure random key.
// Length must be 16, 24 or 32 bytes (the key sizes accepted by the AES and
// triple-DES CMAC engines).
func GenerateRandomKey(length int) ([]byte, error) {
	if length != KEY_LENGTH_DOUBLE && length != KEY_LENGTH_TRIPLE && length != KEY_LENGTH_AES256 {
		return nil, errors.New("invalid key length: must be 16, 24, or 32 bytes")
	}

	key := make([]byte, length)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}

	return key, nil
}

// CheckKeyParity returns true if every byte in key has ODD parity.
func CheckKeyParity(key []byte) bool {
	for _, b := range key {
		parity := 0
		for x := b; x != 0; x &= x - 1 {
			parity ^= 1
		}
		if parity == 0 {
			return false
		}
	}

	return true
}

// FixKeyParity sets each byte to have ODD parity (as required by DES).
func FixKeyParity(key []byte) []byte {
	res := make([]byte, len(key))
	for i, b := range key {
		parity := 0
		for x := b; x != 0; x &= x - 1 {
			parity ^= 1
		}
		// parity == 1 -> already odd, leave as-is
		// parity == 0 -> even, flip the lowest bit
		if parity == 0 {
			res[i] = b ^ XOR_BIT_FLIP
		} else {
			res[i] = b
		}
	}

	return res
}

// Raw2Str converts raw binary data to an uppercase hex string.
func Raw2Str(raw []byte) string {
	return strings.ToUpper(hex.EncodeToString(raw))
}
