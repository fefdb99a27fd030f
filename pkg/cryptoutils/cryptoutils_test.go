package cryptoutils_test

import (
	"bytes"
	"testing"

	"github.com/andrei-cloud/go_cmac/pkg/cryptoutils"
)

func TestGenerateRandomKey(t *testing.T) {
	t.Parallel()

	for _, length := range []int{16, 24, 32} {
		key, err := cryptoutils.GenerateRandomKey(length)
		if err != nil {
			t.Fatalf("GenerateRandomKey(%d) failed: %v", length, err)
		}
		if len(key) != length {
			t.Errorf("key length = %d, want %d", len(key), length)
		}
		if bytes.Equal(key, make([]byte, length)) {
			t.Errorf("GenerateRandomKey(%d) returned an all-zero key", length)
		}
	}

	for _, length := range []int{0, 8, 15, 33} {
		if _, err := cryptoutils.GenerateRandomKey(length); err == nil {
			t.Errorf("GenerateRandomKey(%d) expected an error, got none", length)
		}
	}
}

func TestGenerateRandomKeyUnique(t *testing.T) {
	t.Parallel()

	first, err := cryptoutils.GenerateRandomKey(16)
	if err != nil {
		t.Fatalf("GenerateRandomKey failed: %v", err)
	}
	second, err := cryptoutils.GenerateRandomKey(16)
	if err != nil {
		t.Fatalf("GenerateRandomKey failed: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Fatal("two random keys are identical")
	}
}

func TestFixKeyParity(t *testing.T) {
	t.Parallel()

	key := []byte{0x00, 0x01, 0xfe, 0xff, 0xaa, 0x55, 0x12, 0x34}
	fixed := cryptoutils.FixKeyParity(key)

	if !cryptoutils.CheckKeyParity(fixed) {
		t.Fatalf("parity not odd after fix: %x", fixed)
	}

	// Fixing an already-odd key must be a no-op.
	again := cryptoutils.FixKeyParity(fixed)
	if !bytes.Equal(fixed, again) {
		t.Fatalf("parity fix not idempotent: %x vs %x", fixed, again)
	}
}

func TestRaw2Str(t *testing.T) {
	t.Parallel()

	if got := cryptoutils.Raw2Str([]byte{0xde, 0xad, 0xbe, 0xef}); got != "DEADBEEF" {
		t.Fatalf("Raw2Str = %q, want DEADBEEF", got)
	}
}
