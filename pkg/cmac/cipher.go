package cmac

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"
)

// CipherID selects the block cipher backing a CMAC context.
type CipherID int

const (
	// CipherAES uses AES with a 16-byte block; keys of 16, 24 or 32 bytes.
	CipherAES CipherID = iota + 1
	// CipherDES3 uses triple DES with an 8-byte block; keys of 16 or 24
	// bytes. Double-length keys are extended to triple length (k1||k2||k1).
	CipherDES3
)

// String returns the cipher name for logs and CLI output.
func (id CipherID) String() string {
	switch id {
	case CipherAES:
		return "AES"
	case CipherDES3:
		return "3DES"
	default:
		return fmt.Sprintf("CipherID(%d)", int(id))
	}
}

// rbConstants maps the supported block sizes to the Rb constant used during
// subkey derivation: the reduction terms of GF(2^64) and GF(2^128). Any block
// size outside this table is rejected before the algorithm runs.
var rbConstants = map[int]byte{
	8:  0x1b,
	16: 0x87,
}

// newBlockCipher initializes the block cipher engine identified by id with key.
func newBlockCipher(id CipherID, key []byte) (cipher.Block, error) {
	switch id {
	case CipherAES:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("aes cipher init failed: %w", err)
		}

		return block, nil
	case CipherDES3:
		if len(key) != 16 && len(key) != 24 {
			return nil, fmt.Errorf(
				"%w: 3DES key must be 16 or 24 bytes, got %d",
				ErrBadInput,
				len(key),
			)
		}
		block, err := des.NewTripleDESCipher(prepareTripleDESKey(key))
		if err != nil {
			return nil, fmt.Errorf("3des cipher init failed: %w", err)
		}

		return block, nil
	default:
		return nil, fmt.Errorf("%w: unsupported cipher %d", ErrBadInput, int(id))
	}
}

// prepareTripleDESKey extends a double-length key to triple length.
func prepareTripleDESKey(key []byte) []byte {
	if len(key) != 16 {
		return key
	}
	key24 := make([]byte, 24)
	copy(key24, key)
	copy(key24[16:], key[:8])

	return key24
}
