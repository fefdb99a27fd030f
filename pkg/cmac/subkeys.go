package cmac

import "crypto/cipher"

// deriveSubkeys computes the CMAC subkeys K1 and K2 from the encryption of
// the all-zero block under the current key.
// This follows RFC 4493, Section 2.3.
func deriveSubkeys(block cipher.Block, rb byte) (k1, k2 []byte) {
	bs := block.BlockSize()

	// L = E_K(0^b).
	l := make([]byte, bs)
	block.Encrypt(l, make([]byte, bs))

	k1 = doubleBlock(l, rb)
	k2 = doubleBlock(k1, rb)
	zeroize(l)

	return k1, k2
}

// doubleBlock shifts b left by one bit as a big-endian integer and XORs the
// Rb constant into the last byte when the shifted-out top bit was set.
func doubleBlock(b []byte, rb byte) []byte {
	n := len(b)
	out := make([]byte, n)
	carry := byte(0)

	for i := n - 1; i >= 0; i-- {
		out[i] = b[i]<<1 | carry
		carry = (b[i] >> 7) & 0x01
	}

	if (b[0] & 0x80) != 0 {
		out[n-1] ^= rb
	}

	return out
}

// zeroize overwrites b with zero bytes.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
