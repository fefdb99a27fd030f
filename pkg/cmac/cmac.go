package cmac

import (
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

// Context binds a keyed block cipher engine to the subkeys derived from it.
// A Context is reusable across any number of Generate and Verify calls, but
// must not be shared between goroutines without external synchronization;
// create one context per concurrent user instead.
//
// The zero value is ready for SetKey. Free erases the derived subkeys and
// leaves the context unusable until the next SetKey.
type Context struct {
	block  cipher.Block
	k1, k2 []byte
}

// New returns an empty context ready for SetKey.
func New() *Context {
	return &Context{}
}

// SetKey binds the context to the cipher identified by id keyed with key and
// derives the CMAC subkeys. Any previously derived subkeys are securely
// erased first, so SetKey may be called repeatedly to rekey a context.
func (c *Context) SetKey(id CipherID, key []byte) error {
	c.Free()

	block, err := newBlockCipher(id, key)
	if err != nil {
		return err
	}

	rb, ok := rbConstants[block.BlockSize()]
	if !ok {
		return fmt.Errorf("%w: unsupported block size %d", ErrBadInput, block.BlockSize())
	}

	c.block = block
	c.k1, c.k2 = deriveSubkeys(block, rb)

	return nil
}

// Free overwrites the derived subkeys with zeros and releases the cipher
// engine. It is idempotent and safe on a context that was never keyed; the
// context can be reused after another SetKey.
func (c *Context) Free() {
	zeroize(c.k1)
	zeroize(c.k2)
	c.k1, c.k2 = nil, nil
	c.block = nil
}

// BlockSize returns the block size of the bound cipher, or 0 when unkeyed.
func (c *Context) BlockSize() int {
	if c.block == nil {
		return 0
	}

	return c.block.BlockSize()
}

// validTagLen reports whether t is an allowed truncation length for block
// size bs: an even value between 2 and the block size inclusive.
func validTagLen(t, bs int) bool {
	return t >= 2 && t <= bs && t%2 == 0
}

// Generate computes the CMAC tag over message, truncated to its leading
// tagLen bytes. tagLen must be even and between 2 and the cipher block size
// (so 2..8 for 3DES and 2..16 for AES).
func (c *Context) Generate(message []byte, tagLen int) ([]byte, error) {
	if c.block == nil {
		return nil, fmt.Errorf("%w: context is not keyed", ErrBadInput)
	}
	if !validTagLen(tagLen, c.block.BlockSize()) {
		return nil, fmt.Errorf(
			"%w: invalid tag length %d for block size %d",
			ErrBadInput,
			tagLen,
			c.block.BlockSize(),
		)
	}

	return c.rawTag(message)[:tagLen], nil
}

// Verify recomputes the tag over message and compares it against tag using a
// fixed-time full-length comparison. A mismatch is reported as
// ErrVerifyFailed without revealing which byte differed.
func (c *Context) Verify(message, tag []byte) error {
	if c.block == nil {
		return fmt.Errorf("%w: context is not keyed", ErrBadInput)
	}
	if !validTagLen(len(tag), c.block.BlockSize()) {
		return fmt.Errorf(
			"%w: invalid tag length %d for block size %d",
			ErrBadInput,
			len(tag),
			c.block.BlockSize(),
		)
	}

	raw := c.rawTag(message)
	if subtle.ConstantTimeCompare(raw[:len(tag)], tag) != 1 {
		return ErrVerifyFailed
	}

	return nil
}

// rawTag runs the CMAC padding and chaining over message and returns the
// full-block tag, per RFC 4493, Section 2.4.
func (c *Context) rawTag(message []byte) []byte {
	bs := c.block.BlockSize()

	// Split off the final block and mask it with K1 or K2. A message that is
	// not a positive multiple of the block size (the empty message included)
	// gets 0x80 padding followed by zeros, and the K2 mask.
	var last []byte
	head := message

	switch {
	case len(message) == 0:
		padded := make([]byte, bs)
		padded[0] = 0x80
		last = xorBlock(padded, c.k2)
		head = nil
	case len(message)%bs == 0:
		last = xorBlock(message[len(message)-bs:], c.k1)
		head = message[:len(message)-bs]
	default:
		rem := len(message) % bs
		padded := make([]byte, bs)
		copy(padded, message[len(message)-rem:])
		padded[rem] = 0x80
		last = xorBlock(padded, c.k2)
		head = message[:len(message)-rem]
	}

	// CBC chaining with a zero IV over the leading blocks.
	// X_0 = 0^b; X_i = E_K(M_i XOR X_{i-1}).
	x := make([]byte, bs)
	for i := 0; i < len(head); i += bs {
		c.block.Encrypt(x, xorBlock(x, head[i:i+bs]))
	}

	// T = E_K(M_last XOR X_{q-1}).
	c.block.Encrypt(x, xorBlock(x, last))

	return x
}

// Sum computes a one-shot CMAC tag: it keys a fresh context, generates the
// tag and erases the derived subkeys before returning.
func Sum(id CipherID, key, message []byte, tagLen int) ([]byte, error) {
	ctx := New()
	if err := ctx.SetKey(id, key); err != nil {
		return nil, err
	}
	defer ctx.Free()

	return ctx.Generate(message, tagLen)
}

// VerifySum is the one-shot counterpart of Verify.
func VerifySum(id CipherID, key, message, tag []byte) error {
	ctx := New()
	if err := ctx.SetKey(id, key); err != nil {
		return err
	}
	defer ctx.Free()

	return ctx.Verify(message, tag)
}

// xorBlock XORs two equal-length byte slices.
func xorBlock(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out
}
