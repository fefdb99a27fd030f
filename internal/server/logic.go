package server

import (
	"encoding/hex"
	"errors"
	"strconv"

	"github.com/andrei-cloud/go_cmac/internal/errorcodes"
	"github.com/andrei-cloud/go_cmac/internal/message"
	"github.com/andrei-cloud/go_cmac/pkg/cmac"
	"github.com/andrei-cloud/go_cmac/pkg/cryptoutils"
)

// respond assembles a response: incremented command code, two-character
// error code, optional data.
func respond(cmd string, code errorcodes.MACError, data []byte) []byte {
	resp := []byte(incrementCode(cmd) + code.CodeOnly())

	return append(resp, data...)
}

// cipherFromFlag maps the one-character cipher flag to a CipherID.
func cipherFromFlag(flag []byte) (cmac.CipherID, error) {
	if len(flag) != 1 {
		return 0, errorcodes.Err26
	}
	switch flag[0] {
	case 'A':
		return cmac.CipherAES, nil
	case 'D':
		return cmac.CipherDES3, nil
	default:
		return 0, errorcodes.Err26
	}
}

// executeMG handles the MG command: generate a truncated CMAC tag over the
// supplied message under the supplied clear key.
func executeMG(payload []byte) []byte {
	const cmd = "MG"

	m, err := message.NewMG(payload)
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	cipherID, err := cipherFromFlag(m.Get("Cipher"))
	if err != nil {
		return respond(cmd, errorcodes.Err26, nil)
	}

	tagLen, err := strconv.Atoi(string(m.Get("Tag Length")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	key, err := hex.DecodeString(string(m.Get("Key")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	msg, err := hex.DecodeString(string(m.Get("Message")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	ctx := cmac.New()
	if err := ctx.SetKey(cipherID, key); err != nil {
		return respond(cmd, errorcodes.Err27, nil)
	}
	defer ctx.Free()

	tag, err := ctx.Generate(msg, tagLen)
	if err != nil {
		return respond(cmd, errorcodes.Err82, nil)
	}

	return respond(cmd, errorcodes.Err00, []byte(cryptoutils.Raw2Str(tag)))
}

// executeMV handles the MV command: recompute and compare a CMAC tag.
// A mismatch is a normal outcome reported with code 01.
func executeMV(payload []byte) []byte {
	const cmd = "MV"

	m, err := message.NewMV(payload)
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	cipherID, err := cipherFromFlag(m.Get("Cipher"))
	if err != nil {
		return respond(cmd, errorcodes.Err26, nil)
	}

	key, err := hex.DecodeString(string(m.Get("Key")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	msg, err := hex.DecodeString(string(m.Get("Message")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	tag, err := hex.DecodeString(string(m.Get("Tag")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	ctx := cmac.New()
	if err := ctx.SetKey(cipherID, key); err != nil {
		return respond(cmd, errorcodes.Err27, nil)
	}
	defer ctx.Free()

	switch err := ctx.Verify(msg, tag); {
	case err == nil:
		return respond(cmd, errorcodes.Err00, nil)
	case errors.Is(err, cmac.ErrVerifyFailed):
		return respond(cmd, errorcodes.Err01, nil)
	default:
		return respond(cmd, errorcodes.Err82, nil)
	}
}

// executePG handles the PG command: derive 16 bytes of pseudorandom output
// from an arbitrary-length key via AES-CMAC-PRF-128.
func executePG(payload []byte) []byte {
	const cmd = "PG"

	m, err := message.NewPG(payload)
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	key, err := hex.DecodeString(string(m.Get("Key")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	msg, err := hex.DecodeString(string(m.Get("Message")))
	if err != nil {
		return respond(cmd, errorcodes.Err15, nil)
	}

	out, err := cmac.PRF128(key, msg)
	if err != nil {
		return respond(cmd, errorcodes.Err42, nil)
	}

	return respond(cmd, errorcodes.Err00, []byte(cryptoutils.Raw2Str(out)))
}
