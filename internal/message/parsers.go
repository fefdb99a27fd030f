package message

import (
	"bytes"
	"errors"
)

// Variable-length hex fields inside command payloads are separated by
// semicolons.
const delimiter = ';'

// ErrMalformed reports a payload too short to parse or missing a delimiter.
var ErrMalformed = errors.New("malformed command payload")

// NewMG parses an MG Generate MAC command from payload data.
// Layout: cipher flag (1) || tag length (2 decimal digits) || key hex ||
// ';' || message hex.
func NewMG(data []byte) (*BaseMessage, error) {
	m := NewBaseMessage("MG", "Generate MAC")
	if len(data) < 4 {
		return nil, ErrMalformed
	}

	// Cipher Flag (1).
	m.Fields["Cipher"], data = data[:1], data[1:]
	// Tag Length (2).
	m.Fields["Tag Length"], data = data[:2], data[2:]

	sep := bytes.IndexByte(data, delimiter)
	if sep < 0 {
		return nil, ErrMalformed
	}
	m.Fields["Key"], m.Fields["Message"] = data[:sep], data[sep+1:]

	return m, nil
}

// NewMV parses an MV Verify MAC command from payload data.
// Layout: cipher flag (1) || key hex || ';' || message hex || ';' || tag hex.
func NewMV(data []byte) (*BaseMessage, error) {
	m := NewBaseMessage("MV", "Verify MAC")
	if len(data) < 2 {
		return nil, ErrMalformed
	}

	m.Fields["Cipher"], data = data[:1], data[1:]

	sep := bytes.IndexByte(data, delimiter)
	if sep < 0 {
		return nil, ErrMalformed
	}
	m.Fields["Key"], data = data[:sep], data[sep+1:]

	sep = bytes.IndexByte(data, delimiter)
	if sep < 0 {
		return nil, ErrMalformed
	}
	m.Fields["Message"], m.Fields["Tag"] = data[:sep], data[sep+1:]

	return m, nil
}

// NewPG parses a PG PRF-128 derivation command from payload data.
// Layout: key hex || ';' || message hex.
func NewPG(data []byte) (*BaseMessage, error) {
	m := NewBaseMessage("PG", "AES-CMAC-PRF-128")

	sep := bytes.IndexByte(data, delimiter)
	if sep < 0 {
		return nil, ErrMalformed
	}
	m.Fields["Key"], m.Fields["Message"] = data[:sep], data[sep+1:]

	return m, nil
}
