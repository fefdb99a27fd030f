// Package errorcodes defines the response codes of the MAC service protocol
// using a structured type. MACError holds the two-character code and a
// human-readable description.
package errorcodes

// Predefined response code instances.
var (
	Err00 = MACError{"00", "No error"}
	Err01 = MACError{"01", "MAC verification failure"}
	Err15 = MACError{
		"15",
		"Invalid input data (invalid format, invalid characters, or not enough data provided)",
	}
	Err26 = MACError{"26", "Invalid cipher identifier"}
	Err27 = MACError{"27", "Incompatible key length"}
	Err42 = MACError{"42", "Cipher operation failure"}
	Err68 = MACError{"68", "Command has been disabled or is not recognized"}
	Err80 = MACError{"80", "Data length error"}
	Err82 = MACError{"82", "Invalid tag length"}
)

// MACError represents a protocol error with its code and description.
type MACError struct {
	Code        string // two-character error code
	Description string // human-readable description
}

// Error implements the Go error interface: "<Code>: <Description>".
func (e MACError) Error() string {
	return e.Code + ": " + e.Description
}

// CodeOnly returns only the error code (e.g., "68"), for embedding in
// responses.
func (e MACError) CodeOnly() string {
	return e.Code
}
