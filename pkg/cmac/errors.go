package cmac

import "errors"

var (
	// ErrBadInput reports invalid parameters: an unsupported cipher, a bad
	// key or tag length, or an unkeyed context.
	ErrBadInput = errors.New("cmac: bad input parameters")

	// ErrVerifyFailed reports a tag mismatch during verification. It carries
	// no information about where the candidate tag differed.
	ErrVerifyFailed = errors.New("cmac: verification failed")
)
