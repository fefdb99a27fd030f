package cmac

const prfKeySize = 16

// PRF128 implements AES-CMAC-PRF-128 (RFC 4615): a pseudorandom function
// producing a 16-byte output from an arbitrary-length key and message.
//
// A key of exactly 16 bytes is used directly as the AES-128 key. Any other
// length is first compressed to 16 bytes by running CMAC over it under the
// all-zero AES-128 key.
func PRF128(key, message []byte) ([]byte, error) {
	k := key
	if len(key) != prfKeySize {
		derived, err := Sum(CipherAES, make([]byte, prfKeySize), key, prfKeySize)
		if err != nil {
			return nil, err
		}
		defer zeroize(derived)
		k = derived
	}

	return Sum(CipherAES, k, message, prfKeySize)
}
