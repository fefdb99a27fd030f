// Package cmac implements the CMAC message authentication code (RFC 4493)
// over the AES and triple-DES block ciphers, together with the derived
// AES-CMAC-PRF-128 pseudorandom function (RFC 4615).
package cmac
