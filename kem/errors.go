package kem

import "errors"

// Errors deliberately carry no payload beyond their kind, so nothing about
// secret lengths or positions can leak through an error value.
var (
	// ErrInvalidInput reports a public-API input of the wrong length. A
	// likely cause is two parties built with different security levels.
	ErrInvalidInput = errors.New("kem: input is of incorrect length")

	// ErrInvalidKey reports a public/secret pair that failed verification
	// during import.
	ErrInvalidKey = errors.New("kem: public and secret key do not match")

	// ErrInvalidLength reports a request for more random bytes than the
	// destination buffer holds.
	ErrInvalidLength = errors.New("kem: random byte request exceeds buffer")

	// ErrDecapsulation is reserved. Decapsulation never fails outwardly by
	// design; a bad ciphertext yields the implicit-rejection secret instead.
	ErrDecapsulation = errors.New("kem: unable to authenticate ciphertext")

	// ErrRandomBytesGeneration reports a randomness source that failed to
	// fill a requested buffer.
	ErrRandomBytesGeneration = errors.New("kem: random bytes generation failed")
)
