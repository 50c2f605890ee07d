package kem

import "io"

// readRandom fills x[:n] from the secure source r.
func readRandom(r io.Reader, x []byte, n int) error {
	if n > len(x) {
		return ErrInvalidLength
	}
	if _, err := io.ReadFull(r, x[:n]); err != nil {
		return ErrRandomBytesGeneration
	}
	return nil
}
