//go:build !kyber90s

package symmetric

import (
	"golang.org/x/crypto/sha3"

	"kyberkex/internal/params"
)

// Backend names the active symmetric backend.
const Backend = "sha3"

// XOFBlockBytes is the squeeze granularity of the XOF (the SHAKE128 rate).
const XOFBlockBytes = 168

// H computes the short domain-separated hash (SHA3-256).
func H(in []byte) [params.SymBytes]byte {
	return sha3.Sum256(in)
}

// G computes the long domain-separated hash (SHA3-512). Callers split the
// result into a pre-key half and a coins half.
func G(in []byte) [2 * params.SymBytes]byte {
	return sha3.Sum512(in)
}

// KDF derives a shared secret from in (SHAKE256). It is always the last step
// before a value is handed to a caller as a shared secret.
func KDF(in []byte) [params.SharedSecretBytes]byte {
	var out [params.SharedSecretBytes]byte
	sha3.ShakeSum256(out[:], in)
	return out
}

// XOF is a restartable extendable-output function over SHAKE128. A fresh
// Absorb resets all prior state.
type XOF struct {
	state sha3.ShakeHash
}

// Absorb keys the XOF with seed and the two domain-separation bytes x and y.
// seed must be params.SymBytes long.
func (s *XOF) Absorb(seed []byte, x, y byte) {
	if s.state == nil {
		s.state = sha3.NewShake128()
	} else {
		s.state.Reset()
	}
	s.state.Write(seed[:params.SymBytes])
	s.state.Write([]byte{x, y})
}

// SqueezeBlocks fills out with nblocks*XOFBlockBytes output bytes.
func (s *XOF) SqueezeBlocks(out []byte, nblocks int) {
	s.state.Read(out[:nblocks*XOFBlockBytes])
}

// PRF fills out with SHAKE256(key ‖ nonce). key must be params.SymBytes long.
func PRF(out, key []byte, nonce byte) {
	state := sha3.NewShake256()
	state.Write(key[:params.SymBytes])
	state.Write([]byte{nonce})
	state.Read(out)
}
