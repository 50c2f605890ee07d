//go:build kyber90s

package symmetric

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/sha512"

	"kyberkex/internal/params"
)

// Backend names the active symmetric backend.
const Backend = "90s"

// XOFBlockBytes is the squeeze granularity of the XOF.
const XOFBlockBytes = 64

// H computes the short domain-separated hash (SHA2-256).
func H(in []byte) [params.SymBytes]byte {
	return sha256.Sum256(in)
}

// G computes the long domain-separated hash (SHA2-512). Callers split the
// result into a pre-key half and a coins half.
func G(in []byte) [2 * params.SymBytes]byte {
	return sha512.Sum512(in)
}

// KDF derives a shared secret from in (SHA-256). It is always the last step
// before a value is handed to a caller as a shared secret.
func KDF(in []byte) [params.SharedSecretBytes]byte {
	return sha256.Sum256(in)
}

// XOF is a restartable extendable-output function over AES-256-CTR. A fresh
// Absorb resets all prior state.
type XOF struct {
	stream cipher.Stream
}

// Absorb keys the XOF with seed and the two domain-separation bytes x and y.
// seed must be params.SymBytes long.
func (s *XOF) Absorb(seed []byte, x, y byte) {
	var iv [aes.BlockSize]byte
	iv[0] = x
	iv[1] = y
	block, err := aes.NewCipher(seed[:params.SymBytes])
	if err != nil {
		panic("symmetric: bad AES key size")
	}
	s.stream = cipher.NewCTR(block, iv[:])
}

// SqueezeBlocks fills out with nblocks*XOFBlockBytes keystream bytes.
func (s *XOF) SqueezeBlocks(out []byte, nblocks int) {
	out = out[:nblocks*XOFBlockBytes]
	for i := range out {
		out[i] = 0
	}
	s.stream.XORKeyStream(out, out)
}

// PRF fills out with the AES-256-CTR keystream under key and nonce. key must
// be params.SymBytes long.
func PRF(out, key []byte, nonce byte) {
	var iv [aes.BlockSize]byte
	iv[0] = nonce
	block, err := aes.NewCipher(key[:params.SymBytes])
	if err != nil {
		panic("symmetric: bad AES key size")
	}
	for i := range out {
		out[i] = 0
	}
	cipher.NewCTR(block, iv[:]).XORKeyStream(out, out)
}
