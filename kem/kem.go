package kem

import (
	"io"

	"kyberkex/internal/params"
	"kyberkex/internal/pke"
	"kyberkex/internal/symmetric"
	"kyberkex/internal/util/ctsel"
	"kyberkex/internal/util/memzero"
)

// Encapsulate produces a ciphertext for pk and the shared secret it
// encapsulates, using entropy from rand.
func Encapsulate(pk []byte, rand io.Reader) (ct, ss []byte, err error) {
	if len(pk) != PublicKeyBytes {
		return nil, nil, ErrInvalidInput
	}
	ct = make([]byte, CiphertextBytes)
	ss = make([]byte, SharedSecretBytes)
	if err := encrypt(ct, ss, pk, rand, nil); err != nil {
		return nil, nil, err
	}
	return ct, ss, nil
}

// EncapsulateDeterministic is Encapsulate with the 32 bytes of randomness
// supplied by the caller instead of drawn from a source. Identical inputs
// yield identical outputs; it exists for known-answer tests.
func EncapsulateDeterministic(pk, seed []byte) (ct, ss []byte, err error) {
	if len(pk) != PublicKeyBytes || len(seed) != params.SymBytes {
		return nil, nil, ErrInvalidInput
	}
	ct = make([]byte, CiphertextBytes)
	ss = make([]byte, SharedSecretBytes)
	if err := encrypt(ct, ss, pk, nil, seed); err != nil {
		return nil, nil, err
	}
	return ct, ss, nil
}

// Decapsulate recovers the shared secret from ct under sk. After the length
// checks it cannot fail: a ciphertext that does not survive the
// re-encryption check yields a pseudorandom secret derived from the fallback
// z instead, with no observable difference in timing or memory access.
func Decapsulate(ct, sk []byte) ([]byte, error) {
	if len(ct) != CiphertextBytes || len(sk) != SecretKeyBytes {
		return nil, ErrInvalidInput
	}
	ss := make([]byte, SharedSecretBytes)
	decrypt(ss, ct, sk)
	return ss, nil
}

// encrypt is the encapsulation core. With a nil seed the message randomness
// comes from rand; otherwise from seed.
func encrypt(ct, ss, pk []byte, rand io.Reader, seed []byte) error {
	var buf, kr, randbuf [2 * params.SymBytes]byte
	defer memzero.Zero(buf[:])
	defer memzero.Zero(kr[:])
	defer memzero.Zero(randbuf[:])

	if seed != nil {
		copy(randbuf[:params.SymBytes], seed)
	} else if err := readRandom(rand, randbuf[:], params.SymBytes); err != nil {
		return err
	}

	// Hash the raw randomness so RNG output is never released directly,
	// and bind the derivation to this public key.
	m := symmetric.H(randbuf[:params.SymBytes])
	copy(buf[:params.SymBytes], m[:])
	hpk := symmetric.H(pk)
	copy(buf[params.SymBytes:], hpk[:])

	g := symmetric.G(buf[:])
	copy(kr[:], g[:])

	// Coins live in the second half of kr.
	pke.Encrypt(ct, buf[:params.SymBytes], pk, kr[params.SymBytes:])

	// Overwrite the coins with H(ct) so the shared secret is bound to the
	// ciphertext that was actually sent.
	hc := symmetric.H(ct)
	copy(kr[params.SymBytes:], hc[:])

	out := symmetric.KDF(kr[:])
	copy(ss, out[:])
	memzero.Zero(out[:])
	return nil
}

// decrypt is the decapsulation core. From the first pke.Decrypt to the final
// KDF it runs the same instruction sequence whatever the ciphertext
// contains; the only data-dependent operations are the accumulating compare
// and the masked copy in ctsel.
func decrypt(ss, ct, sk []byte) {
	var buf, kr [2 * params.SymBytes]byte
	var cmp [params.CiphertextBytes]byte
	defer memzero.Zero(buf[:])
	defer memzero.Zero(kr[:])

	pkEmbedded := sk[params.PublicKeyOffset : params.PublicKeyOffset+params.PublicKeyBytes]

	pke.Decrypt(buf[:params.SymBytes], ct, sk[:params.PKESecretKeyBytes])
	copy(buf[params.SymBytes:], sk[params.PublicHashOffset:params.PublicHashOffset+params.SymBytes])

	g := symmetric.G(buf[:])
	copy(kr[:], g[:])

	// Re-encryption check: a genuine ciphertext reproduces itself from the
	// recovered message and re-derived coins.
	pke.Encrypt(cmp[:], buf[:params.SymBytes], pkEmbedded, kr[params.SymBytes:])
	fail := ctsel.Verify(ct, cmp[:])

	hc := symmetric.H(ct)
	copy(kr[params.SymBytes:], hc[:])

	// On mismatch, swap the pre-key for z without branching.
	ctsel.Cmov(kr[:params.SymBytes], sk[params.ZOffset:params.ZOffset+params.SymBytes], fail)

	out := symmetric.KDF(kr[:])
	copy(ss, out[:])
	memzero.Zero(out[:])
}
