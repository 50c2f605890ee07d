package kem

import (
	"io"

	"kyberkex/internal/params"
	"kyberkex/internal/pke"
	"kyberkex/internal/symmetric"
	"kyberkex/internal/util/ctsel"
	"kyberkex/internal/util/memzero"
)

// Sizes of the active security level, re-exported for callers.
const (
	PublicKeyBytes    = params.PublicKeyBytes
	SecretKeyBytes    = params.SecretKeyBytes
	CiphertextBytes   = params.CiphertextBytes
	SharedSecretBytes = params.SharedSecretBytes
	SeedBytes         = params.SeedBytes
)

// KeyPair holds a public key and the packed secret key that embeds it.
type KeyPair struct {
	Public [PublicKeyBytes]byte
	Secret [SecretKeyBytes]byte
}

// Wipe zeroes the secret half. The pair must not be used afterwards.
func (kp *KeyPair) Wipe() {
	memzero.Zero(kp.Secret[:])
}

// GenerateKeyPair creates a fresh key pair using entropy from rand.
func GenerateKeyPair(rand io.Reader) (*KeyPair, error) {
	kp := new(KeyPair)
	if err := generateKeyPair(kp.Public[:], kp.Secret[:], rand, nil); err != nil {
		kp.Wipe()
		return nil, err
	}
	return kp, nil
}

// Derive deterministically builds a key pair from a 64-byte seed: the first
// half seeds the PKE keypair, the second half becomes the implicit-rejection
// fallback z. Identical seeds yield byte-identical key pairs, which is the
// basis for known-answer tests.
func Derive(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedBytes {
		return nil, ErrInvalidInput
	}
	kp := new(KeyPair)
	if err := generateKeyPair(kp.Public[:], kp.Secret[:], nil, seed); err != nil {
		kp.Wipe()
		return nil, err
	}
	return kp, nil
}

// Import verifies that pk and sk belong together by running an
// encapsulate/decapsulate round trip, and returns them as a KeyPair.
// A pairing that does not reproduce the same shared secret yields
// ErrInvalidKey.
func Import(pk, sk []byte, rand io.Reader) (*KeyPair, error) {
	if len(pk) != PublicKeyBytes || len(sk) != SecretKeyBytes {
		return nil, ErrInvalidInput
	}
	ct, ss1, err := Encapsulate(pk, rand)
	if err != nil {
		return nil, err
	}
	ss2, err := Decapsulate(ct, sk)
	if err != nil {
		return nil, err
	}
	mismatch := ctsel.Verify(ss1, ss2)
	memzero.Zero(ss1)
	memzero.Zero(ss2)
	if mismatch != 0 {
		return nil, ErrInvalidKey
	}
	kp := new(KeyPair)
	copy(kp.Public[:], pk)
	copy(kp.Secret[:], sk)
	return kp, nil
}

// PublicKey extracts the public key embedded in a packed secret key. It is a
// pure fixed-offset copy, no computation.
func PublicKey(sk []byte) ([]byte, error) {
	if len(sk) != SecretKeyBytes {
		return nil, ErrInvalidInput
	}
	pk := make([]byte, PublicKeyBytes)
	copy(pk, sk[params.PublicKeyOffset:params.PublicKeyOffset+PublicKeyBytes])
	return pk, nil
}

// generateKeyPair fills pk and sk. With a nil seed it draws the PKE seed and
// the fallback z from rand; with a 64-byte seed it is fully deterministic.
func generateKeyPair(pk, sk []byte, rand io.Reader, seed []byte) error {
	var pkeSeed [params.SymBytes]byte
	defer memzero.Zero(pkeSeed[:])

	if seed != nil {
		copy(pkeSeed[:], seed[:params.SymBytes])
	} else if err := readRandom(rand, pkeSeed[:], params.SymBytes); err != nil {
		return err
	}
	pke.KeyPairFromSeed(pk, sk[:params.PKESecretKeyBytes], pkeSeed[:])

	// Embed the public key and its hash: every derived secret is bound to
	// this exact public key (multitarget countermeasure).
	copy(sk[params.PublicKeyOffset:], pk)
	h := symmetric.H(pk)
	copy(sk[params.PublicHashOffset:], h[:])

	// z, the implicit-rejection fallback, must be independent of pk.
	if seed != nil {
		copy(sk[params.ZOffset:], seed[params.SymBytes:])
		return nil
	}
	return readRandom(rand, sk[params.ZOffset:], params.SymBytes)
}
