package kem_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"kyberkex/kem"
)

// failingReader simulates a randomness source that stops delivering,
// e.g. a failed hardware RNG.
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestEncapDecap_RoundTrip(t *testing.T) {
	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	defer kp.Wipe()

	ct, ss1, err := kem.Encapsulate(kp.Public[:], rand.Reader)
	require.NoError(t, err)
	require.Len(t, ct, kem.CiphertextBytes)
	require.Len(t, ss1, kem.SharedSecretBytes)

	ss2, err := kem.Decapsulate(ct, kp.Secret[:])
	require.NoError(t, err)
	require.Equal(t, ss1, ss2)
}

func TestDecapsulate_ImplicitRejection(t *testing.T) {
	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	defer kp.Wipe()

	ct, ss, err := kem.Encapsulate(kp.Public[:], rand.Reader)
	require.NoError(t, err)

	// Any corruption must still decapsulate cleanly, to a different secret.
	for _, i := range []int{0, 1, len(ct) / 2, len(ct) - 1} {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 0xff
		got, err := kem.Decapsulate(tampered, kp.Secret[:])
		require.NoError(t, err)
		require.Len(t, got, kem.SharedSecretBytes)
		require.NotEqual(t, ss, got, "flip at %d produced the honest secret", i)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	seed := make([]byte, kem.SeedBytes)

	kp1, err := kem.Derive(seed)
	require.NoError(t, err)
	kp2, err := kem.Derive(seed)
	require.NoError(t, err)

	// The all-zero seed is the known-answer anchor: byte-identical output on
	// every invocation.
	require.Equal(t, kp1.Public, kp2.Public)
	require.Equal(t, kp1.Secret, kp2.Secret)

	seed[0] = 1
	kp3, err := kem.Derive(seed)
	require.NoError(t, err)
	require.NotEqual(t, kp1.Public, kp3.Public)
}

func TestDerive_RoundTrips(t *testing.T) {
	seed := bytes.Repeat([]byte{0x17}, kem.SeedBytes)
	kp, err := kem.Derive(seed)
	require.NoError(t, err)

	ct, ss1, err := kem.Encapsulate(kp.Public[:], rand.Reader)
	require.NoError(t, err)
	ss2, err := kem.Decapsulate(ct, kp.Secret[:])
	require.NoError(t, err)
	require.Equal(t, ss1, ss2)
}

func TestDerive_SeedLength(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65, 128} {
		_, err := kem.Derive(make([]byte, n))
		require.ErrorIs(t, err, kem.ErrInvalidInput, "seed length %d", n)
	}
}

func TestEncapsulateDeterministic(t *testing.T) {
	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	defer kp.Wipe()

	seed := bytes.Repeat([]byte{0x5a}, 32)
	ct1, ss1, err := kem.EncapsulateDeterministic(kp.Public[:], seed)
	require.NoError(t, err)
	ct2, ss2, err := kem.EncapsulateDeterministic(kp.Public[:], seed)
	require.NoError(t, err)
	require.Equal(t, ct1, ct2)
	require.Equal(t, ss1, ss2)

	seed[0] ^= 1
	ct3, _, err := kem.EncapsulateDeterministic(kp.Public[:], seed)
	require.NoError(t, err)
	require.NotEqual(t, ct1, ct3)

	ss4, err := kem.Decapsulate(ct1, kp.Secret[:])
	require.NoError(t, err)
	require.Equal(t, ss1, ss4)
}

func TestPublicKey_Extraction(t *testing.T) {
	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	defer kp.Wipe()

	pk, err := kem.PublicKey(kp.Secret[:])
	require.NoError(t, err)
	require.Equal(t, kp.Public[:], pk)

	dkp, err := kem.Derive(make([]byte, kem.SeedBytes))
	require.NoError(t, err)
	pk, err = kem.PublicKey(dkp.Secret[:])
	require.NoError(t, err)
	require.Equal(t, dkp.Public[:], pk)

	_, err = kem.PublicKey(make([]byte, kem.SecretKeyBytes-1))
	require.ErrorIs(t, err, kem.ErrInvalidInput)
}

func TestLengthValidation(t *testing.T) {
	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	defer kp.Wipe()

	_, _, err = kem.Encapsulate(make([]byte, kem.PublicKeyBytes+3), rand.Reader)
	require.ErrorIs(t, err, kem.ErrInvalidInput)

	_, err = kem.Decapsulate(make([]byte, kem.CiphertextBytes+3), kp.Secret[:])
	require.ErrorIs(t, err, kem.ErrInvalidInput)

	_, err = kem.Decapsulate(make([]byte, kem.CiphertextBytes), make([]byte, kem.SecretKeyBytes+3))
	require.ErrorIs(t, err, kem.ErrInvalidInput)
}

func TestImport(t *testing.T) {
	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	defer kp.Wipe()

	got, err := kem.Import(kp.Public[:], kp.Secret[:], rand.Reader)
	require.NoError(t, err)
	require.Equal(t, kp.Public, got.Public)
	require.Equal(t, kp.Secret, got.Secret)

	// Corrupting the PKE secret breaks the pairing: decapsulation falls back
	// to implicit rejection and the secrets no longer match.
	badSK := append([]byte(nil), kp.Secret[:]...)
	badSK[0] ^= 0xff
	_, err = kem.Import(kp.Public[:], badSK, rand.Reader)
	require.ErrorIs(t, err, kem.ErrInvalidKey)

	_, err = kem.Import(kp.Public[:1], kp.Secret[:], rand.Reader)
	require.ErrorIs(t, err, kem.ErrInvalidInput)
}

func TestFailingRandomSource(t *testing.T) {
	_, err := kem.GenerateKeyPair(failingReader{})
	require.ErrorIs(t, err, kem.ErrRandomBytesGeneration)

	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	defer kp.Wipe()

	_, _, err = kem.Encapsulate(kp.Public[:], failingReader{})
	require.ErrorIs(t, err, kem.ErrRandomBytesGeneration)
}

func TestWipe(t *testing.T) {
	kp, err := kem.GenerateKeyPair(rand.Reader)
	require.NoError(t, err)
	kp.Wipe()
	require.Equal(t, make([]byte, kem.SecretKeyBytes), kp.Secret[:])
}
