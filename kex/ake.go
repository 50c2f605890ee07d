package kex

import (
	"io"

	"kyberkex/internal/params"
	"kyberkex/internal/symmetric"
	"kyberkex/internal/util/memzero"
	"kyberkex/kem"
)

// Ake is the state of one mutually authenticated key exchange. Both parties
// prove possession of a static key; the responder's response carries a
// second ciphertext addressed to the initiator's static public key.
type Ake struct {
	// SharedSecret is the agreed key, valid after ServerReceive on the
	// responder and ClientConfirm on the initiator.
	SharedSecret [kem.SharedSecretBytes]byte

	tempKey [kem.SharedSecretBytes]byte
	eska    [kem.SecretKeyBytes]byte
}

// NewAke returns a fresh single-use exchange state.
func NewAke() *Ake {
	return &Ake{}
}

// Wipe erases the shared secret and all ephemeral material.
func (a *Ake) Wipe() {
	memzero.Zero(a.SharedSecret[:])
	memzero.Zero(a.tempKey[:])
	memzero.Zero(a.eska[:])
}

// ClientInit starts the exchange against the responder's static public key
// and returns the initiation message to send.
func (a *Ake) ClientInit(responderPK []byte, rand io.Reader) ([]byte, error) {
	if len(responderPK) != kem.PublicKeyBytes {
		return nil, kem.ErrInvalidInput
	}
	sendA := make([]byte, AkeInitBytes)

	ekp, err := kem.GenerateKeyPair(rand)
	if err != nil {
		return nil, err
	}
	copy(sendA[:kem.PublicKeyBytes], ekp.Public[:])
	a.eska = ekp.Secret
	ekp.Wipe()

	ct, tk, err := kem.Encapsulate(responderPK, rand)
	if err != nil {
		memzero.Zero(a.eska[:])
		return nil, err
	}
	copy(sendA[kem.PublicKeyBytes:], ct)
	copy(a.tempKey[:], tk)
	memzero.Zero(tk)
	return sendA, nil
}

// ServerReceive consumes an initiation message using the responder's static
// secret key and the initiator's static public key, fixes the shared secret
// on the responder side, and returns the response message.
func (a *Ake) ServerReceive(sendA, initiatorPK, sk []byte, rand io.Reader) ([]byte, error) {
	if len(sendA) != AkeInitBytes || len(initiatorPK) != kem.PublicKeyBytes || len(sk) != kem.SecretKeyBytes {
		return nil, kem.ErrInvalidInput
	}
	var buf [3 * params.SymBytes]byte
	defer memzero.Zero(buf[:])
	sendB := make([]byte, AkeResponseBytes)

	ct2, k1, err := kem.Encapsulate(sendA[:kem.PublicKeyBytes], rand)
	if err != nil {
		return nil, err
	}
	copy(sendB[:kem.CiphertextBytes], ct2)
	copy(buf[:params.SymBytes], k1)
	memzero.Zero(k1)

	ct3, k2, err := kem.Encapsulate(initiatorPK, rand)
	if err != nil {
		return nil, err
	}
	copy(sendB[kem.CiphertextBytes:], ct3)
	copy(buf[params.SymBytes:2*params.SymBytes], k2)
	memzero.Zero(k2)

	k3, err := kem.Decapsulate(sendA[kem.PublicKeyBytes:], sk)
	if err != nil {
		return nil, err
	}
	copy(buf[2*params.SymBytes:], k3)
	memzero.Zero(k3)

	a.SharedSecret = symmetric.KDF(buf[:])
	return sendB, nil
}

// ClientConfirm consumes the response message using the initiator's static
// secret key and fixes the shared secret on the initiator side. The KDF
// block order matches ServerReceive exactly.
func (a *Ake) ClientConfirm(sendB, sk []byte) error {
	if len(sendB) != AkeResponseBytes || len(sk) != kem.SecretKeyBytes {
		return kem.ErrInvalidInput
	}
	var buf [3 * params.SymBytes]byte
	defer memzero.Zero(buf[:])

	k1, err := kem.Decapsulate(sendB[:kem.CiphertextBytes], a.eska[:])
	if err != nil {
		return err
	}
	copy(buf[:params.SymBytes], k1)
	memzero.Zero(k1)

	k2, err := kem.Decapsulate(sendB[kem.CiphertextBytes:], sk)
	if err != nil {
		return err
	}
	copy(buf[params.SymBytes:2*params.SymBytes], k2)
	memzero.Zero(k2)

	copy(buf[2*params.SymBytes:], a.tempKey[:])

	a.SharedSecret = symmetric.KDF(buf[:])
	return nil
}
