package kex

import (
	"io"

	"kyberkex/internal/params"
	"kyberkex/internal/symmetric"
	"kyberkex/internal/util/memzero"
	"kyberkex/kem"
)

// Message sizes for the two protocols.
const (
	// UakeInitBytes is the size of the unilateral initiation message.
	UakeInitBytes = kem.PublicKeyBytes + kem.CiphertextBytes
	// UakeResponseBytes is the size of the unilateral response message.
	UakeResponseBytes = kem.CiphertextBytes
	// AkeInitBytes is the size of the mutual initiation message.
	AkeInitBytes = kem.PublicKeyBytes + kem.CiphertextBytes
	// AkeResponseBytes is the size of the mutual response message.
	AkeResponseBytes = 2 * kem.CiphertextBytes
)

// Uake is the state of one unilaterally authenticated key exchange. Only the
// responder proves possession of a static key.
type Uake struct {
	// SharedSecret is the agreed key, valid after ServerReceive on the
	// responder and ClientConfirm on the initiator.
	SharedSecret [kem.SharedSecretBytes]byte

	tempKey [kem.SharedSecretBytes]byte
	eska    [kem.SecretKeyBytes]byte
}

// NewUake returns a fresh single-use exchange state.
func NewUake() *Uake {
	return &Uake{}
}

// Wipe erases the shared secret and all ephemeral material.
func (u *Uake) Wipe() {
	memzero.Zero(u.SharedSecret[:])
	memzero.Zero(u.tempKey[:])
	memzero.Zero(u.eska[:])
}

// ClientInit starts the exchange against the responder's static public key
// and returns the initiation message to send.
func (u *Uake) ClientInit(responderPK []byte, rand io.Reader) ([]byte, error) {
	if len(responderPK) != kem.PublicKeyBytes {
		return nil, kem.ErrInvalidInput
	}
	sendA := make([]byte, UakeInitBytes)

	ekp, err := kem.GenerateKeyPair(rand)
	if err != nil {
		return nil, err
	}
	copy(sendA[:kem.PublicKeyBytes], ekp.Public[:])
	u.eska = ekp.Secret
	ekp.Wipe()

	ct, tk, err := kem.Encapsulate(responderPK, rand)
	if err != nil {
		memzero.Zero(u.eska[:])
		return nil, err
	}
	copy(sendA[kem.PublicKeyBytes:], ct)
	copy(u.tempKey[:], tk)
	memzero.Zero(tk)
	return sendA, nil
}

// ServerReceive consumes an initiation message using the responder's static
// secret key, fixes the shared secret on the responder side, and returns the
// response message.
func (u *Uake) ServerReceive(sendA, sk []byte, rand io.Reader) ([]byte, error) {
	if len(sendA) != UakeInitBytes || len(sk) != kem.SecretKeyBytes {
		return nil, kem.ErrInvalidInput
	}
	var buf [2 * params.SymBytes]byte
	defer memzero.Zero(buf[:])

	sendB, k1, err := kem.Encapsulate(sendA[:kem.PublicKeyBytes], rand)
	if err != nil {
		return nil, err
	}
	copy(buf[:params.SymBytes], k1)
	memzero.Zero(k1)

	k2, err := kem.Decapsulate(sendA[kem.PublicKeyBytes:], sk)
	if err != nil {
		return nil, err
	}
	copy(buf[params.SymBytes:], k2)
	memzero.Zero(k2)

	u.SharedSecret = symmetric.KDF(buf[:])
	return sendB, nil
}

// ClientConfirm consumes the response message and fixes the shared secret on
// the initiator side.
func (u *Uake) ClientConfirm(sendB []byte) error {
	if len(sendB) != UakeResponseBytes {
		return kem.ErrInvalidInput
	}
	var buf [2 * params.SymBytes]byte
	defer memzero.Zero(buf[:])

	k2, err := kem.Decapsulate(sendB, u.eska[:])
	if err != nil {
		return err
	}
	copy(buf[:params.SymBytes], k2)
	memzero.Zero(k2)
	copy(buf[params.SymBytes:], u.tempKey[:])

	u.SharedSecret = symmetric.KDF(buf[:])
	return nil
}
