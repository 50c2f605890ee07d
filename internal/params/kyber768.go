//go:build !kyber512 && !kyber1024

package params

const (
	// Name identifies the active security level.
	Name = "kyber768"

	// K is the module dimension.
	K = 3

	// PublicKeyBytes is the size of a packed public key.
	PublicKeyBytes = 1184
	// PKESecretKeyBytes is the size of the underlying PKE secret key.
	PKESecretKeyBytes = 1152
	// CiphertextBytes is the size of a ciphertext.
	CiphertextBytes = 1088
)
