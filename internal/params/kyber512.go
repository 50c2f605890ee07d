//go:build kyber512 && !kyber1024

package params

const (
	// Name identifies the active security level.
	Name = "kyber512"

	// K is the module dimension.
	K = 2

	// PublicKeyBytes is the size of a packed public key.
	PublicKeyBytes = 800
	// PKESecretKeyBytes is the size of the underlying PKE secret key.
	PKESecretKeyBytes = 768
	// CiphertextBytes is the size of a ciphertext.
	CiphertextBytes = 768
)
