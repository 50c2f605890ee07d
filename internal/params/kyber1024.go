//go:build kyber1024 && !kyber512

package params

const (
	// Name identifies the active security level.
	Name = "kyber1024"

	// K is the module dimension.
	K = 4

	// PublicKeyBytes is the size of a packed public key.
	PublicKeyBytes = 1568
	// PKESecretKeyBytes is the size of the underlying PKE secret key.
	PKESecretKeyBytes = 1536
	// CiphertextBytes is the size of a ciphertext.
	CiphertextBytes = 1568
)
