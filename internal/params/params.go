package params

// Level-independent sizes.
const (
	// SymBytes is the width of hashes, seeds and shared secrets.
	SymBytes = 32
	// SharedSecretBytes is the size of a derived shared secret.
	SharedSecretBytes = 32
	// SeedBytes is the seed length accepted by deterministic key derivation:
	// one SymBytes half for the PKE keypair and one for the fallback z.
	SeedBytes = 2 * SymBytes
)

// Derived sizes and secret-key offsets. These follow from the active level's
// constants and define the packed secret-key layout.
const (
	// SecretKeyBytes is the size of a packed secret key.
	SecretKeyBytes = PKESecretKeyBytes + PublicKeyBytes + 2*SymBytes

	// PublicKeyOffset is where the packed public key starts inside a secret key.
	PublicKeyOffset = PKESecretKeyBytes
	// PublicHashOffset is where H(public key) is stored inside a secret key.
	PublicHashOffset = SecretKeyBytes - 2*SymBytes
	// ZOffset is where the implicit-rejection fallback z is stored.
	ZOffset = SecretKeyBytes - SymBytes
)
