//go:build kyber1024 && !kyber512

package pke

import (
	"github.com/cloudflare/circl/pke/kyber/kyber1024"

	"kyberkex/internal/params"
)

// KeySeedBytes is the seed length consumed by KeyPairFromSeed.
const KeySeedBytes = kyber1024.KeySeedSize

// KeyPairFromSeed deterministically derives a keypair from seed and packs it
// into pk and sk. pk, sk and seed must be params.PublicKeyBytes,
// params.PKESecretKeyBytes and KeySeedBytes long respectively.
func KeyPairFromSeed(pk, sk, seed []byte) {
	pub, priv := kyber1024.NewKeyFromSeed(seed[:KeySeedBytes])
	pub.Pack(pk[:params.PublicKeyBytes])
	priv.Pack(sk[:params.PKESecretKeyBytes])
}

// Encrypt encrypts the 32-byte msg under pk into ct, deterministically with
// respect to coins.
func Encrypt(ct, msg, pk, coins []byte) {
	var pub kyber1024.PublicKey
	pub.Unpack(pk[:params.PublicKeyBytes])
	pub.EncryptTo(ct[:params.CiphertextBytes], msg[:params.SymBytes], coins[:params.SymBytes])
}

// Decrypt recovers the 32-byte message from ct under sk.
func Decrypt(msg, ct, sk []byte) {
	var priv kyber1024.PrivateKey
	priv.Unpack(sk[:params.PKESecretKeyBytes])
	priv.DecryptTo(msg[:params.SymBytes], ct[:params.CiphertextBytes])
}
