// Package kem implements a CCA2-secure key encapsulation mechanism on top of
// the IND-CPA lattice encryption scheme behind internal/pke, using the
// implicit-rejection transform.
//
// # Overview
//
// Encapsulate hashes fresh randomness together with the recipient's public
// key, derives encryption coins from the result, and encrypts the hashed
// randomness. Decapsulate decrypts, re-encrypts the recovered message with
// re-derived coins and compares against the received ciphertext in constant
// time. On a mismatch the pre-key is replaced — via a data-oblivious
// conditional copy — with the secret fallback z stored in the secret key, so
// decapsulation always returns a 32-byte secret and never reveals whether
// the ciphertext was validly produced.
//
// Binding every derivation to H(public key) and every shared secret to
// H(ciphertext) defeats multitarget precomputation attacks.
//
// # Randomness
//
// Every randomized operation takes an explicit io.Reader which must be a
// cryptographically secure source (crypto/rand.Reader in production).
// Failures surface as ErrRandomBytesGeneration; a partially filled key is
// never returned.
//
// # Secret-key layout
//
// A secret key packs [pke_secret | pke_public | H(pke_public) | z] at the
// fixed offsets defined in internal/params. PublicKey extracts the embedded
// public key as a pure fixed-offset slice and Decapsulate reads z from the
// trailing region; the layout is part of the wire contract.
//
// Callers should Wipe key pairs when done; shared secrets handed out are the
// caller's to erase.
package kem
