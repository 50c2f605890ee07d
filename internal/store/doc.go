// Package store persists the local KEM key pair to disk, encrypted under a
// passphrase. The secret key is sealed with ChaCha20-Poly1305 using a
// scrypt-derived key and written as a versioned JSON blob alongside its KDF
// parameters, so the parameters can be raised later without breaking old
// files.
package store
