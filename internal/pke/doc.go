// Package pke is the boundary to the underlying IND-CPA lattice encryption
// scheme. The KEM consumes it through exactly three operations — keypair,
// encrypt, decrypt — over packed byte buffers; polynomial arithmetic, NTT
// multiplication, noise sampling and ciphertext compression all live behind
// this boundary in cloudflare/circl.
//
// Encrypt is deterministic given its coins, which is what makes the
// re-encryption check in decapsulation possible. Decrypt may recover a wrong
// message with cryptographically negligible probability; that is a property
// of lattice decryption, not an error, and is only ever detected by
// re-encryption.
//
// One file per security level is selected by the same build tags as
// internal/params, each binding the matching circl parameter set.
package pke
