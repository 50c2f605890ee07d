// Package kex builds two authenticated key-exchange protocols from repeated
// KEM operations: Uake, where only the responder is authenticated, and Ake,
// where both parties are.
//
// # Flows
//
// Uake:
//  1. The initiator generates an ephemeral key pair and encapsulates to the
//     responder's static public key; it sends ephemeral_pk ‖ ct and keeps
//     the resulting temp key.
//  2. The responder encapsulates to the ephemeral key (its response is that
//     ciphertext), decapsulates the received ct with its static secret, and
//     KDFs both secrets.
//  3. The initiator decapsulates the response with its ephemeral secret and
//     KDFs in the same order, arriving at the same shared secret.
//
// Ake adds a second leg: the responder also encapsulates to the initiator's
// static public key (response becomes ct ‖ ct), and the initiator
// decapsulates that leg with its static secret, giving a three-block KDF
// input. Block order is identical on both sides; it is part of the wire
// contract.
//
// # Failure semantics
//
// Neither protocol signals authentication failure mid-handshake. A forged or
// mismatched message makes the two parties silently derive different shared
// secrets; detecting that divergence belongs to a higher-layer confirmation
// step. Only input-length and randomness-source errors are surfaced.
//
// A Uake or Ake value is single-use and not safe for concurrent mutation.
// Call Wipe once the handshake is complete or abandoned.
package kex
