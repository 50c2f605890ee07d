// Package symmetric provides the domain-separated symmetric primitives that
// glue the KEM together: the short hash H, the long hash G, the final KDF,
// an extendable-output function and a PRF derived from it.
//
// Two interchangeable backends exist behind build tags:
//
//   - default: SHA3-256 / SHA3-512 / SHAKE256 / SHAKE128
//   - kyber90s: SHA2-256 / SHA2-512 / SHA-256 / AES-256-CTR
//
// The contract (output sizes and domain-byte placement) is identical across
// backends, so callers are backend-agnostic. Outputs are only comparable
// within a single backend.
//
// Domain separation: H, G and KDF are distinct functions of the same input;
// the XOF mixes two extra domain bytes into its absorb phase and the PRF
// mixes a single nonce byte after its key. The same underlying hash can
// therefore never be confused across uses.
package symmetric
