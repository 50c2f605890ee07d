// Package commands defines the kyberkex CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Generate a key pair and store it encrypted on disk
//   - fingerprint  Print the public-key fingerprint
//   - pubkey       Print the public key in base64
//   - encap        Encapsulate a shared secret to a peer public key
//   - decap        Decapsulate a ciphertext with the stored secret key
//   - exchange     Run an in-process Uake/Ake handshake against the stored key
//
// # Implementation
//
// The root command resolves the home directory and builds the keystore
// before any subcommand runs, so handlers share one store instance. Secret
// outputs are printed only when the user explicitly asked for them (encap,
// decap); keys at rest stay sealed under the passphrase.
package commands
