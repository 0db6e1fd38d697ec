// Package commands defines the secrettree CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Generate and store a new root seed
//   - restore      Store a previously exported root seed
//   - fingerprint  Print the root seed fingerprint
//   - export-seed  Print the raw root seed (requires --i-understand)
//   - derive       Derive a secret at a path
//   - rng          Stream deterministic random bytes from a path
//   - keys         Derive a keypair at a path and print its public key,
//     or sign a message with it (--sign)
//   - verify       Check an ed25519 signature
//   - agree        Derive an X25519 shared secret with a peer
//   - purposes     List path to purpose bindings
//
// # Paths
//
// Paths are slash separated: "#7" is index 7, "@<64 hex>" a digest child,
// "~label" the digest child of Blake2b-256(label), anything else a name of
// at most 16 bytes. Every path is pinned to the purpose it was first used
// with.
//
// # Implementation
//
// The root command loads config.toml and .env from --home and builds the
// dependency graph (stores, services, logger) before any subcommand runs.
package commands
