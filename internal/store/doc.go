// Package store provides on-disk persistence for the secret tree CLI.
//
// It contains concrete implementations of the domain storage interfaces:
//   - SeedFileStore keeps the root seed in a JSON envelope sealed with
//     ChaCha20-Poly1305 under a scrypt or Argon2id passphrase key.
//   - PurposeDB records which purpose each derivation path serves, in LevelDB.
//
// Files are written atomically through a temp file and rename.
package store
