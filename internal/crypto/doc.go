// Package crypto derives keypairs from secret trees.
//
// Contents
//
//   - X25519 keys, clamped per RFC 7748 (DeriveX25519)
//   - Ed25519 signing keys (DeriveEd25519)
//   - ML-KEM-768 and ML-DSA-65 keys via circl (DeriveMLKEM768, DeriveMLDSA65)
//   - Short public-key fingerprints for display/logging (Fingerprint, SeedFingerprint)
//
// # Notes
//
// Every Derive function consumes the tree it is given: the key seed is
// produced by Tree.Fill, so a path yields exactly one key. Classical private
// keys are returned as fixed-size arrays the caller can wipe; the circl
// private key types keep their own copies, which cannot be wiped.
package crypto
