// Package kdf implements the keyed Blake2b derivation that every secret in the
// tree is built from.
//
// # Parameterization
//
// Blake2b is initialized with a custom parameter block rather than the
// default one:
//
//   - digest length: the requested output length (16..64 bytes)
//   - key length: 32 (the parent seed is the MAC key)
//   - fanout and max depth: 1 (sequential mode)
//   - salt: 16 bytes encoding an Index (none, a little-endian integer, or raw bytes)
//   - personalization: an 8-byte Context, zero-extended to 16 bytes
//
// The key is absorbed as a zero-padded 128-byte block and the message is
// empty. With a numeric Index this is bit-for-bit compatible with libsodium's
// crypto_kdf_derive_from_key.
package kdf
