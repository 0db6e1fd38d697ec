// Package secrettree derives a hierarchy of independent secrets from a single
// 32-byte seed.
//
// A Tree owns one seed. It can produce child trees identified by a Name, an
// integer index or a 32-byte digest, and it can be turned into a fixed-size
// secret (Fill, CreateSecret) or a ChaCha20 CSPRNG (RNG). Storing the root seed
// is enough to recreate every secret below it, while leaking a derived secret
// reveals nothing about its siblings or parent.
//
// # Derivation
//
// Every operation is one keyed Blake2b call with the parent seed as the key,
// an empty message and these salt / personalization values:
//
//	| Output              | Salt                       | Personalization |
//	|---------------------|----------------------------|-----------------|
//	| Fill / CreateSecret | zero                       | "bytes"         |
//	| RNG seed            | zero                       | "rng"           |
//	| named child         | Name (zero-padded)         | "name"          |
//	| indexed child       | little-endian index        | "index"         |
//	| digest child, pass1 | digest[0:16]               | "digest0"       |
//	| digest child, pass2 | digest[16:32]              | "digest1"       |
//
// Fill, the RNG seed and indexed children match libsodium's
// crypto_kdf_derive_from_key with the same context.
//
// # Ownership
//
// Fill, TryFill, CreateSecret, TryCreateSecret and RNG consume the tree: its
// seed is zeroed and any later call panics. Child, Index and Digest leave the
// parent usable. Close zeroes a tree that is no longer needed; the usual
// pattern is
//
//	t, err := secrettree.FromSlice(seed)
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//
// A Tree is not safe for concurrent use. Goroutines that need secrets from
// one hierarchy should each own a disjoint subtree.
//
// The purpose of a path should never change: if one release derives an
// Ed25519 key at consensus/0, a later one must not derive an AES key there.
package secrettree
