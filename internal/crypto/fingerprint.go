package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"secrettree"
	"secrettree/internal/util/memzero"
)

// fingerprintName is reserved for SeedFingerprint and must not be used for secrets.
var fingerprintName = secrettree.MustName("fingerprint")

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}

// SeedFingerprint identifies a root seed without revealing it. It fingerprints
// a value derived at the reserved child "fingerprint", so it is one-way and
// unrelated to every other secret of the tree. root stays usable.
func SeedFingerprint(root *secrettree.Tree) string {
	var tag [32]byte
	defer memzero.Zero(tag[:])
	root.Child(fingerprintName).Fill(secrettree.Bytes(tag[:]))
	return Fingerprint(tag[:])
}
