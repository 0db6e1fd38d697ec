package interfaces

import (
	"io"

	"secrettree"
	domaintypes "secrettree/internal/domain/types"
)

// SeedService manages the lifecycle of the root seed.
type SeedService interface {
	Generate(passphrase string, force bool) (domaintypes.Fingerprint, error)
	Restore(passphrase, seedHex string, force bool) (domaintypes.Fingerprint, error)
	Open(passphrase string) (*secrettree.Tree, error)
	Fingerprint(passphrase string) (domaintypes.Fingerprint, error)
	Export(passphrase string) (string, error)
}

// DeriveService derives secrets and keys at textual paths below the root.
type DeriveService interface {
	Secret(passphrase, path string, purpose domaintypes.Purpose, size int) ([]byte, error)
	Stream(passphrase, path string, purpose domaintypes.Purpose, w io.Writer, n int64) error
	PublicKey(passphrase, path string, kind domaintypes.KeyKind) (domaintypes.PublicKey, error)
	// Sign signs msg with the Ed25519 key at path.
	Sign(passphrase, path string, msg []byte) (domaintypes.PublicKey, []byte, error)
	// Agree runs X25519 between the key at path and peer, a 32-byte public key.
	Agree(passphrase, path string, peer []byte) (domaintypes.PublicKey, []byte, error)
	Purposes() ([]domaintypes.PurposeBinding, error)
}
