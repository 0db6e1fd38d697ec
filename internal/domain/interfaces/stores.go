package interfaces

import (
	"secrettree"
	domaintypes "secrettree/internal/domain/types"
)

// SeedStore persists the root seed in passphrase-encrypted form.
type SeedStore interface {
	SaveSeed(passphrase string, seed *secrettree.Seed) error
	// LoadSeed decrypts the seed and returns the root tree; the caller closes it.
	LoadSeed(passphrase string) (*secrettree.Tree, error)
	HasSeed() (bool, error)
}

// PurposeRegistry remembers which purpose each derivation path serves.
type PurposeRegistry interface {
	// Bind records purpose for path, or confirms an identical earlier binding.
	// A different earlier purpose is an error.
	Bind(path string, purpose domaintypes.Purpose) (domaintypes.PurposeBinding, error)
	Lookup(path string) (domaintypes.PurposeBinding, bool, error)
	List() ([]domaintypes.PurposeBinding, error)
	Close() error
}
