package domain

import (
	interfaces "secrettree/internal/domain/interfaces"
	types "secrettree/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint    = types.Fingerprint
	Purpose        = types.Purpose
	PurposeBinding = types.PurposeBinding
	KeyKind        = types.KeyKind
	PublicKey      = types.PublicKey
	KDFParams      = types.KDFParams
)

// Key kinds and KDF algorithms.
const (
	KeyEd25519  = types.KeyEd25519
	KeyX25519   = types.KeyX25519
	KeyMLKEM768 = types.KeyMLKEM768
	KeyMLDSA65  = types.KeyMLDSA65

	KDFScrypt   = types.KDFScrypt
	KDFArgon2id = types.KDFArgon2id
)

var (
	KeyKinds         = types.KeyKinds
	ParseKeyKind     = types.ParseKeyKind
	DefaultKDFParams = types.DefaultKDFParams
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SeedStore       = interfaces.SeedStore
	PurposeRegistry = interfaces.PurposeRegistry
	SeedService     = interfaces.SeedService
	DeriveService   = interfaces.DeriveService
)
