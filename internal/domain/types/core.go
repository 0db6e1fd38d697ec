package types

import "time"

// Fingerprint is a short identifier for public material presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Purpose describes what the secret at a derivation path is used for,
// e.g. "ed25519 signing key" or "backup encryption key".
type Purpose string

// String returns the string form of the purpose.
func (p Purpose) String() string { return string(p) }

// PurposeBinding records that a path has been used for a purpose.
type PurposeBinding struct {
	Path      string    `json:"path" yaml:"path"`
	Purpose   Purpose   `json:"purpose" yaml:"purpose"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
