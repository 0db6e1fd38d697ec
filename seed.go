package secrettree

import (
	"fmt"

	"secrettree/internal/kdf"
	"secrettree/internal/util/memzero"
)

// SeedLen is the byte length of a tree seed.
const SeedLen = kdf.KeyLen

// Seed is the secret value a Tree is identified by.
type Seed [SeedLen]byte

// Bytes returns the seed as a slice aliasing s.
func (s *Seed) Bytes() []byte { return s[:] }

// Wipe overwrites the seed with zeros.
func (s *Seed) Wipe() { memzero.Zero(s[:]) }

// String never reveals the seed.
func (s Seed) String() string { return "Seed(_)" }

// GoString never reveals the seed.
func (s Seed) GoString() string { return s.String() }

// Format redacts the seed under every verb, including %x and %d.
func (s Seed) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte(s.String())) }

// LengthError is returned by FromSlice for input that is not SeedLen bytes.
type LengthError struct {
	Len int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid seed length: %d bytes, expected %d", e.Len, SeedLen)
}
