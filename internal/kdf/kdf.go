package kdf

import (
	"fmt"

	"github.com/dchest/blake2b"

	"secrettree/internal/util/memzero"
)

const (
	// KeyLen is the byte length of the derivation key, i.e. a tree seed.
	KeyLen = 32
	// ContextLen is the byte length of a purpose tag. Blake2b allows 16; libsodium uses 8.
	ContextLen = 8
	// SaltLen is the byte length of the Blake2b salt field.
	SaltLen = blake2b.SaltSize

	// MinOutputLen and MaxOutputLen bound the derived output, as in libsodium.
	MinOutputLen = 16
	MaxOutputLen = blake2b.Size
)

// Context is a purpose tag placed in the Blake2b personalization field.
type Context [ContextLen]byte

// NewContext zero-pads tag to ContextLen bytes. It panics if tag is longer.
func NewContext(tag string) Context {
	if len(tag) > ContextLen {
		panic(fmt.Sprintf("kdf: context %q exceeds %d bytes", tag, ContextLen))
	}
	var c Context
	copy(c[:], tag)
	return c
}

// Derive fills out with len(out) bytes derived from key under the given
// index and context. len(out) must be within MinOutputLen..MaxOutputLen.
//
// The salt scratch copy is zeroed. The hasher from
// github.com/dchest/blake2b keeps its own 128-byte padded copy of key, which
// it does not expose and which is left for the garbage collector.
func Derive(out []byte, index Index, context Context, key *[KeyLen]byte) error {
	if err := CheckLen(len(out)); err != nil {
		return err
	}

	salt := index.Salt()
	var person [blake2b.PersonSize]byte
	copy(person[:], context[:])
	defer memzero.Zero(salt[:])

	// The key is processed as a prefix block: 32 key bytes followed by 96 zeros.
	h, err := blake2b.New(&blake2b.Config{
		Size:   uint8(len(out)),
		Key:    key[:],
		Salt:   salt[:],
		Person: person[:],
	})
	if err != nil {
		// Only reachable with a broken config; lengths are checked above.
		return fmt.Errorf("kdf: blake2b init: %w", err)
	}
	// Empty message; Sum writes straight into out's backing array.
	sum := h.Sum(out[:0])
	if len(sum) != len(out) {
		return fmt.Errorf("kdf: unexpected digest length %d", len(sum))
	}
	return nil
}

// MustDerive is Derive for callers that treat a bad length as a programming error.
func MustDerive(out []byte, index Index, context Context, key *[KeyLen]byte) {
	if err := Derive(out, index, context, key); err != nil {
		panic(err)
	}
}
