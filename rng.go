package secrettree

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"secrettree/internal/util/memzero"
)

// RNG is a ChaCha20 CSPRNG seeded from a tree. It implements io.Reader and
// the math/rand/v2 Source interface.
//
// The cipher state lives inside golang.org/x/crypto/chacha20 and is not
// zeroed when the RNG is dropped. Prefer Fill or CreateSecret when a
// fixed-size secret is enough.
//
// The keystream ends after MaxRNGBytes; reading past that point panics.
type RNG struct {
	cipher *chacha20.Cipher
}

// MaxRNGBytes is the keystream length of one RNG: 2^32 ChaCha20 blocks of
// 64 bytes each.
const MaxRNGBytes = 1 << 38

// RNG converts t into a CSPRNG and consumes t.
func (t *Tree) RNG() *RNG {
	var seed [chacha20.KeySize]byte
	defer memzero.Zero(seed[:])
	if err := t.consume(seed[:], rngContext); err != nil {
		panic(err)
	}

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return &RNG{cipher: c}
}

// Read fills p with keystream bytes. It never fails.
func (r *RNG) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Uint64 returns the next 8 keystream bytes as a little-endian integer.
func (r *RNG) Uint64() uint64 {
	var b [8]byte
	_, _ = r.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Uint32 returns the next 4 keystream bytes as a little-endian integer.
func (r *RNG) Uint32() uint32 {
	var b [4]byte
	_, _ = r.Read(b[:])
	return binary.LittleEndian.Uint32(b[:])
}
