package secrettree

import (
	"crypto/rand"
	"fmt"
	"io"

	"secrettree/internal/kdf"
	"secrettree/internal/util/memzero"
)

// Purpose tags. Each derivation uses exactly one.
var (
	fillContext    = kdf.NewContext("bytes")
	rngContext     = kdf.NewContext("rng")
	nameContext    = kdf.NewContext("name")
	indexContext   = kdf.NewContext("index")
	digest0Context = kdf.NewContext("digest0")
	digest1Context = kdf.NewContext("digest1")
)

// DigestLen is the byte length of a digest accepted by Tree.Digest.
const DigestLen = 2 * kdf.SaltLen

const consumedPanic = "secrettree: use of consumed tree"

// Tree is a node of the secret hierarchy. It owns its seed exclusively and
// must not be copied after first use; go vet reports copies.
type Tree struct {
	noCopy   noCopy
	seed     Seed
	consumed bool
}

// noCopy lets go vet's copylocks check flag copies of the struct holding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New samples a seed from r, which must be a cryptographically secure source.
// A nil r means crypto/rand.Reader.
func New(r io.Reader) (*Tree, error) {
	if r == nil {
		r = rand.Reader
	}
	t := &Tree{}
	if _, err := io.ReadFull(r, t.seed[:]); err != nil {
		t.seed.Wipe()
		return nil, err
	}
	return t, nil
}

// FromSeed restores a tree from a persisted seed. The seed is copied; the
// caller remains responsible for wiping its own copy.
func FromSeed(seed *Seed) *Tree {
	return &Tree{seed: *seed}
}

// FromSlice is FromSeed for a byte slice. It fails unless len(b) == SeedLen.
func FromSlice(b []byte) (*Tree, error) {
	if len(b) != SeedLen {
		return nil, &LengthError{Len: len(b)}
	}
	t := &Tree{}
	copy(t.seed[:], b)
	return t, nil
}

// Seed exposes the seed for persistence. The returned value aliases the
// tree's seed and must be treated as read-only.
func (t *Tree) Seed() *Seed {
	t.mustLive()
	return &t.seed
}

// Child derives the child tree with the given name.
func (t *Tree) Child(name Name) *Tree {
	return t.derive(kdf.BytesIndex(name), nameContext)
}

// Index derives the child tree with the given index.
func (t *Tree) Index(i uint64) *Tree {
	return t.derive(kdf.NumberIndex(i), indexContext)
}

// Digest derives the child tree for a 32-byte digest, such as a SHA-256 hash.
// The salt field only holds 16 bytes, so the derivation runs in two passes:
// the first half of d salts an intermediate seed, the second half salts the
// child derived from it. Every bit of d affects the result.
func (t *Tree) Digest(d [DigestLen]byte) *Tree {
	var first, second [kdf.SaltLen]byte
	copy(first[:], d[:kdf.SaltLen])
	copy(second[:], d[kdf.SaltLen:])

	defer memzero.Zero(first[:])
	defer memzero.Zero(second[:])

	intermediate := t.derive(kdf.BytesIndex(first), digest0Context)
	defer intermediate.Close()
	return intermediate.derive(kdf.BytesIndex(second), digest1Context)
}

// Close zeroes the seed. The tree cannot be used afterwards. Close is
// idempotent and safe on a consumed tree.
func (t *Tree) Close() {
	if t == nil {
		return
	}
	t.seed.Wipe()
	t.consumed = true
}

// String never reveals the seed.
func (t *Tree) String() string { return "Tree(_)" }

// GoString never reveals the seed.
func (t *Tree) GoString() string { return t.String() }

// Format redacts the tree under every verb.
func (t *Tree) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte(t.String())) }

func (t *Tree) derive(index kdf.Index, context kdf.Context) *Tree {
	t.mustLive()
	child := &Tree{}
	kdf.MustDerive(child.seed[:], index, context, (*[kdf.KeyLen]byte)(&t.seed))
	return child
}

// consume derives into out and closes t regardless of the outcome.
func (t *Tree) consume(out []byte, context kdf.Context) error {
	t.mustLive()
	defer t.Close()
	return kdf.Derive(out, kdf.NoIndex(), context, (*[kdf.KeyLen]byte)(&t.seed))
}

func (t *Tree) mustLive() {
	if t == nil || t.consumed {
		panic(consumedPanic)
	}
}
