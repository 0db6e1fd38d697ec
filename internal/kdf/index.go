package kdf

import "encoding/binary"

type indexKind uint8

const (
	indexNone indexKind = iota
	indexNumber
	indexBytes
)

// Index selects the salt of a derivation.
//
// The zero value is the "no salt" index.
type Index struct {
	kind   indexKind
	number uint64
	bytes  [SaltLen]byte
}

// NoIndex is used by derivations that do not branch the tree.
func NoIndex() Index { return Index{} }

// NumberIndex encodes n little-endian into the first 8 salt bytes.
func NumberIndex(n uint64) Index { return Index{kind: indexNumber, number: n} }

// BytesIndex uses b verbatim as the salt.
func BytesIndex(b [SaltLen]byte) Index { return Index{kind: indexBytes, bytes: b} }

// Salt returns the 16-byte salt for this index.
func (i Index) Salt() [SaltLen]byte {
	var salt [SaltLen]byte
	switch i.kind {
	case indexNumber:
		binary.LittleEndian.PutUint64(salt[:8], i.number)
	case indexBytes:
		salt = i.bytes
	}
	return salt
}
