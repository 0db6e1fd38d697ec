package secrettree

// Wiped reports whether t's seed has been zeroed.
func Wiped(t *Tree) bool { return t.seed == Seed{} }

// Consumed reports whether t can no longer be used.
func Consumed(t *Tree) bool { return t.consumed }

// FromLittleEndianOn runs the byte-order conversion as if on a host with the given endianness.
func FromLittleEndianOn[T Integer](s []T, littleEndianHost bool) { fromLittleEndian(s, littleEndianHost) }
