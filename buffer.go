package secrettree

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Integer is the set of fixed-width integer types a Buffer may hold.
// int, uint and uintptr are excluded: their width depends on the platform.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Buffer is fixed-size storage that Fill can write derived bytes into.
type Buffer interface {
	// Bytes returns the buffer's memory as a mutable byte slice.
	Bytes() []byte
	// FromLittleEndian converts every element from little-endian byte
	// order to the native one. It is a no-op on little-endian platforms.
	FromLittleEndian()
}

// Bytes is a Buffer over a plain byte slice.
type Bytes []byte

// Bytes returns b itself.
func (b Bytes) Bytes() []byte { return b }

// FromLittleEndian does nothing: single bytes have no byte order.
func (b Bytes) FromLittleEndian() {}

// Ints is a Buffer over a slice of fixed-width integers. Filling it gives each
// element the value of its derived bytes read as little-endian, on every
// platform. Fixed-size arrays are passed as slices: Ints[uint64](arr[:]).
type Ints[T Integer] []T

// Bytes reinterprets the elements' memory as bytes.
func (s Ints[T]) Bytes() []byte {
	if len(s) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(s[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*size)
}

// FromLittleEndian byte-swaps each element on big-endian platforms.
func (s Ints[T]) FromLittleEndian() { fromLittleEndian(s, nativeLittleEndian) }

var nativeLittleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

func fromLittleEndian[T Integer](s []T, littleEndianHost bool) {
	if littleEndianHost {
		return
	}
	for i, v := range s {
		s[i] = swapBytes(v)
	}
}

func swapBytes[T Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	case 8:
		return T(bits.ReverseBytes64(uint64(v)))
	default:
		return v
	}
}

var (
	_ Buffer = Bytes(nil)
	_ Buffer = Ints[uint64](nil)
)
