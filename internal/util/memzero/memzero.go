// Package memzero provides best-effort wiping of secret material held in memory.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	// Keep b live until after the copy so the write is not elided.
	runtime.KeepAlive(&b)
}

// Array32 zeroes a fixed 32-byte array in place.
func Array32(a *[32]byte) {
	if a == nil {
		return
	}
	Zero(a[:])
}
