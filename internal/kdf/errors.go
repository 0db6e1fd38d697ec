package kdf

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall matches a FillError for an output shorter than MinOutputLen.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrBufferTooLarge matches a FillError for an output longer than MaxOutputLen.
	ErrBufferTooLarge = errors.New("buffer too large")
)

// FillReason tells which bound a FillError violated.
type FillReason uint8

const (
	// BufferTooSmall means Size < Limit (the minimum supported size).
	BufferTooSmall FillReason = iota + 1
	// BufferTooLarge means Size > Limit (the maximum supported size).
	BufferTooLarge
)

// FillError is returned when a derivation targets a buffer outside
// MinOutputLen..MaxOutputLen bytes.
type FillError struct {
	Reason FillReason
	// Size is the byte length of the rejected buffer.
	Size int
	// Limit is MinOutputLen for BufferTooSmall and MaxOutputLen for BufferTooLarge.
	Limit int
}

func (e *FillError) Error() string {
	switch e.Reason {
	case BufferTooSmall:
		return fmt.Sprintf("buffer too small: %d bytes, min supported size is %d", e.Size, e.Limit)
	case BufferTooLarge:
		return fmt.Sprintf("buffer too large: %d bytes, max supported size is %d", e.Size, e.Limit)
	default:
		return fmt.Sprintf("invalid buffer size: %d bytes", e.Size)
	}
}

// Is reports whether target is the sentinel for e's reason.
func (e *FillError) Is(target error) bool {
	switch target {
	case ErrBufferTooSmall:
		return e.Reason == BufferTooSmall
	case ErrBufferTooLarge:
		return e.Reason == BufferTooLarge
	}
	return false
}

// CheckLen validates an output length without deriving anything.
func CheckLen(n int) error {
	switch {
	case n < MinOutputLen:
		return &FillError{Reason: BufferTooSmall, Size: n, Limit: MinOutputLen}
	case n > MaxOutputLen:
		return &FillError{Reason: BufferTooLarge, Size: n, Limit: MaxOutputLen}
	}
	return nil
}
