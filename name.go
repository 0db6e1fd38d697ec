package secrettree

import (
	"bytes"
	"errors"
	"fmt"

	"secrettree/internal/kdf"
)

// MaxNameLen is the maximum byte length of a Name.
const MaxNameLen = kdf.SaltLen

var (
	// ErrNameTooLong is returned for names longer than MaxNameLen bytes.
	ErrNameTooLong = errors.New("name too long")
	// ErrNameNullChar is returned for names containing a zero byte.
	ErrNameNullChar = errors.New("name contains null char")
)

// Name identifies a child tree. It holds up to MaxNameLen bytes of a string
// without zero bytes, zero-padded to MaxNameLen.
type Name [MaxNameLen]byte

// NewName validates s and converts it to a Name.
func NewName(s string) (Name, error) {
	var n Name
	if err := validateName(s); err != nil {
		return n, err
	}
	copy(n[:], s)
	return n, nil
}

// MustName is NewName for names fixed at build time. It panics on invalid input.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func validateName(s string) error {
	if len(s) > MaxNameLen {
		return fmt.Errorf("%w: %d bytes, at most %d allowed", ErrNameTooLong, len(s), MaxNameLen)
	}
	if i := bytes.IndexByte([]byte(s), 0); i >= 0 {
		return fmt.Errorf("%w at byte %d", ErrNameNullChar, i)
	}
	return nil
}

// String recovers the string the name was built from.
func (n Name) String() string {
	end := bytes.IndexByte(n[:], 0)
	if end < 0 {
		end = len(n)
	}
	return string(n[:end])
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler with NewName's validation.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := NewName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
