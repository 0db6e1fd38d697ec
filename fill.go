package secrettree

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"secrettree/internal/kdf"
	"secrettree/internal/util/memzero"
)

// FillError is returned by TryFill and TryCreateSecret for buffers outside
// MinFillLen..MaxFillLen bytes.
type FillError = kdf.FillError

// Fill bounds and the sentinels matched by errors.Is on a *FillError.
const (
	MinFillLen = kdf.MinOutputLen
	MaxFillLen = kdf.MaxOutputLen
)

var (
	ErrBufferTooSmall = kdf.ErrBufferTooSmall
	ErrBufferTooLarge = kdf.ErrBufferTooLarge
)

// Fill writes a key derived from t into buf and consumes t. The buffer must
// span MinFillLen..MaxFillLen bytes; Fill panics otherwise.
//
// Prefer Fill over RNG whenever the secret has a fixed size: the buffer is
// the only copy of the secret and the caller controls its lifetime.
func (t *Tree) Fill(buf Buffer) {
	if err := t.TryFill(buf); err != nil {
		panic(err)
	}
}

// TryFill is Fill returning a *FillError instead of panicking. t is consumed
// even when an error is returned.
func (t *Tree) TryFill(buf Buffer) error {
	if err := t.consume(buf.Bytes(), fillContext); err != nil {
		return err
	}
	buf.FromLittleEndian()
	return nil
}

// Secret holds a derived value. It redacts itself when formatted or
// marshalled; use Expose to read it and Destroy when done.
type Secret[T Integer] struct {
	value []T
}

// CreateSecret allocates n zeroed elements of T, fills them from t and
// consumes t. It panics unless n elements span MinFillLen..MaxFillLen bytes.
func CreateSecret[T Integer](t *Tree, n int) *Secret[T] {
	s, err := TryCreateSecret[T](t, n)
	if err != nil {
		panic(err)
	}
	return s
}

// TryCreateSecret is CreateSecret returning a *FillError instead of panicking.
func TryCreateSecret[T Integer](t *Tree, n int) (*Secret[T], error) {
	if n < 0 {
		n = 0
	}
	s := &Secret[T]{value: make([]T, n)}
	if err := t.TryFill(Ints[T](s.value)); err != nil {
		s.Destroy()
		return nil, err
	}
	return s, nil
}

// Expose returns the secret value. The slice aliases the secret's storage.
func (s *Secret[T]) Expose() []T { return s.value }

// Len returns the number of elements.
func (s *Secret[T]) Len() int { return len(s.value) }

// Destroy zeroes the value.
func (s *Secret[T]) Destroy() {
	if s == nil || len(s.value) == 0 {
		return
	}
	memzero.Zero(Ints[T](s.value).Bytes())
}

// String never reveals the value.
func (s *Secret[T]) String() string {
	var zero T
	return fmt.Sprintf("Secret[%d x %d bytes](_)", len(s.value), unsafe.Sizeof(zero))
}

// GoString never reveals the value.
func (s *Secret[T]) GoString() string { return s.String() }

// Format redacts the value under every verb.
func (s *Secret[T]) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte(s.String())) }

// MarshalJSON emits a placeholder instead of the value.
func (s *Secret[T]) MarshalJSON() ([]byte, error) { return json.Marshal("[REDACTED]") }
