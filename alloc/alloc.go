package alloc

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrBudgetExceeded is returned when an acquisition would exceed the
	// provider's byte limit.
	ErrBudgetExceeded = errors.New("alloc: budget exceeded")

	// ErrInvalidSize is returned when a non-positive number of bytes is
	// requested.
	ErrInvalidSize = errors.New("alloc: invalid size")
)

// Provider is the allocation capability used by the container for element
// buffers and backing storage.
//
// Acquire must be non-blocking: it either reserves the requested bytes
// immediately or fails. Release returns previously acquired bytes and must
// never block.
type Provider interface {
	// Acquire reserves n bytes. It returns an error if the reservation
	// cannot be satisfied, in which case no bytes are reserved.
	Acquire(n int) error

	// Release returns n previously acquired bytes. Releasing more than was
	// acquired is a caller bug; non-positive n is ignored.
	Release(n int)

	// InUse reports the number of bytes currently reserved.
	InUse() int64
}

// Compile time check to ensure System satisfies the Provider interface.
var _ Provider = (*System)(nil)

// System is an unbudgeted Provider. Acquire always succeeds for positive
// sizes; usage is tracked but never limited.
type System struct {
	used atomic.Int64
}

// NewSystem creates a new unbudgeted provider.
func NewSystem() *System {
	return &System{}
}

// Acquire implements Provider.
func (s *System) Acquire(n int) error {
	if n <= 0 {
		return ErrInvalidSize
	}
	s.used.Add(int64(n))
	return nil
}

// Release implements Provider.
func (s *System) Release(n int) {
	if n > 0 {
		s.used.Add(-int64(n))
	}
}

// InUse implements Provider.
func (s *System) InUse() int64 {
	return s.used.Load()
}

// Copy charges p for len(data) bytes and returns an owned copy of data.
// The caller is responsible for eventually returning the charge via
// p.Release(len(data)).
func Copy(p Provider, data []byte) ([]byte, error) {
	if err := p.Acquire(len(data)); err != nil {
		return nil, err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}
