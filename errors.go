package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned when an operation is invoked on a nil or
	// already-closed Vector, or when Sort is given a nil comparator.
	ErrInvalidHandle = errors.New("vector: invalid handle")

	// ErrInvalidElement is returned when Add or Insert is given nil or empty
	// element data. No element is created.
	ErrInvalidElement = errors.New("vector: element data must be non-empty")

	// ErrAllocation is returned when the allocation provider refuses a
	// reservation. The provider's error can be accessed via errors.Unwrap.
	// The operation has no effect on the Vector.
	ErrAllocation = errors.New("vector: allocation failed")
)

// ErrReserveOutOfRange indicates a Reserve target that does not exceed the
// current capacity. Reserving to a smaller-or-equal capacity is rejected,
// not treated as a no-op.
type ErrReserveOutOfRange struct {
	Requested int
	Capacity  int
}

func (e *ErrReserveOutOfRange) Error() string {
	return fmt.Sprintf("vector: reserve target %d does not exceed capacity %d", e.Requested, e.Capacity)
}
