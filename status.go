package vector

import "errors"

// Status is a numeric operation result from a small closed set, for callers
// that prefer the classic integer-code surface over Go errors. The values
// are stable.
type Status int

const (
	// StatusGood indicates success.
	StatusGood Status = 0
	// StatusAllocFailure indicates a refused allocation, or invalid element
	// data (no buffer could be created from it).
	StatusAllocFailure Status = 1
	// StatusInvalidHandle indicates an operation on a nil or closed Vector,
	// or a Sort without a comparator.
	StatusInvalidHandle Status = 2
	// StatusOutOfRange indicates a Reserve target not exceeding the current
	// capacity.
	StatusOutOfRange Status = 3
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusGood:
		return "good"
	case StatusAllocFailure:
		return "allocation failure"
	case StatusInvalidHandle:
		return "invalid handle"
	case StatusOutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by this package onto its Status code.
// A nil error maps to StatusGood; errors not produced by this package map
// to StatusAllocFailure.
func StatusOf(err error) Status {
	if err == nil {
		return StatusGood
	}
	if errors.Is(err, ErrInvalidHandle) {
		return StatusInvalidHandle
	}
	var reserveErr *ErrReserveOutOfRange
	if errors.As(err, &reserveErr) {
		return StatusOutOfRange
	}
	return StatusAllocFailure
}
