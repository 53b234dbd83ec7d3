package vector

import (
	"fmt"
	"sort"

	"github.com/PotatoMaster101/vector/alloc"
)

// DefaultCapacity is the initial slot capacity of a new Vector.
const DefaultCapacity = 10

// slotBytes is the reservation charged per backing slot. The backing storage
// is an array of element handles, so each slot costs one machine word.
const slotBytes = 8

// Vector is an owning, growable, index-addressable sequence of byte-blob
// elements. See the package documentation for ownership and clamping rules.
//
// The zero value is not usable; construct with New.
type Vector struct {
	slots    []*Element
	size     int
	provider alloc.Provider
	logger   *Logger
	metrics  MetricsCollector
	released bool
}

// New constructs an empty Vector with DefaultCapacity slots, charging the
// allocation provider for the backing storage. It fails with an error
// wrapping ErrAllocation if the reservation cannot be satisfied.
func New(optFns ...Option) (*Vector, error) {
	o := &options{
		capacity: DefaultCapacity,
		provider: alloc.NewSystem(),
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(o)
	}

	if err := o.provider.Acquire(o.capacity * slotBytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	return &Vector{
		slots:    make([]*Element, o.capacity),
		provider: o.provider,
		logger:   o.logger,
		metrics:  o.metrics,
	}, nil
}

// valid reports whether the Vector is live: non-nil, constructed via New and
// not yet closed.
func (v *Vector) valid() bool {
	return v != nil && !v.released && v.slots != nil
}

// Len returns the number of live elements. A nil or closed Vector has
// length 0.
func (v *Vector) Len() int {
	if !v.valid() {
		return 0
	}
	return v.size
}

// Cap returns the number of slots currently backing the sequence.
func (v *Vector) Cap() int {
	if !v.valid() {
		return 0
	}
	return len(v.slots)
}

// Get returns the element bytes at index. Unlike the mutating operations,
// reads are exact: ok is false for any out-of-range index.
//
// The returned slice is owned by the Vector and valid until the element is
// deleted or the Vector is cleared or closed.
func (v *Vector) Get(index int) ([]byte, bool) {
	if !v.valid() || index < 0 || index >= v.size {
		return nil, false
	}
	return v.slots[index].buf, true
}

// Reserve grows the backing storage to hold exactly n slots.
//
// The contract is strict: n must exceed the current capacity, otherwise
// *ErrReserveOutOfRange is returned and nothing changes. On allocation
// failure the Vector is left unmodified.
func (v *Vector) Reserve(n int) error {
	if !v.valid() {
		return ErrInvalidHandle
	}
	if n <= len(v.slots) {
		return &ErrReserveOutOfRange{Requested: n, Capacity: len(v.slots)}
	}
	return v.grow(n)
}

// Add copies data into a freshly allocated buffer and appends it as the new
// last element. It fails with ErrInvalidElement for nil or empty data and
// with an error wrapping ErrAllocation when the provider refuses the element
// copy or the capacity growth; in every failure case the Vector keeps its
// prior state.
func (v *Vector) Add(data []byte) error {
	if !v.valid() {
		return ErrInvalidHandle
	}
	index := v.size
	err := v.add(data)
	v.metrics.RecordAdd(err)
	v.logger.LogAdd(index, len(data), err)
	return err
}

func (v *Vector) add(data []byte) error {
	if len(data) == 0 {
		return ErrInvalidElement
	}
	elem, err := v.newElement(data)
	if err != nil {
		return err
	}
	if err := v.ensureSlot(); err != nil {
		elem.Release()
		return err
	}
	v.slots[v.size] = elem
	v.size++
	return nil
}

// Insert copies data into a freshly allocated buffer and stores it at index,
// shifting the elements at and after index one slot to the right. An index
// outside [0, Len()) clamps to append, making Insert behave exactly like
// Add. Error cases match Add.
func (v *Vector) Insert(data []byte, index int) error {
	if !v.valid() {
		return ErrInvalidHandle
	}
	if index < 0 || index >= v.size {
		// Clamp-to-append policy for out-of-range indices.
		index = v.size
		err := v.add(data)
		v.metrics.RecordInsert(err)
		v.logger.LogAdd(index, len(data), err)
		return err
	}
	err := v.insert(data, index)
	v.metrics.RecordInsert(err)
	v.logger.LogAdd(index, len(data), err)
	return err
}

func (v *Vector) insert(data []byte, index int) error {
	if len(data) == 0 {
		return ErrInvalidElement
	}
	elem, err := v.newElement(data)
	if err != nil {
		return err
	}
	if err := v.ensureSlot(); err != nil {
		elem.Release()
		return err
	}
	copy(v.slots[index+1:v.size+1], v.slots[index:v.size])
	v.slots[index] = elem
	v.size++
	return nil
}

// Delete removes the element at index and transfers its ownership to the
// caller, who must eventually call Release on it. An index outside
// [0, Len()) clamps to the last element. The elements after the removed slot
// shift left to close the gap.
//
// Delete returns nil, not an error, when the Vector is nil, closed or empty.
func (v *Vector) Delete(index int) *Element {
	if !v.valid() || v.size == 0 {
		return nil
	}
	if index < 0 || index >= v.size {
		// Clamp-to-last policy for out-of-range indices.
		index = v.size - 1
	}
	elem := v.slots[index]
	copy(v.slots[index:v.size-1], v.slots[index+1:v.size])
	v.size--
	v.slots[v.size] = nil
	v.metrics.RecordDelete()
	v.logger.LogDelete(index, v.size)
	return elem
}

// DeleteRange removes up to count elements starting at index, destroying
// each removed element. Unlike Delete, the caller receives nothing. The
// start index clamps to the last element when out of range; count clamps to
// the elements available from index to the end. No-op when count is not
// positive or the Vector is nil, closed or empty.
func (v *Vector) DeleteRange(index, count int) {
	if !v.valid() || count <= 0 || v.size == 0 {
		return
	}
	if index < 0 || index >= v.size {
		index = v.size - 1
	}
	if count > v.size-index {
		count = v.size - index
	}
	for i := index; i < index+count; i++ {
		v.slots[i].Release()
	}
	copy(v.slots[index:], v.slots[index+count:v.size])
	for i := v.size - count; i < v.size; i++ {
		v.slots[i] = nil // Drop the stale handle
	}
	v.size -= count
	v.metrics.RecordDeleteRange(count)
}

// Reverse reverses the element order in place by swapping slot handles
// pairwise from both ends. No allocation, no copying of element contents.
// No-op on a nil or closed Vector.
func (v *Vector) Reverse() {
	if !v.valid() {
		return
	}
	for i := 0; i < v.size/2; i++ {
		v.slots[i], v.slots[v.size-i-1] = v.slots[v.size-i-1], v.slots[i]
	}
}

// Sort reorders the elements according to cmp, a three-way comparator over
// element bytes (negative when a sorts before b). The sort is not stable.
// It fails with ErrInvalidHandle when the Vector is nil or closed, or when
// cmp is nil. Sorting an empty Vector succeeds as a no-op.
func (v *Vector) Sort(cmp func(a, b []byte) int) error {
	if !v.valid() || cmp == nil {
		return ErrInvalidHandle
	}
	if v.size == 0 {
		return nil
	}
	live := v.slots[:v.size]
	sort.Slice(live, func(i, j int) bool {
		return cmp(live[i].buf, live[j].buf) < 0
	})
	v.metrics.RecordSort(v.size)
	return nil
}

// Clear destroys every owned element and resets the length to 0. The
// capacity and backing storage are retained for reuse. No-op on a nil or
// closed Vector.
func (v *Vector) Clear() {
	if !v.valid() {
		return
	}
	for i := 0; i < v.size; i++ {
		v.slots[i].Release()
		v.slots[i] = nil
	}
	v.size = 0
}

// Close destroys every owned element, returns the backing storage
// reservation to the provider and leaves the Vector in a terminal released
// state. Every subsequent operation treats the Vector as invalid.
// Close is idempotent and returns nil on an already-released Vector.
func (v *Vector) Close() error {
	if !v.valid() {
		return nil
	}
	for i := 0; i < v.size; i++ {
		v.slots[i].Release()
		v.slots[i] = nil
	}
	v.size = 0
	v.provider.Release(len(v.slots) * slotBytes)
	v.slots = nil
	v.released = true
	return nil
}

// newElement charges the provider for len(data) bytes and wraps an owned
// copy of data.
func (v *Vector) newElement(data []byte) (*Element, error) {
	buf, err := alloc.Copy(v.provider, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return &Element{buf: buf, provider: v.provider}, nil
}

// ensureSlot guarantees room for one more element, doubling the backing
// storage when full.
func (v *Vector) ensureSlot() error {
	if v.size < len(v.slots) {
		return nil
	}
	return v.grow(2 * len(v.slots))
}

// grow extends the backing storage to newCap slots, charging the provider
// for the additional slots before the new slot array is published. On
// failure the Vector is unchanged.
func (v *Vector) grow(newCap int) error {
	oldCap := len(v.slots)
	if err := v.provider.Acquire((newCap - oldCap) * slotBytes); err != nil {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	slots := make([]*Element, newCap)
	copy(slots, v.slots)
	v.slots = slots
	v.logger.LogGrow(oldCap, newCap)
	v.metrics.RecordGrow(oldCap, newCap)
	return nil
}
