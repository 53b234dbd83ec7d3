package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PotatoMaster101/vector/alloc"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusGood, StatusOf(nil))
	assert.Equal(t, StatusInvalidHandle, StatusOf(ErrInvalidHandle))
	assert.Equal(t, StatusOutOfRange, StatusOf(&ErrReserveOutOfRange{Requested: 1, Capacity: 10}))
	assert.Equal(t, StatusAllocFailure, StatusOf(ErrInvalidElement))
	assert.Equal(t, StatusAllocFailure, StatusOf(fmt.Errorf("%w: %w", ErrAllocation, alloc.ErrBudgetExceeded)))
}

func TestStatusOf_FromOperations(t *testing.T) {
	v, err := New(WithProvider(alloc.Budget(DefaultCapacity*slotBytes + 1)))
	require.NoError(t, err)
	defer v.Close()

	assert.Equal(t, StatusGood, StatusOf(v.Add([]byte("a"))))
	assert.Equal(t, StatusAllocFailure, StatusOf(v.Add([]byte("over"))))
	assert.Equal(t, StatusAllocFailure, StatusOf(v.Add(nil)))
	assert.Equal(t, StatusOutOfRange, StatusOf(v.Reserve(1)))

	require.NoError(t, v.Close())
	assert.Equal(t, StatusInvalidHandle, StatusOf(v.Add([]byte("a"))))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "good", StatusGood.String())
	assert.Equal(t, "allocation failure", StatusAllocFailure.String())
	assert.Equal(t, "invalid handle", StatusInvalidHandle.String())
	assert.Equal(t, "out of range", StatusOutOfRange.String())
	assert.Equal(t, "unknown", Status(42).String())
}
