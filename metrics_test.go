package vector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	v, err := New(WithCapacity(2), WithMetricsCollector(mc))
	require.NoError(t, err)
	defer v.Close()

	mustAdd(t, v, "b", "a")
	require.Error(t, v.Add(nil))
	require.NoError(t, v.Insert([]byte("c"), 1)) // triggers growth 2 -> 4
	require.NoError(t, v.Sort(bytes.Compare))

	elem := v.Delete(0)
	require.NotNil(t, elem)
	elem.Release()
	v.DeleteRange(0, 2)

	stats := mc.Stats()
	assert.Equal(t, int64(3), stats.AddCount)
	assert.Equal(t, int64(1), stats.AddErrors)
	assert.Equal(t, int64(1), stats.InsertCount)
	assert.Equal(t, int64(0), stats.InsertErrors)
	assert.Equal(t, int64(1), stats.DeleteCount)
	assert.Equal(t, int64(1), stats.DeleteRangeOps)
	assert.Equal(t, int64(3), stats.DeletedElements)
	assert.Equal(t, int64(1), stats.SortCount)
	assert.Equal(t, int64(1), stats.GrowCount)
	assert.Equal(t, int64(4), stats.MaxCapacity)
}

func TestNoopMetricsCollector(t *testing.T) {
	mc := NoopMetricsCollector{}
	mc.RecordAdd(nil)
	mc.RecordInsert(nil)
	mc.RecordDelete()
	mc.RecordDeleteRange(3)
	mc.RecordSort(2)
	mc.RecordGrow(2, 4)
}
