package vector

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each Add operation on a live Vector.
	// err is nil if successful.
	RecordAdd(err error)

	// RecordInsert is called after each Insert operation on a live Vector.
	// err is nil if successful.
	RecordInsert(err error)

	// RecordDelete is called after each successful single-element Delete.
	RecordDelete()

	// RecordDeleteRange is called after each DeleteRange that removed at
	// least one element. removed is the number of elements destroyed.
	RecordDeleteRange(removed int)

	// RecordSort is called after each successful Sort. n is the number of
	// elements ordered.
	RecordSort(n int)

	// RecordGrow is called after each backing storage growth, including
	// explicit Reserve calls.
	RecordGrow(oldCap, newCap int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(error)       {}
func (NoopMetricsCollector) RecordInsert(error)    {}
func (NoopMetricsCollector) RecordDelete()         {}
func (NoopMetricsCollector) RecordDeleteRange(int) {}
func (NoopMetricsCollector) RecordSort(int)        {}
func (NoopMetricsCollector) RecordGrow(int, int)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount        atomic.Int64
	AddErrors       atomic.Int64
	InsertCount     atomic.Int64
	InsertErrors    atomic.Int64
	DeleteCount     atomic.Int64
	DeleteRangeOps  atomic.Int64
	DeletedElements atomic.Int64
	SortCount       atomic.Int64
	GrowCount       atomic.Int64
	MaxCapacity     atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(err error) {
	b.AddCount.Add(1)
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(err error) {
	b.InsertCount.Add(1)
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete() {
	b.DeleteCount.Add(1)
	b.DeletedElements.Add(1)
}

// RecordDeleteRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDeleteRange(removed int) {
	b.DeleteRangeOps.Add(1)
	b.DeletedElements.Add(int64(removed))
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(int) {
	b.SortCount.Add(1)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, newCap int) {
	b.GrowCount.Add(1)
	if int64(newCap) > b.MaxCapacity.Load() {
		b.MaxCapacity.Store(int64(newCap))
	}
}

// Stats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:        b.AddCount.Load(),
		AddErrors:       b.AddErrors.Load(),
		InsertCount:     b.InsertCount.Load(),
		InsertErrors:    b.InsertErrors.Load(),
		DeleteCount:     b.DeleteCount.Load(),
		DeleteRangeOps:  b.DeleteRangeOps.Load(),
		DeletedElements: b.DeletedElements.Load(),
		SortCount:       b.SortCount.Load(),
		GrowCount:       b.GrowCount.Load(),
		MaxCapacity:     b.MaxCapacity.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount        int64
	AddErrors       int64
	InsertCount     int64
	InsertErrors    int64
	DeleteCount     int64
	DeleteRangeOps  int64
	DeletedElements int64
	SortCount       int64
	GrowCount       int64
	MaxCapacity     int64
}
