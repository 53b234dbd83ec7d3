package alloc

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Compile time check to ensure BudgetProvider satisfies the Provider interface.
var _ Provider = (*BudgetProvider)(nil)

// BudgetProvider is a Provider with a hard byte limit.
//
// Acquisition is non-blocking: a reservation that would exceed the limit
// fails immediately with ErrBudgetExceeded instead of waiting for bytes to
// be released.
type BudgetProvider struct {
	limit int64
	sem   *semaphore.Weighted
	used  atomic.Int64
}

// Budget creates a Provider that refuses reservations beyond limit bytes.
func Budget(limit int64) *BudgetProvider {
	if limit <= 0 {
		limit = 1
	}
	return &BudgetProvider{
		limit: limit,
		sem:   semaphore.NewWeighted(limit),
	}
}

// Acquire implements Provider.
func (b *BudgetProvider) Acquire(n int) error {
	if n <= 0 {
		return ErrInvalidSize
	}
	if !b.sem.TryAcquire(int64(n)) {
		return ErrBudgetExceeded
	}
	b.used.Add(int64(n))
	return nil
}

// Release implements Provider.
func (b *BudgetProvider) Release(n int) {
	if n <= 0 {
		return
	}
	b.sem.Release(int64(n))
	b.used.Add(-int64(n))
}

// InUse implements Provider.
func (b *BudgetProvider) InUse() int64 {
	return b.used.Load()
}

// Limit reports the configured byte limit.
func (b *BudgetProvider) Limit() int64 {
	return b.limit
}
