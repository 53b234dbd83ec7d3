// Package alloc provides the allocation-provider capability backing the
// vector container.
//
// The container never allocates element or backing storage directly; every
// byte is charged to a Provider first. This makes allocation failure a real,
// observable outcome instead of a theoretical one:
//
//   - System is the unbudgeted provider. Acquisition always succeeds and
//     usage is only tracked.
//   - Budget enforces a hard byte limit. Acquisition is non-blocking and
//     fails immediately with ErrBudgetExceeded when the limit would be
//     exceeded.
//
// Providers only account for memory; the buffers themselves come from the Go
// runtime allocator and are reclaimed by the garbage collector once released.
package alloc
