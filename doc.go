// Package vector provides an owning, growable, index-addressable sequence of
// opaque byte-blob elements.
//
// Every element is copied in on Add/Insert and stored as an independently
// allocated buffer that the Vector owns exclusively. Delete hands ownership of
// the removed element back to the caller; DeleteRange, Clear and Close destroy
// elements in place. All allocation goes through an alloc.Provider, so
// allocation failure is a real, testable outcome and every failed operation
// leaves the Vector in its prior valid state.
//
// # Quick Start
//
//	v, err := vector.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer v.Close()
//
//	_ = v.Add([]byte("a"))
//	_ = v.Add([]byte("b"))
//	_ = v.Insert([]byte("x"), 1) // [a x b]
//
//	if e := v.Delete(0); e != nil {
//	    fmt.Println(string(e.Bytes())) // "a"
//	    e.Release()
//	}
//
// # Clamping Semantics
//
// Out-of-range indices on the mutating operations are clamped, not rejected.
// This is deliberate, observable behavior. It is not what most container
// libraries do, so read carefully:
//
//   - Insert with an index outside [0, Len()) appends, exactly like Add.
//   - Delete with an index outside [0, Len()) removes the last element.
//   - DeleteRange clamps its start index to the last element and its count to
//     the available tail.
//
// Reads are exact: Get returns ok == false for any out-of-range index.
//
// # Memory Budgets
//
// By default a Vector uses the unbudgeted alloc.System provider. Pass a
// bounded provider to make allocation failure enforceable:
//
//	v, _ := vector.New(vector.WithProvider(alloc.Budget(1024)))
//
// When the budget is exhausted, Add, Insert and Reserve fail with an error
// wrapping ErrAllocation and the Vector is left unchanged.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. It models a single-owner local
// data structure; callers needing shared access must synchronize externally.
package vector
