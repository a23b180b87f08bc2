// Package dropbin implements a deferred-destruction container (a "drop bin") for Go.
//
// # Overview
//
// A drop bin is a holding area for values whose teardown is expensive and
// can be postponed. Callers move ownership of arbitrary, mutually unrelated
// values into the bin on a latency-sensitive path, then run all of the
// pending teardown in bulk at a moment of their choosing. This is
// particularly useful for:
//
//   - Deferring expensive cleanup out of request hot paths
//   - Batching resource teardown into idle periods
//   - Releasing memory-heavy values when a pressure monitor decides to
//   - Collecting io.Closers whose Close calls should not block producers
//
// # Basic Usage
//
//	bin := dropbin.New()
//	defer bin.Close() // Tear down whatever is still held
//
//	// Move a typed value and its teardown into the bin
//	dropbin.Put(bin, conn, func(c *Conn) error { return c.Shutdown() })
//
//	// Hold an io.Closer
//	dropbin.PutCloser(bin, file)
//
//	// Defer a bare action
//	dropbin.PutFunc(bin, cache.Flush)
//
//	// Later, outside the hot path: run all pending teardown (FIFO)
//	if err := bin.Clear(); err != nil {
//		log.Print(err)
//	}
//
// # Thread Safety
//
// A Bin is safe for concurrent use without external coordination. Add and
// Clear may be called from any number of goroutines; the bin serializes
// appends internally and Clear detaches a consistent snapshot under the
// same lock. Teardown itself runs after the lock is released, so slow
// disposers never block concurrent Add calls. Values added while a batch
// is draining land in the next batch.
//
// To share one bin between unrelated subsystems with a well-defined
// lifetime, use the reference-counted Shared handle:
//
//	shared := dropbin.NewShared()
//	handle := shared.Retain() // hand to another subsystem
//	...
//	handle.Release() // the final Release closes the bin
//
// # Ownership and Ordering
//
// After Put returns, the bin is the sole owner of the value: the caller
// must not retain or use it. Each value's teardown runs exactly once,
// either during some Clear call or during Close. Teardown order within a
// batch is insertion order (FIFO, oldest first); this is a documented
// policy of this package, not a universal property of drop bins.
//
// # Error Handling
//
// A disposer that returns an error or panics is a disposer failure.
// Draining always attempts every value in the batch regardless of earlier
// failures; Clear and Close report the first failure, annotated with the
// failure count when several occur. Add and Put cannot fail.
//
// # Important Notes
//
//   - The bin grows without bound; bounding memory is the caller's job
//     via timely Clear calls
//   - Add, Put and Clear panic after Close ("use after Close()")
//   - A bin garbage-collected without Close still runs its teardown via a
//     finalizer backstop, but relying on it forfeits error reporting
//
// # Metrics and Monitoring
//
// The bin tracks counters useful for deciding when to Clear:
//
//	metrics := bin.Metrics()
//	fmt.Printf("Held: %d values\n", metrics.Held)
//	fmt.Printf("Resident: ~%d bytes\n", metrics.SizeInUse)
//	fmt.Printf("Disposed so far: %d\n", metrics.TotalDisposed)
package dropbin
