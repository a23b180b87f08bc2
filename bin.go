// Package dropbin implements a deferred-destruction container (drop bin).
// Typical usage: move values you no longer need into a shared bin on the
// hot path, then Clear() during an idle period to run their teardown in
// bulk, in insertion order, off the latency-sensitive path.
package dropbin

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/eapache/queue"
	"github.com/pkg/errors"
)

// Disposer is the erased capability the bin stores for every held value:
// run this value's teardown logic now. It is the only operation the bin
// ever performs on a value; the bin never reads, copies or otherwise
// inspects what it holds.
type Disposer interface {
	Dispose() error
}

// DisposeFunc adapts a plain function to the Disposer interface.
type DisposeFunc func() error

// Dispose calls f. A nil DisposeFunc disposes of nothing and returns nil.
func (f DisposeFunc) Dispose() error {
	if f == nil {
		return nil
	}
	return f()
}

// holder pairs one erased disposer with the approximate resident size of
// the value it owns. The size is recorded at insertion, where the concrete
// type is still known.
type holder struct {
	d    Disposer
	size int
}

// Bin is a concurrency-safe container of type-erased values awaiting
// destruction. Values enter through Add or the generic Put helpers and
// leave, all at once, through Clear or Close. A Bin must not be copied
// after first use; share it by pointer.
//
// The zero value is not usable; construct with New.
type Bin struct {
	mu       sync.Mutex
	seq      *queue.Queue // FIFO of holder
	size     int          // approximate resident bytes
	added    uint64
	disposed uint64
	clears   uint64
	closed   bool
}

// New creates an empty Bin.
//
// The bin carries a finalizer backstop: if it becomes unreachable without
// Close having been called, pending teardown still runs (with errors
// discarded) when the garbage collector finalizes it. Call Close for
// deterministic teardown and error reporting.
func New() *Bin {
	b := &Bin{seq: queue.New()}
	runtime.SetFinalizer(b, (*Bin).finalize)
	return b
}

// Add moves an already-erased disposer into the bin, appending it at the
// FIFO tail. No teardown runs here. Safe for concurrent use; never fails.
// Panics if the bin has been closed.
func (b *Bin) Add(d Disposer) {
	b.push(holder{d: d, size: int(unsafe.Sizeof(d))})
}

// push appends one holder under the bin's lock.
func (b *Bin) push(h holder) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("dropbin: use after Close()")
	}
	b.seq.Add(h)
	b.size += h.size
	b.added++
}

// Clear drains the bin: it detaches the entire current sequence as one
// snapshot (the bin is empty again immediately, O(1)), then runs each
// drained value's teardown in insertion order. Teardown runs on the
// calling goroutine, outside the bin's lock, so concurrent Add calls are
// never blocked by slow disposers.
//
// Values added concurrently while the snapshot drains belong to the next
// Clear. Concurrent Clear calls drain disjoint snapshots; every value is
// drained by exactly one of them.
//
// Clear returns nil unless some drained value's teardown failed; see the
// package documentation for the failure policy. Panics if the bin has
// been closed.
func (b *Bin) Clear() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		panic("dropbin: use after Close()")
	}
	b.clears++
	batch := b.detachLocked()
	b.mu.Unlock()

	return b.drain(batch)
}

// Close drains the bin like Clear, then marks it closed and removes the
// finalizer backstop. Close is idempotent; any later Add, Put or Clear
// panics. This is the terminal transition of the bin's lifecycle: after
// Close returns, every value ever added has had its teardown run exactly
// once.
func (b *Bin) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	batch := b.detachLocked()
	b.mu.Unlock()

	runtime.SetFinalizer(b, nil)
	return b.drain(batch)
}

// detachLocked swaps the whole sequence for a fresh empty one and returns
// the detached snapshot, or nil if there is nothing to drain. Caller must
// hold b.mu.
func (b *Bin) detachLocked() *queue.Queue {
	if b.seq.Length() == 0 {
		return nil
	}
	batch := b.seq
	b.seq = queue.New()
	b.size = 0
	return batch
}

// drain runs every holder in the detached snapshot, oldest first. Each
// holder's teardown is attempted regardless of earlier failures; the first
// failure is returned, annotated with the failure count when several
// occur.
func (b *Bin) drain(batch *queue.Queue) error {
	if batch == nil {
		return nil
	}

	var first error
	failed := 0
	n := 0
	for batch.Length() > 0 {
		h := batch.Remove().(holder)
		if err := dispose(h.d); err != nil {
			if first == nil {
				first = err
			}
			failed++
		}
		n++
	}

	b.mu.Lock()
	b.disposed += uint64(n)
	b.mu.Unlock()

	if failed > 1 {
		return errors.Wrapf(first, "dropbin: %d disposers failed, first failure", failed)
	}
	return first
}

// dispose runs one holder's teardown, converting a panic into an error so
// that one failing disposer cannot skip the rest of the batch.
func dispose(d Disposer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("dropbin: disposer panicked: %v", r)
		}
	}()
	if d == nil {
		return nil
	}
	return d.Dispose()
}

// finalize is the GC backstop for bins that become unreachable without
// Close: pending teardown must still run exactly once.
func (b *Bin) finalize() {
	_ = b.Close()
}
