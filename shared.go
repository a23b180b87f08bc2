package dropbin

import (
	"io"
	"sync/atomic"
)

// Shared is a reference-counted handle to a Bin, for the case where one
// bin is deliberately shared between many unrelated parts of a program.
// Each subsystem holds its own handle (obtained with Retain) and calls
// Release when done; the final Release closes the underlying bin, so the
// teardown-on-destruction guarantee stays well-defined without resorting
// to an ambient singleton.
type Shared struct {
	s *sharedState
}

// sharedState is the one object all handles point at.
type sharedState struct {
	bin  *Bin
	refs atomic.Int64
}

// NewShared creates a new bin wrapped in a Shared handle with a reference
// count of one.
func NewShared() *Shared {
	st := &sharedState{bin: New()}
	st.refs.Store(1)
	return &Shared{s: st}
}

// Retain returns a new handle to the same bin, incrementing the reference
// count. Panics if the bin has already been released by all handles.
func (s *Shared) Retain() *Shared {
	if s.s.refs.Add(1) <= 1 {
		panic("dropbin: Retain on released handle")
	}
	return &Shared{s: s.s}
}

// Release drops one reference. The final Release closes the underlying
// bin, running the teardown of everything still held, and returns Close's
// error; earlier Releases return nil. Panics if called more times than
// there were handles.
func (s *Shared) Release() error {
	refs := s.s.refs.Add(-1)
	if refs < 0 {
		panic("dropbin: Release of released handle")
	}
	if refs == 0 {
		return s.s.bin.Close()
	}
	return nil
}

// Refs returns the current reference count. Intended for tests and
// diagnostics; the count may change concurrently.
func (s *Shared) Refs() int {
	return int(s.s.refs.Load())
}

// Bin returns the underlying bin for direct use with the generic Put
// helpers. The bin stays valid until the final Release.
func (s *Shared) Bin() *Bin {
	return s.s.bin
}

// Add appends an erased disposer to the shared bin.
func (s *Shared) Add(d Disposer) {
	s.s.bin.Add(d)
}

// Clear drains the shared bin; see Bin.Clear.
func (s *Shared) Clear() error {
	return s.s.bin.Clear()
}

// Generic insertion functions for Shared

// SharedPut moves value and its teardown into the shared bin.
func SharedPut[T any](s *Shared, value T, dispose func(T) error) {
	Put(s.s.bin, value, dispose)
}

// SharedPutFunc defers a bare teardown action on the shared bin.
func SharedPutFunc(s *Shared, dispose func() error) {
	PutFunc(s.s.bin, dispose)
}

// SharedPutCloser moves an io.Closer into the shared bin.
func SharedPutCloser[C io.Closer](s *Shared, c C) {
	PutCloser(s.s.bin, c)
}

// SharedPutSlice moves each element of values into the shared bin.
func SharedPutSlice[T any](s *Shared, values []T, dispose func(T) error) {
	PutSlice(s.s.bin, values, dispose)
}
