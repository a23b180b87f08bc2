package dropbin

import (
	"io"
	"unsafe"
)

// Put moves value into the bin together with its teardown logic. The
// erasure happens here, where T is still known: the pair is wrapped into a
// Disposer and the bin stores it through that narrow interface alone, so
// the bin works for any type without ever naming it.
//
// After Put returns the bin is the sole owner of value; the caller must
// not use it again. dispose may be nil, in which case the value is simply
// released on drain.
func Put[T any](b *Bin, value T, dispose func(T) error) {
	b.push(holder{
		d: DisposeFunc(func() error {
			if dispose == nil {
				return nil
			}
			return dispose(value)
		}),
		size: int(unsafe.Sizeof(value)),
	})
}

// PutFunc defers a bare teardown action with no associated value.
func PutFunc(b *Bin, dispose func() error) {
	b.push(holder{d: DisposeFunc(dispose), size: int(unsafe.Sizeof(dispose))})
}

// PutCloser moves an io.Closer into the bin; its teardown is Close.
func PutCloser[C io.Closer](b *Bin, c C) {
	b.push(holder{d: DisposeFunc(c.Close), size: int(unsafe.Sizeof(c))})
}

// PutSlice moves each element of values into the bin as its own holder,
// sharing one teardown function. Element order is preserved, so a later
// Clear tears the elements down in slice order.
func PutSlice[T any](b *Bin, values []T, dispose func(T) error) {
	for _, v := range values {
		Put(b, v, dispose)
	}
}
