package dropbin

import (
	"reflect"
	"testing"
	"unsafe"
)

// closeRecorder is an io.Closer that records how often it was closed.
type closeRecorder struct {
	closed int
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed++
	return c.err
}

func TestPut(t *testing.T) {
	b := New()
	defer b.Close()

	var got int
	Put(b, 42, func(v int) error {
		got = v
		return nil
	})

	if got != 0 {
		t.Error("teardown ran during Put")
	}
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got != 42 {
		t.Errorf("teardown received %d, want 42", got)
	}
}

func TestPutNilDispose(t *testing.T) {
	b := New()
	defer b.Close()

	Put[string](b, "orphan", nil)
	if err := b.Clear(); err != nil {
		t.Errorf("Clear() error = %v", err)
	}
	if b.TotalDisposed() != 1 {
		t.Errorf("TotalDisposed = %d, want 1", b.TotalDisposed())
	}
}

func TestPutFunc(t *testing.T) {
	b := New()
	defer b.Close()

	ran := 0
	PutFunc(b, func() error {
		ran++
		return nil
	})

	b.Clear()
	b.Clear()
	if ran != 1 {
		t.Errorf("deferred action ran %d times, want 1", ran)
	}
}

func TestPutCloser(t *testing.T) {
	b := New()
	defer b.Close()

	c := &closeRecorder{}
	PutCloser(b, c)

	if c.closed != 0 {
		t.Error("Close ran during PutCloser")
	}
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if c.closed != 1 {
		t.Errorf("Close ran %d times, want 1", c.closed)
	}
}

func TestPutSlice(t *testing.T) {
	b := New()
	defer b.Close()

	var order []int
	PutSlice(b, []int{1, 2, 3, 4}, func(v int) error {
		order = append(order, v)
		return nil
	})

	if b.Held() != 4 {
		t.Fatalf("Held = %d, want 4", b.Held())
	}
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(order, want) {
		t.Errorf("teardown order = %v, want %v", order, want)
	}
}

func TestPutSizeAccounting(t *testing.T) {
	b := New()
	defer b.Close()

	Put[int64](b, 7, nil)
	Put[[16]byte](b, [16]byte{}, nil)

	want := int(unsafe.Sizeof(int64(0))) + int(unsafe.Sizeof([16]byte{}))
	if b.SizeInUse() != want {
		t.Errorf("SizeInUse = %d, want %d", b.SizeInUse(), want)
	}

	b.Clear()
	if b.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Clear = %d, want 0", b.SizeInUse())
	}
}
