package dropbin

// Held returns the number of values currently resident in the bin.
// Values whose teardown is in flight on a detached batch are no longer
// counted.
func (b *Bin) Held() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seq.Length()
}

// SizeInUse returns the approximate number of resident bytes, summed from
// the shallow size of each inserted value. Heap memory reachable through
// pointers inside held values is not included.
func (b *Bin) SizeInUse() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// TotalAdded returns the number of values ever added to the bin.
func (b *Bin) TotalAdded() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.added
}

// TotalDisposed returns the number of values whose teardown has completed.
// It is updated once per drained batch, after the batch finishes.
func (b *Bin) TotalDisposed() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disposed
}

// Clears returns the number of Clear calls made against the bin,
// including calls that found nothing to drain.
func (b *Bin) Clears() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clears
}

// Metrics returns a consistent snapshot of bin statistics.
func (b *Bin) Metrics() BinMetrics {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BinMetrics{
		Held:          b.seq.Length(),
		SizeInUse:     b.size,
		TotalAdded:    b.added,
		TotalDisposed: b.disposed,
		Clears:        b.clears,
	}
}

// BinMetrics contains statistical information about a bin.
type BinMetrics struct {
	Held          int    // Values currently resident
	SizeInUse     int    // Approximate resident bytes (shallow sizes)
	TotalAdded    uint64 // Values ever added
	TotalDisposed uint64 // Values whose teardown has completed
	Clears        uint64 // Clear calls made
}

// Metrics passthroughs for Shared

// Held returns the number of values currently resident in the shared bin.
func (s *Shared) Held() int {
	return s.s.bin.Held()
}

// SizeInUse returns the approximate resident bytes of the shared bin.
func (s *Shared) SizeInUse() int {
	return s.s.bin.SizeInUse()
}

// TotalAdded returns the number of values ever added to the shared bin.
func (s *Shared) TotalAdded() uint64 {
	return s.s.bin.TotalAdded()
}

// TotalDisposed returns the number of values disposed by the shared bin.
func (s *Shared) TotalDisposed() uint64 {
	return s.s.bin.TotalDisposed()
}

// Clears returns the number of Clear calls made against the shared bin.
func (s *Shared) Clears() uint64 {
	return s.s.bin.Clears()
}

// Metrics returns a snapshot of the shared bin's statistics.
func (s *Shared) Metrics() BinMetrics {
	return s.s.bin.Metrics()
}
