package fixedarray

// Metrics returns a snapshot of the array's storage statistics.
func (a *FixedArray[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Size:          a.Size(),
		Capacity:      a.Capacity(),
		Reallocations: a.Reallocations(),
		Generation:    a.gen,
	}
}

// Capacity returns the capacity of the owned buffer. It always equals Size;
// it is exposed so the invariant can be checked from outside the package.
func (a *FixedArray[T]) Capacity() int {
	return cap(a.buf)
}

// Reallocations returns how many buffers assignment (CopyFrom, Assign) has
// allocated over the array's lifetime. MoveFrom adopts a buffer and does not
// count.
func (a *FixedArray[T]) Reallocations() int {
	return a.reallocs
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Size          int    // Number of elements
	Capacity      int    // Capacity of the owned buffer
	Reallocations int    // Buffers allocated by assignment
	Generation    uint64 // Buffer identity; changes when the buffer is replaced
}
