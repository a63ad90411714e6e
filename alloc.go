package fixedarray

// allocate returns a buffer of exactly n elements holding T's zero value.
// A zero-length request returns nil: an empty array never owns a buffer.
// Panics if n is negative.
func allocate[T any](n int) []T {
	if n < 0 {
		panic("fixedarray: negative size")
	}
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

// allocateFilled returns a buffer of n copies of value.
func allocateFilled[T any](n int, value T) []T {
	buf := allocate[T](n)
	for i := range buf {
		buf[i] = value
	}
	return buf
}

// cloneBuffer returns an independent buffer with the same elements as src.
// The result always has cap == len, unlike append-based cloning which may
// round the capacity up to a size class.
func cloneBuffer[T any](src []T) []T {
	buf := allocate[T](len(src))
	copy(buf, src)
	return buf
}

// replace publishes buf as the array's buffer. The previous buffer is dropped
// and every cursor taken before the call becomes invalid.
func (a *FixedArray[T]) replace(buf []T) {
	a.buf = buf
	a.gen++
}

// overwrite copies src into the array, reusing the current buffer when the
// sizes match and allocating a new one otherwise. The new buffer is fully
// populated before it replaces the old one.
func (a *FixedArray[T]) overwrite(src []T) {
	if len(src) == len(a.buf) {
		copy(a.buf, src)
		return
	}
	a.reallocs++
	a.replace(cloneBuffer(src))
}
