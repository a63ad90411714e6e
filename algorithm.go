package fixedarray

// Reader is satisfied by every cursor kind: it yields the element under the
// cursor and steps to the next position in its traversal direction.
type Reader[T, C any] interface {
	Value() T
	Next() C
	Equal(C) bool
}

// Writer is satisfied by the mutable cursor kinds, Iterator and
// ReverseIterator.
type Writer[T, C any] interface {
	Set(T)
	Next() C
	Equal(C) bool
}

// Fill stores value in every position of [first, last).
func Fill[T any, C Writer[T, C]](first, last C, value T) {
	for it := first; !it.Equal(last); it = it.Next() {
		it.Set(value)
	}
}

// Copy copies [first, last) to the range starting at dst and returns the
// cursor one past the last element written. The destination must hold at
// least as many elements as the source range.
func Copy[T any, R Reader[T, R], W Writer[T, W]](first, last R, dst W) W {
	for it := first; !it.Equal(last); it = it.Next() {
		dst.Set(it.Value())
		dst = dst.Next()
	}
	return dst
}

// EqualRange reports whether [first1, last1) matches the range of the same
// length starting at first2. The scan stops at the first mismatch.
func EqualRange[T comparable, R1 Reader[T, R1], R2 Reader[T, R2]](first1, last1 R1, first2 R2) bool {
	return EqualRangeFunc(first1, last1, first2, func(x, y T) bool { return x == y })
}

// EqualRangeFunc is EqualRange with a caller-supplied element comparison.
func EqualRangeFunc[T any, R1 Reader[T, R1], R2 Reader[T, R2]](first1, last1 R1, first2 R2, eq func(x, y T) bool) bool {
	for it := first1; !it.Equal(last1); it = it.Next() {
		if !eq(it.Value(), first2.Value()) {
			return false
		}
		first2 = first2.Next()
	}
	return true
}
