package fixedarray

import "iter"

// All returns an iterator over index/value pairs in index order.
func (a *FixedArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		end := a.CEnd()
		for it := a.CBegin(); it.Less(end); it.Inc() {
			if !yield(it.Pos(), it.Value()) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (a *FixedArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from the last element
// to the first.
func (a *FixedArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		end := a.CREnd()
		for it := a.CRBegin(); it.Less(end); it.Inc() {
			if !yield(it.Pos(), it.Value()) {
				return
			}
		}
	}
}
