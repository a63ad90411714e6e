package fixedarray

// ReverseIterator walks a FixedArray from the last element to the first. It
// wraps one forward Iterator and maps each movement onto its mirror, so
// traversal logic lives only in the forward cursor.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// NewReverseIterator wraps it. The reverse cursor dereferences the same
// element as it.
func NewReverseIterator[T any](it Iterator[T]) ReverseIterator[T] {
	return ReverseIterator[T]{base: it}
}

// Base returns the wrapped forward cursor.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

func (r ReverseIterator[T]) Value() T { return r.base.Value() }
func (r ReverseIterator[T]) Ptr() *T  { return r.base.Ptr() }
func (r ReverseIterator[T]) Set(v T)  { r.base.Set(v) }
func (r ReverseIterator[T]) Pos() int { return r.base.Pos() }

func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return r.base.Equal(o.base) }

// Less reports whether r comes before o in reverse traversal order.
func (r ReverseIterator[T]) Less(o ReverseIterator[T]) bool    { return r.base.Greater(o.base) }
func (r ReverseIterator[T]) Greater(o ReverseIterator[T]) bool { return r.base.Less(o.base) }

func (r ReverseIterator[T]) Next() ReverseIterator[T]     { return ReverseIterator[T]{r.base.Prev()} }
func (r ReverseIterator[T]) Prev() ReverseIterator[T]     { return ReverseIterator[T]{r.base.Next()} }
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] { return ReverseIterator[T]{r.base.Sub(n)} }
func (r ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return ReverseIterator[T]{r.base.Add(n)} }

func (r *ReverseIterator[T]) Advance(n int) *ReverseIterator[T] {
	r.base.Retreat(n)
	return r
}

func (r *ReverseIterator[T]) Retreat(n int) *ReverseIterator[T] {
	r.base.Advance(n)
	return r
}

func (r *ReverseIterator[T]) Inc() *ReverseIterator[T] {
	r.base.Dec()
	return r
}

func (r *ReverseIterator[T]) Dec() *ReverseIterator[T] {
	r.base.Inc()
	return r
}

func (r *ReverseIterator[T]) PostInc() ReverseIterator[T] {
	return ReverseIterator[T]{r.base.PostDec()}
}

func (r *ReverseIterator[T]) PostDec() ReverseIterator[T] {
	return ReverseIterator[T]{r.base.PostInc()}
}

// Const returns a read-only reverse cursor at the same position.
func (r ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r.base.Const()}
}

// ConstReverseIterator is the read-only counterpart of ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

func NewConstReverseIterator[T any](it ConstIterator[T]) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it}
}

func (r ConstReverseIterator[T]) Base() ConstIterator[T] { return r.base }

func (r ConstReverseIterator[T]) Value() T { return r.base.Value() }
func (r ConstReverseIterator[T]) Pos() int { return r.base.Pos() }

func (r ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool   { return r.base.Equal(o.base) }
func (r ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool    { return r.base.Greater(o.base) }
func (r ConstReverseIterator[T]) Greater(o ConstReverseIterator[T]) bool { return r.base.Less(o.base) }

func (r ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r.base.Prev()}
}

func (r ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r.base.Next()}
}

func (r ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r.base.Sub(n)}
}

func (r ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r.base.Add(n)}
}

func (r *ConstReverseIterator[T]) Advance(n int) *ConstReverseIterator[T] {
	r.base.Retreat(n)
	return r
}

func (r *ConstReverseIterator[T]) Retreat(n int) *ConstReverseIterator[T] {
	r.base.Advance(n)
	return r
}

func (r *ConstReverseIterator[T]) Inc() *ConstReverseIterator[T] {
	r.base.Dec()
	return r
}

func (r *ConstReverseIterator[T]) Dec() *ConstReverseIterator[T] {
	r.base.Inc()
	return r
}

func (r *ConstReverseIterator[T]) PostInc() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r.base.PostDec()}
}

func (r *ConstReverseIterator[T]) PostDec() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r.base.PostInc()}
}

// RBegin returns a reverse cursor at the last element, End()-1.
func (a *FixedArray[T]) RBegin() ReverseIterator[T] {
	return NewReverseIterator(a.End().Sub(1))
}

// REnd returns a reverse cursor one before the first element, Begin()-1.
// It must not be dereferenced.
func (a *FixedArray[T]) REnd() ReverseIterator[T] {
	return NewReverseIterator(a.Begin().Sub(1))
}

func (a *FixedArray[T]) CRBegin() ConstReverseIterator[T] {
	return NewConstReverseIterator(a.CEnd().Sub(1))
}

func (a *FixedArray[T]) CREnd() ConstReverseIterator[T] {
	return NewConstReverseIterator(a.CBegin().Sub(1))
}
