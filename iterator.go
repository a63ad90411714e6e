package fixedarray

import "fmt"

// cursor is the position logic shared by every iterator kind: a weak
// reference to an array plus an index into its buffer. It never owns the
// buffer and remembers the buffer generation it was taken from.
type cursor[T any] struct {
	arr *FixedArray[T]
	pos int
	gen uint64
}

func newCursor[T any](a *FixedArray[T], pos int) cursor[T] {
	return cursor[T]{arr: a, pos: pos, gen: a.gen}
}

// ref returns the address of the element under the cursor.
// Panics if the cursor is detached, stale, or outside [0, Size()).
func (c cursor[T]) ref() *T {
	if c.arr == nil {
		panic("fixedarray: dereference of detached iterator")
	}
	if c.gen != c.arr.gen {
		panic("fixedarray: iterator used after its array replaced the buffer")
	}
	if c.pos < 0 || c.pos >= len(c.arr.buf) {
		panic(fmt.Sprintf("fixedarray: dereference at position %d outside [0, %d)", c.pos, len(c.arr.buf)))
	}
	return &c.arr.buf[c.pos]
}

func (c cursor[T]) offset(n int) cursor[T] {
	c.pos += n
	return c
}

// same reports whether both cursors point at the same slot of the same
// buffer. A cursor taken before the buffer was replaced is never the same as
// one taken after.
func (c cursor[T]) same(o cursor[T]) bool {
	return c.arr == o.arr && c.gen == o.gen && c.pos == o.pos
}

// before orders two cursors of the same buffer.
// Panics if they belong to different arrays or buffer generations.
func (c cursor[T]) before(o cursor[T]) bool {
	if c.arr != o.arr || c.gen != o.gen {
		panic("fixedarray: ordering iterators of different buffers")
	}
	return c.pos < o.pos
}

// Iterator is a mutable forward cursor over a FixedArray. It is valid while
// the array keeps the buffer it had when the cursor was taken.
type Iterator[T any] struct {
	c cursor[T]
}

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T { return *it.c.ref() }

// Ptr returns the address of the element under the cursor.
func (it Iterator[T]) Ptr() *T { return it.c.ref() }

// Set stores v in the element under the cursor.
func (it Iterator[T]) Set(v T) { *it.c.ref() = v }

// Pos returns the index the cursor points at. End is Size(); positions
// before the first element are negative.
func (it Iterator[T]) Pos() int { return it.c.pos }

func (it Iterator[T]) Equal(o Iterator[T]) bool   { return it.c.same(o.c) }
func (it Iterator[T]) Less(o Iterator[T]) bool    { return it.c.before(o.c) }
func (it Iterator[T]) Greater(o Iterator[T]) bool { return o.c.before(it.c) }

func (it Iterator[T]) Next() Iterator[T]     { return it.Add(1) }
func (it Iterator[T]) Prev() Iterator[T]     { return it.Sub(1) }
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{it.c.offset(n)} }
func (it Iterator[T]) Sub(n int) Iterator[T] { return Iterator[T]{it.c.offset(-n)} }

// Advance moves the cursor n elements forward and returns it.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.c.pos += n
	return it
}

// Retreat moves the cursor n elements backward and returns it.
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	it.c.pos -= n
	return it
}

func (it *Iterator[T]) Inc() *Iterator[T] { return it.Advance(1) }
func (it *Iterator[T]) Dec() *Iterator[T] { return it.Retreat(1) }

// PostInc moves the cursor forward and returns its previous state.
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.Advance(1)
	return prev
}

// PostDec moves the cursor backward and returns its previous state.
func (it *Iterator[T]) PostDec() Iterator[T] {
	prev := *it
	it.Retreat(1)
	return prev
}

// Const returns a read-only cursor at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.c}
}

// ConstIterator is a read-only forward cursor over a FixedArray. There is no
// conversion back to Iterator.
type ConstIterator[T any] struct {
	c cursor[T]
}

// NewConstIterator returns a read-only view of it.
func NewConstIterator[T any](it Iterator[T]) ConstIterator[T] {
	return it.Const()
}

func (it ConstIterator[T]) Value() T { return *it.c.ref() }
func (it ConstIterator[T]) Pos() int { return it.c.pos }

func (it ConstIterator[T]) Equal(o ConstIterator[T]) bool   { return it.c.same(o.c) }
func (it ConstIterator[T]) Less(o ConstIterator[T]) bool    { return it.c.before(o.c) }
func (it ConstIterator[T]) Greater(o ConstIterator[T]) bool { return o.c.before(it.c) }

func (it ConstIterator[T]) Next() ConstIterator[T]     { return it.Add(1) }
func (it ConstIterator[T]) Prev() ConstIterator[T]     { return it.Sub(1) }
func (it ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it.c.offset(n)} }
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { return ConstIterator[T]{it.c.offset(-n)} }

func (it *ConstIterator[T]) Advance(n int) *ConstIterator[T] {
	it.c.pos += n
	return it
}

func (it *ConstIterator[T]) Retreat(n int) *ConstIterator[T] {
	it.c.pos -= n
	return it
}

func (it *ConstIterator[T]) Inc() *ConstIterator[T] { return it.Advance(1) }
func (it *ConstIterator[T]) Dec() *ConstIterator[T] { return it.Retreat(1) }

func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	prev := *it
	it.Advance(1)
	return prev
}

func (it *ConstIterator[T]) PostDec() ConstIterator[T] {
	prev := *it
	it.Retreat(1)
	return prev
}

// Begin returns a cursor at the first element.
func (a *FixedArray[T]) Begin() Iterator[T] {
	return Iterator[T]{newCursor(a, 0)}
}

// End returns a cursor one past the last element. It must not be
// dereferenced.
func (a *FixedArray[T]) End() Iterator[T] {
	return Iterator[T]{newCursor(a, len(a.buf))}
}

func (a *FixedArray[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{newCursor(a, 0)}
}

func (a *FixedArray[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{newCursor(a, len(a.buf))}
}
