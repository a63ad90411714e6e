// Package fixedarray implements FixedArray, a generic array container whose
// length is fixed when an instance is built.
//
// # Overview
//
// A FixedArray owns exactly one contiguous buffer of T. Unlike a slice it is
// never resized by appending: the only way to change its length is to assign
// another array or a list of values to it, which replaces the buffer
// wholesale. This makes it a good fit for:
//
//   - Lookup tables and fixed-width records
//   - Buffers that are handed between owners (Move, MoveFrom)
//   - Code ported from cursor-based algorithms (Fill, Copy, EqualRange)
//
// # Basic Usage
//
//	a := fixedarray.Of(1, 2, 3)
//	b := a.Clone()        // deep copy
//	c := fixedarray.Move(b) // b is now empty
//
//	p, err := a.At(1)     // bounds-checked, returns *T
//	if errors.Is(err, fixedarray.ErrOutOfRange) { ... }
//	*p = 20
//
//	fmt.Println(a.Render(" | ")) // [1 | 20 | 3]
//
// # Cursors
//
// Four cursor kinds walk an array: Iterator, ConstIterator, ReverseIterator
// and ConstReverseIterator, obtained from Begin/End, CBegin/CEnd,
// RBegin/REnd and CRBegin/CREnd. Reverse cursors wrap a forward cursor and
// mirror its movements. A mutable cursor can be narrowed to a read-only one
// with Const; the opposite conversion does not exist.
//
//	for it := a.CBegin(); !it.Equal(a.CEnd()); it.Inc() {
//		fmt.Println(it.Value())
//	}
//
// The same traversal is available as range-over-func sequences via All,
// Values and Backward.
//
// # Important Notes
//
//   - Cursors are only valid while the array keeps its buffer. Assigning an
//     array of a different size, or moving into or out of it, replaces the
//     buffer; dereferencing an older cursor then panics.
//   - End and REnd must never be dereferenced.
//   - Elements created by New hold T's zero value but are unspecified by
//     contract: write before you read.
//   - FixedArray is not goroutine-safe. Callers sharing an instance between
//     goroutines must synchronize access themselves.
//
// # Metrics
//
// Metrics reports size, buffer capacity (always equal to size) and how many
// buffers assignment had to allocate:
//
//	m := a.Metrics()
//	fmt.Printf("size=%d reallocations=%d\n", m.Size, m.Reallocations)
package fixedarray
