package fixedarray

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// DefaultSeparator is the element separator used by String.
const DefaultSeparator = ", "

// FixedArray owns a single heap buffer of T whose length never changes except
// through assignment. The zero value is an empty array ready to use.
// Not goroutine-safe.
type FixedArray[T any] struct {
	buf      []T    // owned buffer, len == cap == Size()
	gen      uint64 // bumped whenever buf is replaced or released
	reallocs int    // buffers allocated by assignment
}

// New creates an array of size elements. Elements hold T's zero value, but
// callers must treat them as unspecified and write a slot before reading it.
// Panics if size is negative.
func New[T any](size int) *FixedArray[T] {
	return &FixedArray[T]{buf: allocate[T](size)}
}

// NewFilled creates an array of size copies of value.
func NewFilled[T any](size int, value T) *FixedArray[T] {
	return &FixedArray[T]{buf: allocateFilled(size, value)}
}

// NewCopy creates a deep copy of other. The copy shares no storage with
// other; elements are copied by assignment in index order.
func NewCopy[T any](other *FixedArray[T]) *FixedArray[T] {
	return &FixedArray[T]{buf: cloneBuffer(other.buf)}
}

// Move creates an array that takes over other's buffer without copying it.
// other is left empty and its cursors are invalidated.
func Move[T any](other *FixedArray[T]) *FixedArray[T] {
	a := &FixedArray[T]{buf: other.buf}
	other.replace(nil)
	return a
}

// Of creates an array holding values in order. The argument slice is copied,
// never aliased.
func Of[T any](values ...T) *FixedArray[T] {
	return &FixedArray[T]{buf: cloneBuffer(values)}
}

// Clone is shorthand for NewCopy(a).
func (a *FixedArray[T]) Clone() *FixedArray[T] {
	return NewCopy(a)
}

// Size returns the number of elements.
func (a *FixedArray[T]) Size() int {
	return len(a.buf)
}

// At returns a pointer to the element at index. The pointer stays valid until
// the array replaces its buffer. An index outside [0, Size()) yields an error
// matching ErrOutOfRange.
func (a *FixedArray[T]) At(index int) (*T, error) {
	if err := a.checkIndex(index); err != nil {
		return nil, err
	}
	return &a.buf[index], nil
}

// Get returns a copy of the element at index.
func (a *FixedArray[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.buf[index], nil
}

// Set stores value at index.
func (a *FixedArray[T]) Set(index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.buf[index] = value
	return nil
}

func (a *FixedArray[T]) checkIndex(index int) error {
	if index < 0 || index >= len(a.buf) {
		return outOfRange(index, len(a.buf))
	}
	return nil
}

// CopyFrom makes a a deep copy of other. When the sizes differ a new buffer
// is allocated and populated before the old one is dropped; otherwise the
// existing buffer is overwritten in place and cursors into it stay valid.
// Copying an array onto itself does nothing.
func (a *FixedArray[T]) CopyFrom(other *FixedArray[T]) *FixedArray[T] {
	if a == other {
		return a
	}
	a.overwrite(other.buf)
	return a
}

// MoveFrom takes over other's buffer without copying and leaves other empty.
// Cursors into either array are invalidated. Moving an array onto itself
// does nothing.
func (a *FixedArray[T]) MoveFrom(other *FixedArray[T]) *FixedArray[T] {
	if a == other {
		return a
	}
	a.replace(other.buf)
	other.replace(nil)
	return a
}

// Assign overwrites the contents with values, reallocating only when
// len(values) differs from Size().
func (a *FixedArray[T]) Assign(values ...T) *FixedArray[T] {
	a.overwrite(values)
	return a
}

// EqualFunc reports whether a and other have the same size and eq holds for
// every pair of elements at the same index. Arrays of different size are
// never equal and no element is read in that case.
func (a *FixedArray[T]) EqualFunc(other *FixedArray[T], eq func(x, y T) bool) bool {
	if len(a.buf) != len(other.buf) {
		return false
	}
	return slices.EqualFunc(a.buf, other.buf, eq)
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *FixedArray[T]) bool {
	if len(a.buf) != len(b.buf) {
		return false
	}
	return slices.Equal(a.buf, b.buf)
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *FixedArray[T]) bool {
	return !Equal(a, b)
}

// Render formats the array as "[e0<sep>e1<sep>...]" using the %v verb for
// each element. An empty array renders as "[]".
func (a *FixedArray[T]) Render(sep string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.buf {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// String implements fmt.Stringer with DefaultSeparator.
func (a *FixedArray[T]) String() string {
	return a.Render(DefaultSeparator)
}

// Fprint writes every element followed by a space, then a newline, to w.
func (a *FixedArray[T]) Fprint(w io.Writer) error {
	for _, v := range a.buf {
		if _, err := fmt.Fprintf(w, "%v ", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Print writes the array to standard output for debugging.
func (a *FixedArray[T]) Print() error {
	return a.Fprint(os.Stdout)
}
