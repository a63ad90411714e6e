package fixedarray

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrOutOfRange is matched (errors.Is) by every error returned from a
// bounds-checked element access.
var ErrOutOfRange = errors.New("fixedarray: index out of range")

// OutOfRangeError describes a rejected access. Size is the element count of
// the array at the time of the access.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("fixedarray: index %d out of range, size of the array is %d", e.Index, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// outOfRange builds the error returned by At, Get and Set.
func outOfRange(index, size int) error {
	err := errors.WithStack(&OutOfRangeError{Index: index, Size: size})
	return errors.Mark(err, ErrOutOfRange)
}
