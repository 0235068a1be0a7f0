package arraystring

import "fmt"

// Integer is the set of builtin integer types that have a [NonZero] form.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// NonZero holds an integer that is never zero. It formats exactly like the
// integer it wraps.
//
// Build one with [NewNonZero] or [MustNonZero]. The zero value of NonZero is
// not a valid wrapper.
type NonZero[T Integer] struct {
	v T
}

// NewNonZero wraps v. It reports false if v is zero.
func NewNonZero[T Integer](v T) (NonZero[T], bool) {
	if v == 0 {
		return NonZero[T]{}, false
	}
	return NonZero[T]{v: v}, true
}

// MustNonZero wraps v and panics if v is zero.
func MustNonZero[T Integer](v T) NonZero[T] {
	n, ok := NewNonZero(v)
	if !ok {
		panic(fmt.Errorf("%w: NonZero[%T]", ErrZero, v))
	}
	return n
}

// Get returns the wrapped integer.
func (n NonZero[T]) Get() T { return n.v }
