package picker

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by RangeError.
	ErrOutOfRange = errors.New("value out of range")
	// ErrNotInteger is returned by ContainsValue for non-integer values.
	ErrNotInteger = errors.New("value must be an integer")
)

// RangeError reports a value outside of [Lower, Upper).
type RangeError struct {
	Value int
	Lower int
	Upper int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("value=%d is outside of [%d,%d)", e.Value, e.Lower, e.Upper)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// BoundFunc yields one end of a range at the moment it is called.
type BoundFunc func() int

// CircularRange is an index that wraps around at both ends of a range whose
// bounds are recomputed on every access. The upper bound is exclusive.
//
// When the range is empty (upper <= lower) navigation pins the index to the
// lower bound instead of producing an out-of-range value.
type CircularRange struct {
	lower   BoundFunc
	upper   BoundFunc
	current int
}

// NewCircularRange returns a range positioned at the lower bound.
func NewCircularRange(lower, upper BoundFunc) *CircularRange {
	r := &CircularRange{lower: lower, upper: upper}
	r.current = r.Lower()
	return r
}

// NewCircularRangeAt returns a range positioned at init. It fails when init is
// not inside the range as evaluated now.
func NewCircularRangeAt(lower, upper BoundFunc, init int) (*CircularRange, error) {
	r := &CircularRange{lower: lower, upper: upper}
	if err := r.Validate(init); err != nil {
		return nil, err
	}
	r.current = init
	return r, nil
}

// ConstBound returns a BoundFunc that always yields n.
func ConstBound(n int) BoundFunc {
	return func() int { return n }
}

// LenBound returns a BoundFunc tracking the current length of *items.
func LenBound[T any](items *[]T) BoundFunc {
	return func() int {
		if items == nil {
			return 0
		}
		return len(*items)
	}
}

// Lower returns the current lower bound.
func (r *CircularRange) Lower() int {
	if r.lower == nil {
		return 0
	}
	return r.lower()
}

// Upper returns the current exclusive upper bound.
func (r *CircularRange) Upper() int {
	if r.upper == nil {
		return 0
	}
	return r.upper()
}

// Current returns the index without moving it.
func (r *CircularRange) Current() int {
	return r.current
}

// Empty reports whether the range currently holds no values.
func (r *CircularRange) Empty() bool {
	return r.Upper() <= r.Lower()
}

// Advance moves forward one step, wrapping to the lower bound.
func (r *CircularRange) Advance() int {
	lower, upper := r.Lower(), r.Upper()
	if upper <= lower {
		r.current = lower
		return r.current
	}
	r.current++
	if r.current >= upper {
		r.current = lower
	}
	return r.current
}

// Retreat moves back one step, wrapping to the last value in the range.
func (r *CircularRange) Retreat() int {
	lower, upper := r.Lower(), r.Upper()
	if upper <= lower {
		r.current = lower
		return r.current
	}
	r.current--
	if r.current < lower {
		r.current = upper - 1
	}
	return r.current
}

// Reset moves the index back to the lower bound.
func (r *CircularRange) Reset() {
	r.current = r.Lower()
}

// Set positions the index at v after validating it.
func (r *CircularRange) Set(v int) error {
	if err := r.Validate(v); err != nil {
		return err
	}
	r.current = v
	return nil
}

// Contains reports whether v lies in [lower, upper).
func (r *CircularRange) Contains(v int) bool {
	return r.Lower() <= v && v < r.Upper()
}

// ContainsValue is Contains for dynamically typed values. Any Go integer kind
// is accepted; everything else yields ErrNotInteger.
func (r *CircularRange) ContainsValue(v any) (bool, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int8:
		n = int64(x)
	case int16:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		n = int64(x)
	case uint8:
		n = int64(x)
	case uint16:
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		n = int64(x)
	default:
		return false, fmt.Errorf("%w: got %T", ErrNotInteger, v)
	}
	return int64(r.Lower()) <= n && n < int64(r.Upper()), nil
}

// Validate returns a *RangeError when v lies outside [lower, upper).
func (r *CircularRange) Validate(v int) error {
	lower, upper := r.Lower(), r.Upper()
	if lower <= v && v < upper {
		return nil
	}
	return &RangeError{Value: v, Lower: lower, Upper: upper}
}
