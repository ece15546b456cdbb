// Package option provides the optional value used by the transpose
// capabilities of flat and nested tuples.
package option

import "fmt"

// Option represents a value that may be absent. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v in a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// UnwrapOr returns the contained value or def when absent.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}

	return o.value
}

// Any returns the contained value boxed as any. It lets code that only knows
// the option through an interface read it.
func (o Option[T]) Any() (any, bool) {
	if !o.some {
		return nil, false
	}

	return o.value, true
}

// SetAny stores v as a present value. It reports false, leaving o untouched,
// when v does not hold a T.
func (o *Option[T]) SetAny(v any) bool {
	if v == nil {
		var zero T
		if any(zero) != nil {
			return false
		}

		*o = Some(zero)

		return true
	}

	x, ok := v.(T)
	if !ok {
		return false
	}

	*o = Some(x)

	return true
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the contained value, if any.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}

	return Some(f(o.value))
}
