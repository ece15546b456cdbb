package nested

import (
	"reflect"

	"tuple-generator/option"
)

// PopBack splits t into everything but the last element, as an I, and the
// last element. It panics on an empty tuple.
func PopBack[I Tuple, B any](t Tuple) (I, B) {
	vals := Flatten(t)
	if len(vals) == 0 {
		panic(outOfRange(-1, 0))
	}

	last := vals[len(vals)-1]

	b, ok := as[B](last)
	if !ok {
		panic(&TypeError{Index: len(vals) - 1, Want: reflect.TypeFor[B](), Got: reflect.TypeOf(last)})
	}

	return mustFromValues[I](vals[:len(vals)-1]), b
}

// PushBack appends v to t.
func PushBack[R Tuple, B any](t Tuple, v B) R {
	return mustFromValues[R](append(Flatten(t), v))
}

// Chain concatenates the elements of a and b.
func Chain[R Tuple](a, b Tuple) R {
	return mustFromValues[R](append(Flatten(a), Flatten(b)...))
}

// StartsWith reports whether the element types of P are a prefix of those of
// T. Every tuple starts with Unit and with itself.
func StartsWith[T, P Tuple]() bool {
	tt, pt := Types[T](), Types[P]()
	if len(pt) > len(tt) {
		return false
	}

	for i := range pt {
		if tt[i] != pt[i] {
			return false
		}
	}

	return true
}

type optionValue interface {
	Any() (any, bool)
}

type optionSlot interface {
	SetAny(v any) bool
}

// Transpose turns a tuple of options into an option of a tuple. The result is
// None as soon as one element is None.
func Transpose[R Tuple](t Tuple) option.Option[R] {
	vals := Flatten(t)

	for i, v := range vals {
		o, ok := v.(optionValue)
		if !ok {
			panic(&TypeError{Index: i, Want: reflect.TypeFor[optionValue](), Got: reflect.TypeOf(v)})
		}

		x, some := o.Any()
		if !some {
			return option.None[R]()
		}

		vals[i] = x
	}

	return option.Some(mustFromValues[R](vals))
}

// IntoOptions wraps every element of t in a present option. R must have the
// element types option.Option[T1], option.Option[T2], ... of t.
func IntoOptions[R Tuple](t Tuple) R {
	vals := Flatten(t)

	r, err := construct[R](len(vals), func(s slot, pos int) error {
		o, ok := s.addr().(optionSlot)
		if !ok || !o.SetAny(vals[pos]) {
			return &TypeError{Index: pos, Want: s.elemType(), Got: reflect.TypeOf(vals[pos])}
		}

		return nil
	})
	if err != nil {
		panic(err)
	}

	return r
}
