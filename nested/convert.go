package nested

import "reflect"

// TryFromer is implemented by pointers to types that can be set from a
// value of another type, failing when the value does not fit.
type TryFromer interface {
	TryFrom(src any) error
}

// TryIntoer is implemented by values that can store themselves into a
// pointer to another type, failing when they do not fit.
type TryIntoer interface {
	TryInto(dst any) error
}

// Fromer is the infallible form of TryFromer.
type Fromer interface {
	From(src any)
}

// Intoer is the infallible form of TryIntoer.
type Intoer interface {
	Into(dst any)
}

// TryConvert converts src element-wise into an R. Each element is assigned
// directly when its type fits, otherwise through the target's TryFromer,
// otherwise through the source's TryIntoer. The first failure stops the
// conversion and is returned as *ElementError.
func TryConvert[R Tuple](src Tuple) (R, error) {
	vals := Flatten(src)

	return construct[R](len(vals), func(s slot, pos int) error {
		v := vals[pos]
		if s.set(v) {
			return nil
		}

		var err error

		if f, ok := s.addr().(TryFromer); ok {
			err = f.TryFrom(v)
		} else if f, ok := v.(TryIntoer); ok {
			err = f.TryInto(s.addr())
		} else {
			err = &TypeError{Index: pos, Want: s.elemType(), Got: reflect.TypeOf(v)}
		}

		if err != nil {
			return &ElementError{Index: pos, Err: err}
		}

		return nil
	})
}

// Convert is the infallible form of TryConvert, using Fromer and Intoer. It
// panics when an element has no conversion.
func Convert[R Tuple](src Tuple) R {
	vals := Flatten(src)

	r, err := construct[R](len(vals), func(s slot, pos int) error {
		v := vals[pos]
		if s.set(v) {
			return nil
		}

		if f, ok := s.addr().(Fromer); ok {
			f.From(v)

			return nil
		}

		if f, ok := v.(Intoer); ok {
			f.Into(s.addr())

			return nil
		}

		return &TypeError{Index: pos, Want: s.elemType(), Got: reflect.TypeOf(v)}
	})
	if err != nil {
		panic(err)
	}

	return r
}
