package nested

import "reflect"

// slot is one element of a tuple under construction.
type slot interface {
	set(v any) bool
	addr() any
	elemType() reflect.Type
}

type slotOf[A any] struct {
	p *A
}

func (s slotOf[A]) set(v any) bool {
	a, ok := as[A](v)
	if ok {
		*s.p = a
	}

	return ok
}

func (s slotOf[A]) addr() any { return s.p }

func (slotOf[A]) elemType() reflect.Type { return reflect.TypeFor[A]() }

// filler stores the element at position pos into s.
type filler func(s slot, pos int) error

func (Unit) build(filler, int) (Tuple, error) {
	return Unit{}, nil
}

func (Single[A]) build(fill filler, pos int) (Tuple, error) {
	var out Single[A]
	if err := fill(slotOf[A]{p: &out.Head}, pos); err != nil {
		return nil, err
	}

	return out, nil
}

func (Cons[A, T]) build(fill filler, pos int) (Tuple, error) {
	var out Cons[A, T]
	if err := fill(slotOf[A]{p: &out.Head}, pos); err != nil {
		return nil, err
	}

	tail, err := out.Tail.build(fill, pos+1)
	if err != nil {
		return nil, err
	}

	out.Tail = tail.(T)

	return out, nil
}

// checkShape walks typ and its tails, which must all be tuple values: the
// zero value of a pointer or interface is nil.
func checkShape(typ reflect.Type) error {
	for cur := typ; ; {
		if k := cur.Kind(); k == reflect.Pointer || k == reflect.Interface {
			return &ShapeError{Type: typ, Tail: cur}
		}

		c, ok := reflect.Zero(cur).Interface().(interface{ tailType() reflect.Type })
		if !ok {
			return nil
		}

		cur = c.tailType()
	}
}

// as converts v to A. A nil v converts only to interface types.
func as[A any](v any) (A, bool) {
	if v == nil {
		var zero A

		return zero, any(zero) == nil
	}

	a, ok := v.(A)

	return a, ok
}

// construct builds an R of the same arity as n by calling fill for each slot.
func construct[R Tuple](n int, fill filler) (R, error) {
	var r R
	if err := checkShape(reflect.TypeFor[R]()); err != nil {
		return r, err
	}

	if want := r.Len(); want != n {
		return r, &ArityError{Want: want, Got: n}
	}

	t, err := r.build(fill, 0)
	if err != nil {
		return r, err
	}

	return t.(R), nil
}

// fromValues builds an R holding vals, which must match R's element types.
func fromValues[R Tuple](vals []any) (R, error) {
	return construct[R](len(vals), func(s slot, pos int) error {
		if !s.set(vals[pos]) {
			return &TypeError{Index: pos, Want: s.elemType(), Got: reflect.TypeOf(vals[pos])}
		}

		return nil
	})
}

func mustFromValues[R Tuple](vals []any) R {
	r, err := fromValues[R](vals)
	if err != nil {
		panic(err)
	}

	return r
}

// Nest builds an N from vals. It fails with *ArityError when the count
// differs from N's arity and with *TypeError when an element has the wrong
// type.
func Nest[N Tuple](vals ...any) (N, error) {
	return fromValues[N](vals)
}

// Slice returns the elements of t as a slice of E.
func Slice[E any](t Tuple) ([]E, error) {
	vals := Flatten(t)
	out := make([]E, len(vals))

	for i, v := range vals {
		e, ok := as[E](v)
		if !ok {
			return nil, &TypeError{Index: i, Want: reflect.TypeFor[E](), Got: reflect.TypeOf(v)}
		}

		out[i] = e
	}

	return out, nil
}
