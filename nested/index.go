package nested

import "reflect"

// Index returns element k of t. It panics when k is out of range or the
// element is not an E.
func Index[E any](t Tuple, k int) E {
	checkIndex(k, t.Len())

	v := t.at(k)

	e, ok := as[E](v)
	if !ok {
		panic(&TypeError{Index: k, Want: reflect.TypeFor[E](), Got: reflect.TypeOf(v)})
	}

	return e
}

// IndexPtr returns a pointer to element k of *p.
func IndexPtr[E any, N Tuple](p *N, k int) *E {
	checkIndex(k, (*p).Len())

	v := any(p).(addressable).ptrAt(k)

	e, ok := v.(*E)
	if !ok {
		panic(&TypeError{Index: k, Want: reflect.TypeFor[*E](), Got: reflect.TypeOf(v)})
	}

	return e
}

// Refs returns a tuple holding a pointer to every element of *p. R must have
// the element types *T1, *T2, ... of N.
func Refs[R Tuple, N Tuple](p *N) R {
	return mustFromValues[R](any(p).(addressable).appendPtrs(nil))
}

// Row treats m as a tuple of rows and returns element k of every row.
func Row[R Tuple](m Tuple, k int) R {
	return row[R](m, func(r Tuple) any {
		checkIndex(k, r.Len())

		return r.at(k)
	})
}

// FirstRow returns the first element of every row of m.
func FirstRow[R Tuple](m Tuple) R {
	return Row[R](m, 0)
}

// LastRow returns the last element of every row of m. Rows may differ in
// length.
func LastRow[R Tuple](m Tuple) R {
	return row[R](m, func(r Tuple) any {
		checkIndex(r.Len()-1, r.Len())

		return r.at(r.Len() - 1)
	})
}

// RowPtr is Row over pointers: it returns a pointer to element k of every row
// of *p.
func RowPtr[R Tuple, M Tuple](p *M, k int) R {
	rows := any(p).(addressable).appendPtrs(nil)
	vals := make([]any, len(rows))

	for i, rp := range rows {
		r, ok := rp.(rowRef)
		if !ok {
			panic(&TypeError{Index: i, Want: reflect.TypeFor[Tuple](), Got: reflect.TypeOf(rp).Elem()})
		}

		checkIndex(k, r.Len())
		vals[i] = r.ptrAt(k)
	}

	return mustFromValues[R](vals)
}

// rowRef is a pointer to a row. Pointers to tuples carry the value methods
// of Tuple as well as their own.
type rowRef interface {
	Tuple
	addressable
}

func row[R Tuple](m Tuple, pick func(Tuple) any) R {
	rows := Flatten(m)
	vals := make([]any, len(rows))

	for i, v := range rows {
		r, ok := v.(Tuple)
		if !ok {
			panic(&TypeError{Index: i, Want: reflect.TypeFor[Tuple](), Got: reflect.TypeOf(v)})
		}

		vals[i] = pick(r)
	}

	return mustFromValues[R](vals)
}

func checkIndex(k, n int) {
	if k < 0 || k >= n {
		panic(outOfRange(k, n))
	}
}
