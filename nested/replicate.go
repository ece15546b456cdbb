package nested

import "reflect"

// Cloner is implemented by values that can produce an independent copy of
// themselves.
type Cloner[T any] interface {
	Clone() T
}

// Copy returns v. It is the clone function for types whose assignment is
// already a copy.
func Copy[T any](v T) T { return v }

// ReplicateFunc fills every slot of an N with v. The first Len-1 slots get
// clone(v) and the last slot gets v itself, so clone runs Len-1 times and
// may be nil when N has at most one element.
func ReplicateFunc[N Tuple, T any](v T, clone func(T) T) N {
	if err := checkShape(reflect.TypeFor[N]()); err != nil {
		panic(err)
	}

	var n N

	size := n.Len()
	if size > 1 && clone == nil {
		panic("nested: ReplicateFunc needs a clone function for arity > 1")
	}

	vals := make([]any, size)
	for i := range size - 1 {
		vals[i] = clone(v)
	}

	if size > 0 {
		vals[size-1] = v
	}

	return mustFromValues[N](vals)
}

// Replicate is ReplicateFunc using v's Clone method.
func Replicate[N Tuple, T Cloner[T]](v T) N {
	return ReplicateFunc[N](v, func(x T) T { return x.Clone() })
}
