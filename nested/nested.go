// Package nested implements tuples as cons lists and the recursive algorithms
// over them.
//
// A nested tuple is one of three shapes: Unit (the empty tuple), Single (one
// element) or Cons (a head followed by a nested tail). Non-empty tuples end in
// Single, so the tuple (1, 2, 3) is
//
//	Cons[int, Cons[int, Single[int]]]{Head: 1, Tail: Cons[int, Single[int]]{Head: 2, Tail: Single[int]{Head: 3}}}
//
// Every operation is defined once per shape and recurses through Tail. Where
// the result type differs from the input type, the caller names it as a type
// parameter and the result is built by walking that type's zero value. Naming
// a result type of the wrong shape is a programmer error and panics with
// *ArityError, *TypeError or *ShapeError; the fallible operations (Nest,
// Slice, TryConvert) return those errors instead.
package nested

import (
	"fmt"
	"reflect"
)

// Tuple is implemented by Unit, Single and Cons only.
type Tuple interface {
	// Len reports the number of elements.
	Len() int
	String() string

	appendValues(dst []any) []any
	appendTypes(dst []reflect.Type) []reflect.Type
	at(k int) any
	build(fill filler, pos int) (Tuple, error)
}

// addressable is implemented by pointers to tuples.
type addressable interface {
	ptrAt(k int) any
	appendPtrs(dst []any) []any
}

// Unit is the empty tuple.
type Unit struct{}

// Single is a tuple of one element.
type Single[A any] struct {
	Head A
}

// Cons is a head element followed by the rest of the tuple. T must be a
// Unit, Single or Cons value: pointer and interface tails are nil in the zero
// value, and operations naming such a result type fail with *ShapeError.
type Cons[A any, T Tuple] struct {
	Head A
	Tail T
}

var (
	_ Tuple = Unit{}
	_ Tuple = Single[int]{}
	_ Tuple = Cons[int, Single[int]]{}

	_ addressable = (*Unit)(nil)
	_ addressable = (*Single[int])(nil)
	_ addressable = (*Cons[int, Single[int]])(nil)
)

func (Unit) Len() int { return 0 }

func (Single[A]) Len() int { return 1 }

func (c Cons[A, T]) Len() int { return 1 + c.Tail.Len() }

func (Cons[A, T]) tailType() reflect.Type { return reflect.TypeFor[T]() }

func (Unit) String() string { return "()" }

func (s Single[A]) String() string {
	return fmt.Sprintf("(%v,)", s.Head)
}

func (c Cons[A, T]) String() string {
	return fmt.Sprintf("(%v, %v)", c.Head, c.Tail)
}

func (Unit) appendValues(dst []any) []any { return dst }

func (s Single[A]) appendValues(dst []any) []any {
	return append(dst, s.Head)
}

func (c Cons[A, T]) appendValues(dst []any) []any {
	return c.Tail.appendValues(append(dst, c.Head))
}

func (Unit) appendTypes(dst []reflect.Type) []reflect.Type { return dst }

func (Single[A]) appendTypes(dst []reflect.Type) []reflect.Type {
	return append(dst, reflect.TypeFor[A]())
}

func (c Cons[A, T]) appendTypes(dst []reflect.Type) []reflect.Type {
	return c.Tail.appendTypes(append(dst, reflect.TypeFor[A]()))
}

func (Unit) at(k int) any {
	panic(outOfRange(k, 0))
}

func (s Single[A]) at(k int) any {
	if k != 0 {
		panic(outOfRange(k, 1))
	}

	return s.Head
}

func (c Cons[A, T]) at(k int) any {
	if k == 0 {
		return c.Head
	}

	return c.Tail.at(k - 1)
}

func (*Unit) ptrAt(k int) any {
	panic(outOfRange(k, 0))
}

func (s *Single[A]) ptrAt(k int) any {
	if k != 0 {
		panic(outOfRange(k, 1))
	}

	return &s.Head
}

func (c *Cons[A, T]) ptrAt(k int) any {
	if k == 0 {
		return &c.Head
	}

	return any(&c.Tail).(addressable).ptrAt(k - 1)
}

func (*Unit) appendPtrs(dst []any) []any { return dst }

func (s *Single[A]) appendPtrs(dst []any) []any {
	return append(dst, &s.Head)
}

func (c *Cons[A, T]) appendPtrs(dst []any) []any {
	return any(&c.Tail).(addressable).appendPtrs(append(dst, &c.Head))
}

// PopFront splits off the head. The rest of a Single is Unit.
func (s Single[A]) PopFront() (A, Unit) {
	return s.Head, Unit{}
}

// PopFront splits off the head.
func (c Cons[A, T]) PopFront() (A, T) {
	return c.Head, c.Tail
}

// PushFront prepends a to t. Prepending to Unit gives Cons[A, Unit], which
// has arity 1 but is not the canonical Single form; build singletons with
// Single directly.
func PushFront[A any, T Tuple](a A, t T) Cons[A, T] {
	return Cons[A, T]{Head: a, Tail: t}
}

// Flatten returns the elements of t in order.
func Flatten(t Tuple) []any {
	return t.appendValues(make([]any, 0, t.Len()))
}

// Types returns the static element types of T in order.
func Types[T Tuple]() []reflect.Type {
	var t T

	return t.appendTypes(nil)
}

func outOfRange(k, n int) string {
	return fmt.Sprintf("nested: index %d out of range for tuple of length %d", k, n)
}
