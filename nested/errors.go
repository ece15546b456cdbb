package nested

import (
	"fmt"
	"reflect"
)

// TypeError reports an element whose dynamic type does not fit its slot.
type TypeError struct {
	Index int
	Want  reflect.Type
	Got   reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("nested: element %d: have %v, want %v", e.Index, e.Got, e.Want)
}

// ShapeError reports a result type that is, or has a Cons tail that is, not
// a tuple value, such as a pointer or an interface. Tail is the offending
// type.
type ShapeError struct {
	Type reflect.Type
	Tail reflect.Type
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("nested: %v: tail %v is not a Unit, Single or Cons value", e.Type, e.Tail)
}

// ArityError reports a tuple of the wrong length.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("nested: arity mismatch: have %d elements, want %d", e.Got, e.Want)
}

// ElementError wraps the failure of converting a single element.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("nested: element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
