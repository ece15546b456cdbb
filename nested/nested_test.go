package nested_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tuple-generator/nested"
	"tuple-generator/option"
)

type (
	one   = nested.Single[int]
	two   = nested.Cons[int, one]
	three = nested.Cons[int, two]
	four  = nested.Cons[int, three]
)

func mkFour() four {
	return nested.PushFront(1, nested.PushFront(2, nested.PushFront(3, one{Head: 4})))
}

func TestNestFlatten_RoundTrip(t *testing.T) {
	t.Parallel()

	n := mkFour()
	vals := nested.Flatten(n)
	assert.Equal(t, []any{1, 2, 3, 4}, vals)

	back, err := nested.Nest[four](vals...)
	require.NoError(t, err)
	assert.Equal(t, n, back, spew.Sdump(back))
	assert.Equal(t, 4, back.Len())

	empty, err := nested.Nest[nested.Unit]()
	require.NoError(t, err)
	assert.Equal(t, nested.Unit{}, empty)
	assert.Empty(t, nested.Flatten(empty))
}

func TestNest_Errors(t *testing.T) {
	t.Parallel()

	_, err := nested.Nest[two](1)

	var arity *nested.ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 2, arity.Want)
	assert.Equal(t, 1, arity.Got)

	_, err = nested.Nest[two](1, "x")

	var typ *nested.TypeError
	require.ErrorAs(t, err, &typ)
	assert.Equal(t, 1, typ.Index)
	assert.Equal(t, "int", typ.Want.String())
	assert.Equal(t, "string", typ.Got.String())
}

func TestNest_NilInterfaceElement(t *testing.T) {
	t.Parallel()

	n, err := nested.Nest[nested.Cons[error, nested.Single[int]]](nil, 1)
	require.NoError(t, err)
	assert.NoError(t, n.Head)

	_, err = nested.Nest[two](nil, 1)
	assert.Error(t, err)
}

func TestNest_PointerTail(t *testing.T) {
	t.Parallel()

	type ptrTail = nested.Cons[int, *nested.Single[int]]

	var (
		nestErr error
		shape   *nested.ShapeError
	)

	assert.NotPanics(t, func() { _, nestErr = nested.Nest[ptrTail](1, 2) })
	require.ErrorAs(t, nestErr, &shape)
	assert.Equal(t, "*nested.Single[int]", shape.Tail.String())

	assert.PanicsWithError(t, nestErr.Error(), func() { nested.ReplicateFunc[ptrTail](1, nested.Copy[int]) })

	_, err := nested.Nest[nested.Cons[int, nested.Cons[int, nested.Tuple]]](1, 2, 3)
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "nested.Tuple", shape.Tail.String())

	_, err = nested.TryConvert[nested.Cons[int64, *nested.Single[int]]](two{Head: 1, Tail: one{Head: 2}})
	require.ErrorAs(t, err, &shape)

	_, err = nested.Nest[*one](1)
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, shape.Type, shape.Tail)
}

func TestEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, nested.Unit{} == nested.Unit{})
	assert.True(t, mkFour() == mkFour())

	other := mkFour()
	other.Tail.Tail.Tail.Head = 5
	assert.False(t, mkFour() == other)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "()", nested.Unit{}.String())
	assert.Equal(t, "(1,)", one{Head: 1}.String())
	assert.Equal(t, "(1, (2, (3, (4,))))", mkFour().String())
}

func TestIndex_AgreesWithFlatten(t *testing.T) {
	t.Parallel()

	n := mkFour()
	flat := nested.Flatten(n)

	for k := range n.Len() {
		assert.Equal(t, flat[k], nested.Index[int](n, k), "index %d", k)
	}

	assert.Panics(t, func() { nested.Index[int](n, 4) })
	assert.Panics(t, func() { nested.Index[int](n, -1) })
	assert.Panics(t, func() { nested.Index[string](n, 0) })
	assert.Panics(t, func() { nested.Index[int](nested.Unit{}, 0) })
}

func TestIndexPtr(t *testing.T) {
	t.Parallel()

	n := mkFour()
	*nested.IndexPtr[int](&n, 2) = 30

	assert.Equal(t, []any{1, 2, 30, 4}, nested.Flatten(n))
	assert.Panics(t, func() { nested.IndexPtr[int](&n, 4) })
}

func TestRefs(t *testing.T) {
	t.Parallel()

	n := nested.PushFront("a", nested.Single[int]{Head: 1})
	refs := nested.Refs[nested.Cons[*string, nested.Single[*int]]](&n)

	*refs.Head = "b"
	*refs.Tail.Head = 2

	assert.Equal(t, "(b, (2,))", n.String())
}

func TestPushPopFront(t *testing.T) {
	t.Parallel()

	head, rest := mkFour().PopFront()
	assert.Equal(t, 1, head)
	assert.Equal(t, "(2, (3, (4,)))", rest.String())
	assert.Equal(t, mkFour(), nested.PushFront(head, rest))

	last, unit := one{Head: 9}.PopFront()
	assert.Equal(t, 9, last)
	assert.Equal(t, nested.Unit{}, unit)

	assert.Equal(t, 1, nested.PushFront(1, nested.Unit{}).Len())
}

func TestPopBack(t *testing.T) {
	t.Parallel()

	n := three{Head: 1, Tail: two{Head: 2, Tail: one{Head: 3}}}

	front, last := nested.PopBack[two, int](n)
	assert.Equal(t, 3, last)
	assert.Equal(t, "(1, (2,))", front.String())

	empty, v := nested.PopBack[nested.Unit, string](nested.Single[string]{Head: "x"})
	assert.Equal(t, nested.Unit{}, empty)
	assert.Equal(t, "x", v)

	assert.Panics(t, func() { nested.PopBack[nested.Unit, int](nested.Unit{}) })
}

func TestPushBack(t *testing.T) {
	t.Parallel()

	n := nested.PushBack[nested.Cons[int, nested.Single[string]]](one{Head: 1}, "z")
	assert.Equal(t, "(1, (z,))", n.String())

	assert.Equal(t, one{Head: 7}, nested.PushBack[one](nested.Unit{}, 7))
	assert.Panics(t, func() { nested.PushBack[two](one{Head: 1}, "z") })
}

func TestChain(t *testing.T) {
	t.Parallel()

	got := nested.Chain[four](two{Head: 1, Tail: one{Head: 2}}, two{Head: 3, Tail: one{Head: 4}})
	assert.Equal(t, mkFour(), got)

	assert.Equal(t, two{Head: 1, Tail: one{Head: 2}}, nested.Chain[two](nested.Unit{}, two{Head: 1, Tail: one{Head: 2}}))
	assert.Equal(t, nested.Unit{}, nested.Chain[nested.Unit](nested.Unit{}, nested.Unit{}))
	assert.Panics(t, func() { nested.Chain[three](one{Head: 1}, one{Head: 2}) })
}

func TestStartsWith(t *testing.T) {
	t.Parallel()

	type (
		i32s1 = nested.Single[int32]
		i32s2 = nested.Cons[int32, i32s1]
		i32s3 = nested.Cons[int32, i32s2]
	)

	assert.True(t, nested.StartsWith[i32s3, nested.Unit]())
	assert.True(t, nested.StartsWith[i32s3, i32s1]())
	assert.True(t, nested.StartsWith[i32s3, i32s2]())
	assert.True(t, nested.StartsWith[i32s3, i32s3]())
	assert.True(t, nested.StartsWith[nested.Unit, nested.Unit]())

	assert.False(t, nested.StartsWith[i32s3, nested.Single[int64]]())
	assert.False(t, nested.StartsWith[i32s1, i32s2]())
}

func TestSlice(t *testing.T) {
	t.Parallel()

	s, err := nested.Slice[int](mkFour())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, s)

	_, err = nested.Slice[string](mkFour())

	var typ *nested.TypeError
	require.ErrorAs(t, err, &typ)
	assert.Equal(t, 0, typ.Index)
}

func TestRow(t *testing.T) {
	t.Parallel()

	m := nested.Cons[two, nested.Single[three]]{
		Head: two{Head: 1, Tail: one{Head: 2}},
		Tail: nested.Single[three]{Head: three{Head: 3, Tail: two{Head: 4, Tail: one{Head: 5}}}},
	}

	assert.Equal(t, "(2, (4,))", nested.Row[two](m, 1).String())
	assert.Equal(t, "(1, (3,))", nested.FirstRow[two](m).String())
	assert.Equal(t, "(2, (5,))", nested.LastRow[two](m).String())
	assert.Panics(t, func() { nested.Row[two](m, 2) })

	ptrs := nested.RowPtr[nested.Cons[*int, nested.Single[*int]]](&m, 0)
	*ptrs.Head = 10
	*ptrs.Tail.Head = 30

	assert.Equal(t, "((10, (2,)), ((30, (4, (5,))),))", m.String())
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	type opts = nested.Cons[option.Option[int], nested.Single[option.Option[string]]]
	type plain = nested.Cons[int, nested.Single[string]]

	some := opts{Head: option.Some(1), Tail: nested.Single[option.Option[string]]{Head: option.Some("a")}}
	got := nested.Transpose[plain](some)
	require.True(t, got.IsSome())

	v, _ := got.Get()
	assert.Equal(t, "(1, (a,))", v.String())

	none := opts{Head: option.Some(1), Tail: nested.Single[option.Option[string]]{Head: option.None[string]()}}
	assert.True(t, nested.Transpose[plain](none).IsNone())

	assert.Equal(t, option.Some(nested.Unit{}), nested.Transpose[nested.Unit](nested.Unit{}))

	back := nested.IntoOptions[opts](v)
	assert.Equal(t, some, back)
}

type counter struct {
	clones *int
	id     int
}

func (c counter) Clone() counter {
	*c.clones++

	return counter{clones: c.clones, id: *c.clones}
}

func TestReplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		clones int
		run    func(c counter) nested.Tuple
	}{
		{"arity 0", 0, func(c counter) nested.Tuple { return nested.Replicate[nested.Unit](c) }},
		{"arity 1", 0, func(c counter) nested.Tuple { return nested.Replicate[nested.Single[counter]](c) }},
		{"arity 3", 2, func(c counter) nested.Tuple {
			return nested.Replicate[nested.Cons[counter, nested.Cons[counter, nested.Single[counter]]]](c)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := 0
			out := tt.run(counter{clones: &n})
			assert.Equal(t, tt.clones, n)

			vals := nested.Flatten(out)
			if len(vals) > 0 {
				assert.Equal(t, 0, vals[len(vals)-1].(counter).id, "original moves into the last slot")
			}
		})
	}
}

func TestReplicateFunc(t *testing.T) {
	t.Parallel()

	assert.Equal(t, one{Head: 5}, nested.ReplicateFunc[one](5, nil))
	assert.Equal(t, "(5, (5, (5,)))", nested.ReplicateFunc[three](5, nested.Copy[int]).String())
	assert.Panics(t, func() { nested.ReplicateFunc[two](5, nil) })
}

// WrapI16 narrows into uint8 and fails when the value does not fit.
type WrapI16 int16

func (w WrapI16) TryInto(dst any) error {
	p, ok := dst.(*uint8)
	if !ok {
		return fmt.Errorf("WrapI16: unsupported target %T", dst)
	}

	if w < 0 || w > 255 {
		return fmt.Errorf("WrapI16: %d out of range for uint8", int16(w))
	}

	*p = uint8(w)

	return nil
}

// Decimal parses strings.
type Decimal struct{ V int }

func (d *Decimal) TryFrom(src any) error {
	s, ok := src.(string)
	if !ok {
		return fmt.Errorf("Decimal: unsupported source %T", src)
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	d.V = v

	return nil
}

func TestTryConvert(t *testing.T) {
	t.Parallel()

	type target = nested.Cons[uint8, nested.Single[Decimal]]

	src := nested.Cons[WrapI16, nested.Single[string]]{Head: 200, Tail: nested.Single[string]{Head: "42"}}
	got, err := nested.TryConvert[target](src)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), got.Head)
	assert.Equal(t, 42, got.Tail.Head.V)

	src.Head = 256
	_, err = nested.TryConvert[target](src)

	var elem *nested.ElementError
	require.ErrorAs(t, err, &elem)
	assert.Equal(t, 0, elem.Index)
	assert.Contains(t, elem.Error(), "out of range")

	src.Head = 1
	src.Tail.Head = "x"
	_, err = nested.TryConvert[target](src)
	require.ErrorAs(t, err, &elem)
	assert.Equal(t, 1, elem.Index)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))

	_, err = nested.TryConvert[nested.Single[bool]](nested.Single[int]{Head: 1})
	require.ErrorAs(t, err, &elem)

	var typ *nested.TypeError
	assert.ErrorAs(t, err, &typ)
}

// Celsius converts from plain floats.
type Celsius struct{ Deg float64 }

func (c *Celsius) From(src any) { c.Deg = src.(float64) }

func TestConvert(t *testing.T) {
	t.Parallel()

	got := nested.Convert[nested.Cons[Celsius, nested.Single[int]]](
		nested.Cons[float64, nested.Single[int]]{Head: 21.5, Tail: nested.Single[int]{Head: 3}},
	)
	assert.Equal(t, 21.5, got.Head.Deg)
	assert.Equal(t, 3, got.Tail.Head)

	assert.Panics(t, func() { nested.Convert[nested.Single[bool]](nested.Single[int]{Head: 1}) })
}

func TestTypes(t *testing.T) {
	t.Parallel()

	types := nested.Types[nested.Cons[int, nested.Single[string]]]()
	require.Len(t, types, 2)
	assert.Equal(t, "int", types[0].String())
	assert.Equal(t, "string", types[1].String())
	assert.Empty(t, nested.Types[nested.Unit]())
}
