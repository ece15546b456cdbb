package option_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"tuple-generator/option"
)

func TestOption_Basics(t *testing.T) {
	t.Parallel()

	some := option.Some(42)
	none := option.None[int]()

	assert.True(t, some.IsSome())
	assert.True(t, none.IsNone())
	assert.Equal(t, none, option.Option[int]{})

	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	assert.Equal(t, 7, none.UnwrapOr(7))
	assert.Equal(t, 42, some.UnwrapOr(7))
}

func TestOption_Boxed(t *testing.T) {
	t.Parallel()

	var o option.Option[string]
	assert.False(t, o.SetAny(3))
	assert.True(t, o.IsNone())

	assert.True(t, o.SetAny("x"))
	v, ok := o.Any()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	var e option.Option[error]
	assert.True(t, e.SetAny(nil))
	assert.True(t, e.IsSome())

	var p option.Option[int]
	assert.False(t, p.SetAny(nil))
}

func TestOption_Map(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	assert.Equal(t, option.Some(4), option.Map(option.Some(2), double))
	assert.Equal(t, option.None[int](), option.Map(option.None[int](), double))
}

func ExampleOption_String() {
	fmt.Println(option.Some(1), option.None[int]())
	// Output: Some(1) None
}
