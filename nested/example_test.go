package nested_test

import (
	"fmt"

	"tuple-generator/nested"
)

func ExampleNest() {
	type point = nested.Cons[string, nested.Cons[int, nested.Single[int]]]

	p, err := nested.Nest[point]("origin", 0, 0)
	if err != nil {
		panic(err)
	}

	fmt.Println(p, p.Len())
	fmt.Println(nested.Index[string](p, 0))
	// Output:
	// (origin, (0, (0,))) 3
	// origin
}

func ExamplePopBack() {
	t := nested.PushFront(1, nested.PushFront(2, nested.Single[int]{Head: 3}))

	front, last := nested.PopBack[nested.Cons[int, nested.Single[int]], int](t)
	fmt.Println(front, last)
	// Output: (1, (2,)) 3
}
