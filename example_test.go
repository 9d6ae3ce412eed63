package gocombine

import (
	"fmt"
)

func Example() {
	// construct a publisher from values
	ints := Of(3, 4)

	// deliver 1 and 2 before the publisher's own values
	ints = Prepend(ints, 1, 2)

	// deliver 5 after the publisher has finished
	ints = Append(ints, 5)

	Observe(ints, func(v int) {
		fmt.Println(v)
	}, nil)
	// Output:
	// 1
	// 2
	// 3
	// 4
	// 5
}

func ExampleSwitchToLatest() {
	// the outer publisher delivers two inner publishers
	pubs := Of(Of(1, 2), Prepend(Of(4), 3))

	Observe(SwitchToLatest(pubs), func(v int) {
		fmt.Println(v)
	}, func(c Completion) {
		fmt.Println(c)
	})
	// Output:
	// 1
	// 2
	// 3
	// 4
	// finished
}

func ExampleMerge() {
	Observe(Merge(Of("a1", "a2"), Of("b1")), func(v string) {
		fmt.Println(v)
	}, func(c Completion) {
		fmt.Println(c)
	})
	// Output:
	// a1
	// a2
	// b1
	// finished
}
