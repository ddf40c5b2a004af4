package enumerator_test

import (
	"fmt"

	"github.com/kbukum/enumkit/enumerator"
)

func Example() {
	xs := []int{1, 6, 2, 1, 1, 5, 1}
	got := enumerator.From[int](enumerator.FromSlice(xs)).
		Where(func(x int) bool { return x != 1 }).
		ToSlice()
	fmt.Println(got)
	// Output: [6 2 5]
}

func ExampleSelect() {
	wide := enumerator.Select[int](enumerator.FromSlice([]int{1, 2, 3}), func(x int) int64 {
		return int64(x) << 40
	})
	fmt.Println(enumerator.ToSlice[int64](wide))
	// Output: [1099511627776 2199023255552 3298534883328]
}

func ExampleUntilEq() {
	e := enumerator.UntilEq[int](enumerator.FromSlice([]int{1, 2, 3, -1, 4, 5}), -1)
	fmt.Println(enumerator.ToSlice[int](e))
	// Output: [1 2 3]
}

func ExampleQuery_Drop() {
	fmt.Println(enumerator.Of(1, 2, 3, 4, 5).Drop(1).Take(3).ToSlice())
	// Output: [2 3 4]
}

func ExampleCopyTo() {
	dst := make([]string, 2)
	n := enumerator.CopyTo[string](enumerator.FromSlice([]string{"a", "b", "c"}), dst)
	fmt.Println(n, dst)
	// Output: 2 [a b]
}
