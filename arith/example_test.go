package arith_test

import (
	"fmt"

	"github.com/podeks/ramangraph/arith"
)

// ExampleReduce shows the centered representative: results land in
// [-floor(q/2), floor(q/2)], not [0,q).
func ExampleReduce() {
	fmt.Println(arith.Reduce(7, 5))
	fmt.Println(arith.Reduce(-3, 5))
	fmt.Println(arith.Reduce(12, 5))
	// Output:
	// 2
	// 2
	// 2
}

func ExampleFindInverse() {
	inv, err := arith.FindInverse(3, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(inv)
	fmt.Println(arith.ReducedProduct(3, inv, 7))
	// Output:
	// 5
	// 1
}

func ExamplePerfSqrt() {
	s, ok := arith.PerfSqrt(49)
	fmt.Println(s, ok)
	_, ok = arith.PerfSqrt(50)
	fmt.Println(ok)
	// Output:
	// 7 true
	// false
}
