package threespace_test

import (
	"fmt"

	"github.com/podeks/ramangraph/threespace"
)

// ExampleFundamentalPoints lists the sphere x²+y²+z² = 5 by its single
// fundamental representative; the full sphere is its BC3 orbit.
func ExampleFundamentalPoints() {
	for _, p := range threespace.FundamentalPoints(5) {
		fmt.Println(p.X, p.Y, p.Z)
	}
	// Output:
	// 0 1 2
}

func ExampleEnumeratePoints() {
	pts := threespace.EnumeratePoints(5)
	fmt.Println(len(pts))
	// Output:
	// 24
}

func ExampleClassify() {
	ot := threespace.Classify(threespace.Point{X: 0, Y: 1, Z: 2})
	fmt.Println(ot.T, ot.S, ot.Size)
	// Output:
	// 2 1 24
}
