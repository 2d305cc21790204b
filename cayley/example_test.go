package cayley_test

import (
	"fmt"

	"github.com/podeks/ramangraph/cayley"
	"github.com/podeks/ramangraph/group"
)

// ExampleBuild enumerates the Cayley graph of S_3 with two adjacent
// transpositions: a hexagon, one shell per word length.
func ExampleBuild() {
	gens := []cayley.Element{
		group.Transposition(3, 0, 1),
		group.Transposition(3, 1, 2),
	}

	g, err := cayley.Build(gens, group.IdentityPerm(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	for d := 0; d <= g.MaxDistanceFromRoot(); d++ {
		fmt.Printf("shell %d: %d\n", d, g.ShellSize(d))
	}
	// Output:
	// vertices: 6
	// edges: 6
	// shell 0: 1
	// shell 1: 2
	// shell 2: 2
	// shell 3: 1
}

// ExampleObservableBuilder_Terminate cancels a build before it starts;
// the partial graph is returned unfinished.
func ExampleObservableBuilder_Terminate() {
	ob := cayley.NewObservableBuilder()
	ob.Terminate()

	gens := []cayley.Element{group.Transposition(3, 0, 1)}
	g, err := ob.Build(gens, group.IdentityPerm(3))
	fmt.Println(err != nil)
	fmt.Println(g.Finished())
	// Output:
	// true
	// false
}
