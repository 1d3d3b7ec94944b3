package expanded_test

import (
	"fmt"
	"os"

	"github.com/aujxn/recipe-analysis/expanded"
)

// ExampleBuildStars expands two recipes and biases garlic toward a target hub.
func ExampleBuildStars() {
	rel, err := expanded.BuildStars(3, [][]int{{0, 1}, {0, 1, 2}}, expanded.WithTargetHub(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	hub, _ := rel.TargetHub()
	fmt.Println("vertices:", rel.NumVertices(), "edges:", rel.NumEdges(), "hub:", hub)
	_ = rel.WriteCoolist(os.Stdout)
	// Output:
	// vertices: 11 edges: 11 hub: 10
	// 0 5 1
	// 0 7 1
	// 1 6 1
	// 1 8 1
	// 2 9 1
	// 3 5 1
	// 3 6 1
	// 4 7 1
	// 4 8 1
	// 4 9 1
	// 9 10 1
}
