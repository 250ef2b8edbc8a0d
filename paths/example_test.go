package paths_test

import (
	"fmt"

	"github.com/Wenhua-Hu/causality/dag"
	"github.com/Wenhua-Hu/causality/paths"
)

// ExampleEnumerate lists every simple connection between treatment X and
// outcome Y in a small confounded graph, regardless of edge orientation.
func ExampleEnumerate() {
	d, err := dag.New([]dag.Edge{
		{From: "Z", To: "X"},
		{From: "Z", To: "Y"},
		{From: "X", To: "W"},
		{From: "W", To: "Y"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	found, err := paths.Enumerate(d, "X", "Y")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range found {
		fmt.Println(p)
	}
	// Output:
	// [X W Y]
	// [X Z Y]
}
