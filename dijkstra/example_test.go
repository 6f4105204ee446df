package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/footpath/core"
	"github.com/katalvlaran/footpath/dijkstra"
)

// ExampleShortestPaths demonstrates a query on a four-vertex graph
// and the reconstruction of one shortest path.
func ExampleShortestPaths() {
	g := core.NewGraph[int64, float64](core.WithNonNegativeWeights())
	for _, v := range []int64{1, 2, 3, 4} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge(1, 2, 7)
	_ = g.AddEdge(1, 3, 9)
	_ = g.AddEdge(3, 4, 2)
	_ = g.AddEdge(2, 4, 10)

	res, err := dijkstra.ShortestPaths(g, int64(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order() {
		fmt.Printf("%d: %g\n", v, res.Cost(v))
	}
	path, _ := res.PathTo(4)
	fmt.Println("path:", path)
	// Output:
	// 1: 0
	// 2: 7
	// 3: 9
	// 4: 11
	// path: [1 3 4]
}

// ExampleReconstruct rebuilds a path from a hand-made predecessor table.
func ExampleReconstruct() {
	prev := dijkstra.PredecessorMap[string]{"library": "gate", "lab": "library"}
	path, err := dijkstra.Reconstruct[string](prev, "gate", "lab")
	fmt.Println(path, err)
	// Output:
	// [gate library lab] <nil>
}
