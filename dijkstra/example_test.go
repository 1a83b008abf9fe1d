// Package dijkstra_test provides runnable examples for the shortest-path
// engine. Each example is runnable via “go test -run Example”, showing both
// code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/wayline/wayline/core"
	"github.com/wayline/wayline/dijkstra"
)

// ExampleShortestPath demonstrates the linear-chain query A→B→C.
func ExampleShortestPath() {
	// 1) Register the nodes, then the edges: A→B costs 5, B→C costs 3.
	g := core.NewGraph()
	g.AddNodes(core.NewNode("A"), core.NewNode("B"), core.NewNode("C"))
	g.AddEdges(
		core.NewEdge("ab", "A", "B", 5),
		core.NewEdge("bc", "B", "C", 3),
	)

	// 2) Ask for the lowest-cost path from A to C.
	path, cost, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("path=%v cost=%v\n", path, cost)
	// Output: path=[A B C] cost=8
}

// ExampleShortestPath_tieBreak shows the deterministic tie-break on the
// diamond graph: both routes to D cost 2, and the winner is the one through
// the earlier-registered node B.
func ExampleShortestPath_tieBreak() {
	g := core.NewGraph()
	g.AddNodes(core.NewNode("A"), core.NewNode("B"), core.NewNode("C"), core.NewNode("D"))
	g.AddEdges(
		core.NewEdge("ab", "A", "B", 1),
		core.NewEdge("ac", "A", "C", 1),
		core.NewEdge("bd", "B", "D", 1),
		core.NewEdge("cd", "C", "D", 1),
	)

	path, cost, _ := dijkstra.ShortestPath(g, "A", "D")
	fmt.Printf("path=%v cost=%v\n", path, cost)
	// Output: path=[A B D] cost=2
}

// ExampleShortestPath_noPath shows the explicit failure on a disconnected
// target: no partial path is ever returned.
func ExampleShortestPath_noPath() {
	g := core.NewGraph()
	g.AddNodes(core.NewNode("A"), core.NewNode("B"), core.NewNode("E"))
	g.AddEdge(core.NewEdge("ab", "A", "B", 1))

	_, _, err := dijkstra.ShortestPath(g, "A", "E")
	fmt.Println(errors.Is(err, dijkstra.ErrNoPathFound))
	// Output: true
}
