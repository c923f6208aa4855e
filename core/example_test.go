package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/kipple/core"
)

// ExampleGraph_AddEdge shows that a repeated connection reports the existing edge.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddVertex(0)
	_ = g.AddVertex(1)

	id, _ := g.AddEdge(1, 0)
	again, err := g.AddEdge(1, 0)
	fmt.Println(id, again, errors.Is(err, core.ErrMultiEdgeNotAllowed), len(g.Edges()))

	// Output:
	// e1 e1 true 1
}
