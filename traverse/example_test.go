package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/hypergraph/core"
	"github.com/katalvlaran/hypergraph/traverse"
)

// ExampleConnected walks a small molecule fragment and reports the hop
// distance of every reached atom.
func ExampleConnected() {
	sys := core.NewGraphSystem()
	g, _ := sys.CreateGraph("mol")

	bond, _ := g.CreateVertexID("bond")
	c, _ := g.CreateVertexID("c")
	h1, _ := g.CreateVertexID("h1")
	o, _ := g.CreateVertexID("o")

	e1, _ := g.CreateEdgeID("b1", bond)
	_ = e1.AddVertex(c)
	_ = e1.AddVertex(h1)
	e2, _ := g.CreateEdgeID("b2", bond)
	_ = e2.AddVertex(c)
	_ = e2.AddVertex(o)

	res, _ := traverse.Connected(g, "c")
	for _, id := range res.Order {
		fmt.Printf("%s at hop %d\n", id, res.Hops[id])
	}
	// Output:
	// c at hop 0
	// h1 at hop 1
	// o at hop 1
}
