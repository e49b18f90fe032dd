package core_test

import (
	"fmt"

	"github.com/katalvlaran/hypergraph/core"
)

// ExampleGraph demonstrates the engine's defining behavior: giving two
// vertices the same name collapses them into one, and every edge that
// referenced the absorbed vertex follows the survivor - merging edges
// that thereby become equal.
func ExampleGraph() {
	sys := core.NewGraphSystem()
	g, _ := sys.CreateGraph("water")

	bond, _ := g.CreateVertexID("bond")
	oxygen, _ := g.CreateVertexID("o1")
	_ = oxygen.AddName("O")
	hydrogen, _ := g.CreateVertexID("h1")
	_ = hydrogen.AddName("H")

	// Two bonds drawn independently between the same two atoms.
	e1, _ := g.CreateEdgeID("b1", bond)
	_ = e1.AddVertex(oxygen)
	_ = e1.AddVertex(hydrogen)

	other, _ := g.CreateVertexID("h2")
	e2, _ := g.CreateEdgeID("b2", bond)
	_ = e2.AddVertex(oxygen)
	_ = e2.AddVertex(other)

	fmt.Println("edges before:", g.EdgeCount())

	// Naming h2 "H" reveals it is the same atom as h1; the atoms merge
	// and the two bonds, now structurally equal, merge with them.
	_ = other.AddName("H")

	fmt.Println("edges after:", g.EdgeCount())
	surv, _ := g.ConstructByID("b2")
	fmt.Println("b2 resolves to:", surv.ID())
	h, _ := g.VertexByName("H")
	fmt.Println("H is:", h.ID())
	// Output:
	// edges before: 2
	// edges after: 1
	// b2 resolves to: b1
	// H is: h1
}

// ExampleVertex_AddProperty shows property attachment and the numeric
// interpretations of the stored string value.
func ExampleVertex_AddProperty() {
	sys := core.NewGraphSystem()
	g, _ := sys.CreateGraph("table")

	mass, _ := g.CreateVertexID("mass")
	carbon, _ := g.CreateVertexID("c")
	_ = carbon.AddName("C")

	p, _ := carbon.AddProperty(mass, "12.011")
	f, _ := p.Float64()
	fmt.Printf("%.3f\n", f)
	// Output:
	// 12.011
}
