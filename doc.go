// Package hypergraph is an in-memory, mutable hypergraph engine with
// automatic structural merging - from construct primitives to the
// chemistry species layer built on top of them.
//
// 🚀 What is hypergraph?
//
//	A library where identity follows structure:
//		• Constructs: graphs, vertices, hyperedges and properties in one
//		  ID namespace per graph
//		• Merging: two vertices with the same names, types and properties
//		  are the same vertex; two edges over the same participants with
//		  the same type are the same edge - duplicates collapse on the
//		  spot and retired IDs redirect to their survivors forever
//		• Proxies: any non-vertex construct can be fronted by a vertex,
//		  so edges and graphs can be named, typed and connected
//		• Species: atoms and molecule fragments as a thin vocabulary
//		  over the engine
//		• Traversal: breadth-first expansion over shared hyperedges
//
// ✨ Why choose hypergraph?
//
//   - Deterministic – sorted enumerations, reproducible visit orders
//   - Self-normalizing – no duplicate structures can survive a mutation
//   - Transparent – stale handles keep working through redirects
//   - Extensible – functional options and hooks throughout
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — constructs, indexes, the redirector and the merge engine
//	species/  — atoms and fragments (the chemistry vocabulary)
//	traverse/ — breadth-first traversal over hyperedge co-membership
//
// Quick ASCII example:
//
//	    o───h1        naming h2' as "h1" collapses it into h1,
//	    o───h2'       and the two o─h bonds collapse into one.
//
// Dive into the package docs and examples/ for full walk-throughs.
//
//	go get github.com/katalvlaran/hypergraph
package hypergraph
