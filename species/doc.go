// Package species layers a chemistry vocabulary over the merging
// hypergraph engine.
//
// What
//
//   - Atom: a vertex tagged with the well-known "atom" type vertex and
//     carrying exactly one user name.
//   - Fragment: a hyperedge tagged with the well-known "fragment" type
//     vertex, spanning its participant atoms, proxied by a vertex that
//     carries the fragment name.
//   - ComplexGraph wraps one core.Graph and exposes
//     AddAtom / AddFragment / RemoveAtom / RemoveFragment plus lookups
//     and sorted enumerations.
//
// Naming
//
//	Atom and fragment names obey the same identifier syntax rule as
//	construct IDs and share the graph's single name index, so a name
//	can belong to at most one construct. The well-known type names
//	"atom" and "fragment" are reserved.
//
// Merging
//
//	The layer inherits the engine's structural identity: building a
//	fragment over the same atom set as an existing fragment collapses
//	the two edges, and the new name lands as an alias on the survivor's
//	proxy. Handles returned earlier keep working through redirects.
//
// Removal
//
//	RemoveFragment removes the edge, its proxy vertex, and all
//	participant atoms; after it returns, none of those IDs resolve.
//	RemoveFragment and RemoveAtom on absent names do nothing, per the
//	layer's tolerant removal contract.
package species
