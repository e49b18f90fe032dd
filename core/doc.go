// Package core implements a mutable hypergraph store whose defining
// behavior is automatic structural merging: whenever a mutation makes
// two constructs structurally equal, the engine collapses them into one
// and leaves a permanent redirect behind.
//
// # What
//
//   - Graphs own vertices, hyperedges and properties in one ID namespace.
//   - Vertices carry name sets, type sets (other vertices) and property
//     sets; edges carry a type vertex and a participant-vertex set.
//   - A vertex may front ("proxy") a non-vertex construct, letting an
//     edge or property carry a name and participate in edges.
//   - Two live vertices never share the same (names, types, properties)
//     triple; two live edges never share the same (type, participants)
//     pair. These hold after every public mutator returns.
//   - Merged-away IDs resolve transitively to the survivor forever.
//
// # How merging works
//
// Mutators report to the owning graph synchronously. The graph
// reindexes the mutated construct in a structural-hash bucket, confirms
// bucket hits with deep signature equality, and merges the mutated
// construct into the pre-mutation incumbent. Absorbing a vertex rewrites
// every reference to it (edge participants, type references, property
// types), which can reveal further equalities and cascade into edge
// merges. All of that completes before the mutator returns.
//
// # Determinism
//
// Enumerations return constructs sorted by ID, cascade sweeps iterate
// snapshots in sorted order, and the survivor of a merge is always the
// construct that existed before the triggering mutation.
//
// # Concurrency
//
// None. A graph is single-owner and performs no locking; serialize
// access externally if you must share one.
package core
