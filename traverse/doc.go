// Package traverse provides a production-grade breadth-first traversal
// over a core.Graph, following hyperedge co-membership.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     where one hop crosses one hyperedge shared by both endpoints.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Hops: map from vertex → hop distance from start
//   - Parent: map from vertex → its predecessor in the traversal tree
//   - Supports functional hooks:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows skipping whole hyperedges via WithEdgeFilter.
//   - Honors MaxHops limit (h>0) or explicit "no limit" (h==0).
//
// Why
//
//   - Discover connected fragments: every vertex reachable from an atom
//     through shared bonds belongs to the same fragment.
//   - Compute hop distances between constructs in O(V + M) time, where
//     M is the total membership count across all hyperedges.
//   - Foundation for reachability and component queries on top of the
//     merging engine.
//
// Determinism
//
//	Vertex.Edges and Edge.Vertices enumerate in sorted ID order, and the
//	walker expands neighbors in that order, so the visit sequence is
//	fully reproducible for a given graph state.
//
// Merged IDs
//
//	The start ID is resolved through the graph's redirection table, so a
//	traversal may be started from an ID that was merged away; it begins
//	at the survivor. All IDs reported in Result are live survivor IDs.
//
// Usage
//
//	// Basic traversal with no options:
//	result, err := traverse.Connected(g, "start")
//	if err != nil {
//	    // handle ErrGraphNil, ErrStartNotFound, ErrOptionViolation,
//	    // or a hook error
//	}
//
//	// With functional options:
//	result, err := traverse.Connected(
//	    g, "start",
//	    traverse.WithContext(ctx),
//	    traverse.WithMaxHops(3),
//	    traverse.WithEdgeFilter(func(e *core.Edge) bool { return true }),
//	    traverse.WithOnEnqueue(func(id string, hops int) { /* ... */ }),
//	    traverse.WithOnVisit(func(id string, hops int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrStartNotFound   if the start ID does not resolve to a vertex.
//   - ErrOptionViolation if an invalid Option is supplied (e.g. negative MaxHops).
//   - Wrapped user-supplied hook errors from OnVisit.
package traverse
