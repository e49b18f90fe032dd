// Package traverse provides breadth-first traversal over a core.Graph,
// following hyperedge co-membership: two vertices are neighbors when at
// least one edge contains both.
//
// Connected explores vertices in increasing hop count from a start
// vertex, with optional hooks, hop limiting, and edge filtering.
package traverse

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hypergraph/core"
)

// queueItem pairs a vertex ID with its hop count and its parent's ID.
type queueItem struct {
	id     string
	hops   int
	parent string // empty for root
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Connected runs a breadth-first traversal on g starting from startID,
// applying any number of functional Options. Two vertices are adjacent
// when they share a hyperedge; the hop count is the number of edges
// crossed from the start.
//
// startID is resolved through the graph's redirection table first, so a
// merged-away ID names its survivor. Returns ErrGraphNil or
// ErrStartNotFound for invalid input, ErrOptionViolation for bad
// options, or any user-supplied hook error.
func Connected(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Resolve the start vertex (merged IDs follow their survivor).
	c, ok := g.ConstructByID(startID)
	if !ok {
		return nil, ErrStartNotFound
	}
	start, ok := c.(*core.Vertex)
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %s", ErrStartNotFound, startID, c.Kind())
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed the queue with the start vertex (no parent)
	w.enqueue(start.ID(), 0, "")
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at hop count h, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id string, h int, parent string) {
	w.visited[id] = true
	w.res.Hops[id] = h
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, h)
	w.queue = append(w.queue, queueItem{id: id, hops: h, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.hops); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors walks the vertex's hyperedges in ID order and the
// members of each edge in ID order, applying FilterEdge and MaxHops,
// and enqueues each unseen co-member. Order is deterministic because
// both enumerations are sorted.
func (w *walker) enqueueNeighbors(item queueItem) error {
	c, ok := w.graph.ConstructByID(item.id)
	if !ok {
		// Removed by a hook mid-traversal; nothing to expand.
		return nil
	}
	v, ok := c.(*core.Vertex)
	if !ok {
		return nil
	}

	nextHops := item.hops + 1
	if w.opts.MaxHops > 0 && nextHops > w.opts.MaxHops {
		return nil
	}

	for _, e := range v.Edges() {
		// cancellation check inside edge iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterEdge(e) {
			continue
		}
		for _, nbr := range e.Vertices() {
			id := nbr.ID()
			if id == item.id || w.visited[id] {
				continue
			}
			w.enqueue(id, nextHops, item.id)
		}
	}
	return nil
}
