// Package traverse provides tunable options and error definitions
// for breadth-first traversal over a core.Graph.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hypergraph/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrStartNotFound is returned when the start ID does not resolve
	// to a live vertex of the graph.
	ErrStartNotFound = errors.New("traverse: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (e.g. negative hop limit), it is recorded
// internally and surfaced as ErrOptionViolation when Connected is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex ID and its hop count from the start.
	OnEnqueue func(id string, hops int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id string, hops int) error

	// MaxHops, if > 0, stops exploring beyond this many edge hops.
	// A value of 0 explicitly disables any hop limit.
	MaxHops int

	// FilterEdge can skip hyperedges by returning false. Vertices
	// reachable only through skipped edges are not visited.
	FilterEdge func(e *core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no hop limit (MaxHops == 0)
//   - no edge filtering
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnEnqueue:  func(string, int) {},
		OnVisit:    func(string, int) error { return nil },
		MaxHops:    0,
		FilterEdge: func(*core.Edge) bool { return true },
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxHops stops the search at the given hop count (exclusive).
//
//	h > 0: limit to h hops
//	h == 0: explicit no hop limit
//	h < 0: invalid option → ErrOptionViolation
func WithMaxHops(h int) Option {
	return func(o *Options) {
		switch {
		case h < 0:
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, h)
		case h == 0:
			// explicit "no limit"
			o.MaxHops = 0
		default:
			o.MaxHops = h
		}
	}
}

// WithEdgeFilter skips hyperedges when fn returns false.
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertex IDs visited, in visit sequence.
//   - Hops: map from vertex ID to its distance (in edge hops) from the start.
//   - Parent: map from vertex ID to its predecessor in the traversal tree.
type Result struct {
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Hops[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
