// File: system.go
// Role: GraphSystem: owns every graph, hands out graph namespaces by
// unique ID, and invalidates a graph's back-handle on removal.
package core

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// GraphSystem owns a set of graphs keyed by unique ID. The system owns
// its graphs; each graph holds only a non-owning back-handle to the
// system, invalidated when the graph is removed.
type GraphSystem struct {
	graphs map[string]*Graph
	log    *log.Logger
}

// NewGraphSystem creates an empty system. Options configure tracing.
func NewGraphSystem(opts ...SystemOption) *GraphSystem {
	s := &GraphSystem{
		graphs: make(map[string]*Graph),
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGraph creates a graph under the given ID. An empty ID requests
// a generated one. Supplied IDs must satisfy the identifier syntax rule
// and be unique among the system's graphs.
func (s *GraphSystem) CreateGraph(id string) (*Graph, error) {
	if id == "" {
		for {
			id = randomID(graphIDPrefix)
			if _, taken := s.graphs[id]; !taken {
				break
			}
		}
	} else {
		if !ValidIdentifier(id) {
			return nil, fmt.Errorf("create graph %q: %w", id, ErrInvalidIdentifier)
		}
		if _, taken := s.graphs[id]; taken {
			return nil, fmt.Errorf("create graph %q: %w", id, ErrDuplicateGraphID)
		}
	}
	g := newGraph(id, s)
	s.graphs[id] = g
	s.log.Debug("graph created", "graph", id)
	return g, nil
}

// Graph returns the managed graph with the given ID, if any.
func (s *GraphSystem) Graph(id string) (*Graph, bool) {
	g, ok := s.graphs[id]
	return g, ok
}

// Graphs returns the managed graph IDs sorted lexicographically.
func (s *GraphSystem) Graphs() []string {
	out := make([]string, 0, len(s.graphs))
	for id := range s.graphs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// RemoveGraph detaches and discards a managed graph. The graph's
// back-handle is invalidated: any later Graph.System call panics.
func (s *GraphSystem) RemoveGraph(id string) error {
	g, ok := s.graphs[id]
	if !ok {
		return fmt.Errorf("remove graph %q: %w", id, ErrConstructNotFound)
	}
	g.system = nil
	delete(s.graphs, id)
	s.log.Debug("graph removed", "graph", id)
	return nil
}
