// File: edge.go
// Role: Hyperedge construct: one type vertex, a participant-vertex set,
// and an optional proxy vertex.
//
// Participants form a set: adding a vertex twice, or holding two stored
// IDs that a merge later makes resolve to the same vertex, collapses to
// a single membership. Equality is therefore by participant set, never
// by multiplicity or insertion order.
package core

import (
	"fmt"
	"sort"
)

// Edge is a typed hyperedge over any number of participant vertices.
type Edge struct {
	id    string
	graph *Graph

	typeID  string              // type vertex ID
	members map[string]struct{} // participant vertex IDs

	proxy string // proxy vertex ID, "" if none
	hash  uint64 // current structural bucket key
}

// ID returns the edge identifier.
func (e *Edge) ID() string { return e.id }

// Kind reports KindEdge.
func (e *Edge) Kind() Kind { return KindEdge }

// Graph returns the owning graph.
func (e *Edge) Graph() *Graph { return e.graph }

// live resolves the receiver to the surviving live edge.
func (e *Edge) live() (*Edge, bool) {
	return e.graph.liveEdge(e.id)
}

// Type returns the edge's type vertex.
func (e *Edge) Type() (*Vertex, bool) {
	self, ok := e.live()
	if !ok {
		return nil, false
	}
	return e.graph.liveVertex(self.typeID)
}

// Vertices returns the participant vertices sorted by ID. Stored IDs
// that a merge made resolve to the same vertex appear once.
func (e *Edge) Vertices() []*Vertex {
	self, ok := e.live()
	if !ok {
		return nil
	}
	out := make([]*Vertex, 0, len(self.members))
	seen := make(map[string]struct{}, len(self.members))
	for vid := range self.members {
		v, live := e.graph.liveVertex(vid)
		if !live {
			continue
		}
		if _, dup := seen[v.id]; dup {
			continue
		}
		seen[v.id] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// HasVertex reports whether v participates in the edge.
func (e *Edge) HasVertex(v *Vertex) bool {
	self, ok := e.live()
	if v == nil || !ok {
		return false
	}
	vid := e.graph.resolveID(v.id)
	for stored := range self.members {
		if e.graph.resolveID(stored) == vid {
			return true
		}
	}
	return false
}

// Proxy returns the vertex fronting this edge, if any.
func (e *Edge) Proxy() (*Vertex, bool) {
	self, ok := e.live()
	if !ok || self.proxy == "" {
		return nil, false
	}
	return e.graph.liveVertex(self.proxy)
}

// AddVertex adds v to the participant set. Adding a participant the
// edge already has is a no-op. Gaining a participant can make the edge
// structurally equal to another live edge, in which case the two merge
// and the incumbent survives.
func (e *Edge) AddVertex(v *Vertex) error {
	self, ok := e.live()
	if !ok {
		return fmt.Errorf("add vertex: %w", ErrConstructNotFound)
	}
	if v == nil {
		return fmt.Errorf("add vertex: %w", ErrNilConstruct)
	}
	vv, ok := v.live()
	if !ok {
		return fmt.Errorf("add vertex: %w", ErrConstructNotFound)
	}
	if vv.graph != self.graph {
		return fmt.Errorf("add vertex: %w", ErrForeignConstruct)
	}
	if self.HasVertex(vv) {
		return nil
	}
	self.members[vv.id] = struct{}{}
	vv.edges[self.id] = struct{}{}
	self.graph.deliver(message{kind: msgEdgeVertexAdded, edge: self})
	return nil
}

// RemoveVertex removes v from the participant set; absent participants
// are a no-op. Losing a participant can trigger a merge with an equal
// edge.
func (e *Edge) RemoveVertex(v *Vertex) error {
	self, ok := e.live()
	if !ok {
		return fmt.Errorf("remove vertex: %w", ErrConstructNotFound)
	}
	if v == nil {
		return fmt.Errorf("remove vertex: %w", ErrNilConstruct)
	}
	vid := self.graph.resolveID(v.id)
	removed := false
	for stored := range self.members {
		if self.graph.resolveID(stored) == vid {
			delete(self.members, stored)
			removed = true
		}
	}
	if !removed {
		return nil
	}
	if vv, live := self.graph.liveVertex(vid); live {
		delete(vv.edges, self.id)
	}
	self.graph.deliver(message{kind: msgEdgeVertexRemoved, edge: self})
	return nil
}

// SetType changes the edge's type vertex. Setting the current type is a
// no-op. A type change can make the edge equal to another live edge,
// triggering a merge.
func (e *Edge) SetType(t *Vertex) error {
	self, ok := e.live()
	if !ok {
		return fmt.Errorf("set type: %w", ErrConstructNotFound)
	}
	if t == nil {
		return fmt.Errorf("set type: %w", ErrNilConstruct)
	}
	tt, ok := t.live()
	if !ok {
		return fmt.Errorf("set type: %w", ErrConstructNotFound)
	}
	if tt.graph != self.graph {
		return fmt.Errorf("set type: %w", ErrForeignConstruct)
	}
	old := self.graph.resolveID(self.typeID)
	if old == tt.id {
		return nil
	}
	self.typeID = tt.id
	self.graph.deliver(message{
		kind: msgEdgeTypeModified, edge: self, oldTypeID: old, newTypeID: tt.id,
	})
	return nil
}

// replaceMember swaps a participant reference from oldID to newID after
// a merge redirected the participant. Reports whether the stored set
// changed; a swap that lands on an existing member collapses.
func (e *Edge) replaceMember(oldID, newID string) bool {
	if _, has := e.members[oldID]; !has {
		return false
	}
	delete(e.members, oldID)
	e.members[newID] = struct{}{}
	return true
}

// replaceType swaps the type reference from oldID to newID after a
// merge redirected the type vertex.
func (e *Edge) replaceType(oldID, newID string) bool {
	if e.typeID != oldID {
		return false
	}
	e.typeID = newID
	return true
}
