// File: vertex.go
// Role: Vertex construct: names, types, properties, edge memberships,
// optional proxied construct, and the mutators that report to the graph.
//
// Every mutator resolves the receiver through the redirector first, so
// a handle kept across a merge keeps working against the survivor.
// Cross-references (types, properties, edges, proxied) are stored as
// IDs; the accessors resolve them to live constructs on demand.
package core

import (
	"fmt"
	"sort"
)

// Vertex is a node of the hypergraph. It carries zero or more names,
// zero or more type vertices ("is-instance-of" references), a set of
// properties, the set of hyperedges it participates in, and optionally
// fronts one non-vertex construct as its proxy.
type Vertex struct {
	id    string
	graph *Graph

	names      map[string]struct{}
	types      map[string]struct{} // vertex IDs
	properties map[string]struct{} // property IDs
	edges      map[string]struct{} // edge IDs

	proxied string // ID of the fronted construct, "" if none
	hash    uint64 // current structural bucket key
}

// ID returns the vertex identifier.
func (v *Vertex) ID() string { return v.id }

// Kind reports KindVertex.
func (v *Vertex) Kind() Kind { return KindVertex }

// Graph returns the owning graph.
func (v *Vertex) Graph() *Graph { return v.graph }

// live resolves the receiver to the surviving live vertex.
func (v *Vertex) live() (*Vertex, bool) {
	return v.graph.liveVertex(v.id)
}

// Names returns the vertex's names sorted lexicographically.
func (v *Vertex) Names() []string {
	self, ok := v.live()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(self.names))
	for name := range self.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasName reports whether the vertex carries name.
func (v *Vertex) HasName(name string) bool {
	self, ok := v.live()
	if !ok {
		return false
	}
	_, has := self.names[name]
	return has
}

// Types returns the vertex's type vertices sorted by ID.
func (v *Vertex) Types() []*Vertex {
	self, ok := v.live()
	if !ok {
		return nil
	}
	out := make([]*Vertex, 0, len(self.types))
	seen := make(map[string]struct{}, len(self.types))
	for tid := range self.types {
		t, live := v.graph.liveVertex(tid)
		if !live {
			continue
		}
		if _, dup := seen[t.id]; dup {
			continue
		}
		seen[t.id] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// HasType reports whether t is among the vertex's types.
func (v *Vertex) HasType(t *Vertex) bool {
	self, ok := v.live()
	if t == nil || !ok {
		return false
	}
	tid := v.graph.resolveID(t.id)
	for stored := range self.types {
		if v.graph.resolveID(stored) == tid {
			return true
		}
	}
	return false
}

// Properties returns the vertex's properties sorted by ID.
func (v *Vertex) Properties() []*Property {
	self, ok := v.live()
	if !ok {
		return nil
	}
	out := make([]*Property, 0, len(self.properties))
	for pid := range self.properties {
		if p, live := v.graph.liveProperty(pid); live {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Edges returns the hyperedges the vertex participates in, sorted by ID.
func (v *Vertex) Edges() []*Edge {
	self, ok := v.live()
	if !ok {
		return nil
	}
	out := make([]*Edge, 0, len(self.edges))
	seen := make(map[string]struct{}, len(self.edges))
	for eid := range self.edges {
		e, live := v.graph.liveEdge(eid)
		if !live {
			continue
		}
		if _, dup := seen[e.id]; dup {
			continue
		}
		seen[e.id] = struct{}{}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Proxied returns the non-vertex construct this vertex fronts, if any.
func (v *Vertex) Proxied() (Construct, bool) {
	self, ok := v.live()
	if !ok || self.proxied == "" {
		return nil, false
	}
	return v.graph.liveConstruct(self.proxied)
}

// AddName attaches name to the vertex. The name must satisfy the
// identifier syntax rule. If another live vertex already carries the
// name, the two vertices are merged and the incumbent survives; the
// receiver's handle keeps resolving to the survivor. Adding a name the
// vertex already carries is a no-op.
func (v *Vertex) AddName(name string) error {
	self, ok := v.live()
	if !ok {
		return fmt.Errorf("add name %q: %w", name, ErrConstructNotFound)
	}
	if !ValidIdentifier(name) {
		return fmt.Errorf("add name %q: %w", name, ErrInvalidIdentifier)
	}
	if _, has := self.names[name]; has {
		return nil
	}
	self.names[name] = struct{}{}
	self.graph.deliver(message{kind: msgNameAdded, vertex: self, name: name})
	return nil
}

// RemoveName detaches name from the vertex. Removing an absent name
// does nothing. Losing a name can make the vertex structurally equal to
// another vertex, in which case the two merge.
func (v *Vertex) RemoveName(name string) error {
	self, ok := v.live()
	if !ok {
		return fmt.Errorf("remove name %q: %w", name, ErrConstructNotFound)
	}
	if _, has := self.names[name]; !has {
		return nil
	}
	delete(self.names, name)
	self.graph.deliver(message{kind: msgNameRemoved, vertex: self, name: name})
	return nil
}

// AddType records t as a type of the vertex. A vertex can never be its
// own type; the attempt fails with ErrSelfType and leaves the type set
// unchanged. Adding a type the vertex already has is a no-op.
func (v *Vertex) AddType(t *Vertex) error {
	self, ok := v.live()
	if !ok {
		return fmt.Errorf("add type: %w", ErrConstructNotFound)
	}
	if t == nil {
		return fmt.Errorf("add type: %w", ErrNilConstruct)
	}
	tt, ok := t.live()
	if !ok {
		return fmt.Errorf("add type: %w", ErrConstructNotFound)
	}
	if tt.graph != self.graph {
		return fmt.Errorf("add type: %w", ErrForeignConstruct)
	}
	if tt == self {
		return fmt.Errorf("add type %q: %w", tt.id, ErrSelfType)
	}
	if self.hasResolvedType(tt.id) {
		return nil
	}
	self.types[tt.id] = struct{}{}
	self.graph.deliver(message{kind: msgTypeAdded, vertex: self})
	return nil
}

// RemoveType detaches t from the vertex's type set; absent types are a
// no-op. Losing a type can trigger a merge with an equal vertex.
func (v *Vertex) RemoveType(t *Vertex) error {
	self, ok := v.live()
	if !ok {
		return fmt.Errorf("remove type: %w", ErrConstructNotFound)
	}
	if t == nil {
		return fmt.Errorf("remove type: %w", ErrNilConstruct)
	}
	tid := self.graph.resolveID(t.id)
	removed := false
	for stored := range self.types {
		if self.graph.resolveID(stored) == tid {
			delete(self.types, stored)
			removed = true
		}
	}
	if !removed {
		return nil
	}
	self.graph.deliver(message{kind: msgTypeRemoved, vertex: self})
	return nil
}

// AddProperty attaches a property of the given type and value to the
// vertex. A property with the same (type, value) pair already on the
// vertex is returned as-is; property sets carry no duplicates. The
// returned property is the live survivor even when the addition
// triggered a vertex merge.
func (v *Vertex) AddProperty(t *Vertex, value string) (*Property, error) {
	self, ok := v.live()
	if !ok {
		return nil, fmt.Errorf("add property: %w", ErrConstructNotFound)
	}
	if t == nil {
		return nil, fmt.Errorf("add property: %w", ErrNilConstruct)
	}
	tt, ok := t.live()
	if !ok {
		return nil, fmt.Errorf("add property: %w", ErrConstructNotFound)
	}
	if tt.graph != self.graph {
		return nil, fmt.Errorf("add property: %w", ErrForeignConstruct)
	}
	if existing := self.propertyWith(tt.id, value); existing != nil {
		return existing, nil
	}
	g := self.graph
	p := &Property{
		id:     g.newID(propertyIDPrefix),
		graph:  g,
		owner:  self.id,
		typeID: tt.id,
		value:  value,
	}
	g.properties[p.id] = p
	g.registry[p.id] = p
	self.properties[p.id] = struct{}{}
	g.deliver(message{kind: msgPropertyAdded, vertex: self})
	live, _ := g.liveProperty(p.id)
	return live, nil
}

// RemoveProperty detaches and destroys p. A property not attached to
// this vertex is a no-op.
func (v *Vertex) RemoveProperty(p *Property) error {
	self, ok := v.live()
	if !ok {
		return fmt.Errorf("remove property: %w", ErrConstructNotFound)
	}
	if p == nil {
		return fmt.Errorf("remove property: %w", ErrNilConstruct)
	}
	pp, ok := self.graph.liveProperty(p.id)
	if !ok {
		return nil
	}
	if self.graph.resolveID(pp.owner) != self.id {
		return nil
	}
	return self.graph.removeProperty(pp)
}

// hasResolvedType reports whether tid (already resolved) is in the type set.
func (v *Vertex) hasResolvedType(tid string) bool {
	for stored := range v.types {
		if v.graph.resolveID(stored) == tid {
			return true
		}
	}
	return false
}

// propertyWith returns the live property with the given resolved type
// and value, if the vertex carries one.
func (v *Vertex) propertyWith(tid, value string) *Property {
	for pid := range v.properties {
		p, ok := v.graph.liveProperty(pid)
		if !ok {
			continue
		}
		if v.graph.resolveID(p.typeID) == tid && p.value == value {
			return p
		}
	}
	return nil
}

// replaceTypeRef swaps a type reference from oldID to newID after a
// merge redirected the type vertex. Reports whether the set changed.
// Swapping to the vertex itself drops the reference instead: a vertex
// is never its own type.
func (v *Vertex) replaceTypeRef(oldID, newID string) bool {
	if _, has := v.types[oldID]; !has {
		return false
	}
	delete(v.types, oldID)
	if newID != v.id {
		v.types[newID] = struct{}{}
	}
	return true
}
