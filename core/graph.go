// File: graph.go
// Role: Graph construct and facade: owns every vertex, edge and
// property in one namespace, exposes creation, lookup, proxying and
// removal, and receives every mutation notification.
package core

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// Graph owns all constructs of one hypergraph namespace. All mutation
// flows through the graph's notification handler, so the structural
// uniqueness invariants hold whenever a public method returns.
//
// A Graph is single-owner: it performs no internal locking and must not
// be mutated from more than one goroutine.
type Graph struct {
	id     string
	system *GraphSystem // non-owning; nil once removed from the system
	log    *log.Logger

	vertices   map[string]*Vertex
	edges      map[string]*Edge
	properties map[string]*Property

	registry  map[string]Construct // all live constructs, one ID namespace
	redirects map[string]string    // absorbed ID -> survivor ID

	names         map[string]string // vertex name -> vertex ID
	vertexBuckets map[uint64]map[string]struct{}
	edgeBuckets   map[uint64]map[string]struct{}

	proxy string // vertex ID proxying this graph, "" if none
}

// newGraph allocates an empty graph owned by s.
func newGraph(id string, s *GraphSystem) *Graph {
	g := &Graph{
		id:            id,
		system:        s,
		log:           s.log.With("graph", id),
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		properties:    make(map[string]*Property),
		registry:      make(map[string]Construct),
		redirects:     make(map[string]string),
		names:         make(map[string]string),
		vertexBuckets: make(map[uint64]map[string]struct{}),
		edgeBuckets:   make(map[uint64]map[string]struct{}),
	}
	g.registry[id] = g
	return g
}

// ID returns the graph identifier.
func (g *Graph) ID() string { return g.id }

// Kind reports KindGraph.
func (g *Graph) Kind() Kind { return KindGraph }

// Graph returns the receiver; a graph is its own owner.
func (g *Graph) Graph() *Graph { return g }

// System returns the owning GraphSystem. Calling it on a graph that has
// been removed from its system is a programming error and panics.
func (g *Graph) System() *GraphSystem {
	if g.system == nil {
		violate("graph %q is detached from its system", g.id)
	}
	return g.system
}

// Proxy returns the vertex fronting this graph, if any.
func (g *Graph) Proxy() (*Vertex, bool) {
	if g.proxy == "" {
		return nil, false
	}
	return g.liveVertex(g.proxy)
}

// CreateVertex creates a vertex with a fresh generated ID. A fresh
// vertex has no structural content yet and never merges at creation.
func (g *Graph) CreateVertex() *Vertex {
	v, err := g.CreateVertexID(g.newID(vertexIDPrefix))
	if err != nil {
		violate("generated vertex id rejected: %v", err)
	}
	return v
}

// CreateVertexID creates a vertex under a caller-supplied ID. The ID
// must satisfy the identifier syntax rule and collide with no live or
// retired ID in this graph.
func (g *Graph) CreateVertexID(id string) (*Vertex, error) {
	if !ValidIdentifier(id) {
		return nil, fmt.Errorf("create vertex %q: %w", id, ErrInvalidIdentifier)
	}
	if g.idTaken(id) {
		return nil, fmt.Errorf("create vertex %q: %w", id, ErrDuplicateID)
	}
	v := &Vertex{
		id:         id,
		graph:      g,
		names:      make(map[string]struct{}),
		types:      make(map[string]struct{}),
		properties: make(map[string]struct{}),
		edges:      make(map[string]struct{}),
	}
	g.vertices[id] = v
	g.registry[id] = v
	v.hash = g.vertexHash(v)
	bucketAdd(g.vertexBuckets, v.hash, id)
	return v, nil
}

// CreateEdge creates a hyperedge of the given type with a fresh
// generated ID and no participants.
func (g *Graph) CreateEdge(typ *Vertex) (*Edge, error) {
	return g.CreateEdgeID(g.newID(edgeIDPrefix), typ)
}

// CreateEdgeID creates a hyperedge under a caller-supplied ID.
func (g *Graph) CreateEdgeID(id string, typ *Vertex) (*Edge, error) {
	if !ValidIdentifier(id) {
		return nil, fmt.Errorf("create edge %q: %w", id, ErrInvalidIdentifier)
	}
	if g.idTaken(id) {
		return nil, fmt.Errorf("create edge %q: %w", id, ErrDuplicateID)
	}
	if typ == nil {
		return nil, fmt.Errorf("create edge %q: %w", id, ErrNilConstruct)
	}
	tt, ok := typ.live()
	if !ok {
		return nil, fmt.Errorf("create edge %q: %w", id, ErrConstructNotFound)
	}
	if tt.graph != g {
		return nil, fmt.Errorf("create edge %q: %w", id, ErrForeignConstruct)
	}
	e := &Edge{
		id:      id,
		graph:   g,
		typeID:  tt.id,
		members: make(map[string]struct{}),
	}
	g.edges[id] = e
	g.registry[id] = e
	e.hash = g.edgeHash(e)
	bucketAdd(g.edgeBuckets, e.hash, id)
	return e, nil
}

// ProxyConstruct creates a fresh vertex fronting c, so a non-vertex
// construct can carry names and participate in edges. A construct holds
// at most one proxy and a vertex fronts at most one construct.
func (g *Graph) ProxyConstruct(c Construct) (*Vertex, error) {
	if c == nil {
		return nil, fmt.Errorf("proxy: %w", ErrNilConstruct)
	}
	if c.Kind() == KindVertex {
		return nil, fmt.Errorf("proxy: %w", ErrProxyVertex)
	}
	if c.Graph() != g {
		return nil, fmt.Errorf("proxy: %w", ErrForeignConstruct)
	}
	live, ok := g.liveConstruct(c.ID())
	if !ok {
		return nil, fmt.Errorf("proxy: %w", ErrConstructNotFound)
	}
	switch t := live.(type) {
	case *Edge:
		if t.proxy != "" {
			return nil, fmt.Errorf("proxy edge %q: %w", t.id, ErrProxyTaken)
		}
		v := g.CreateVertex()
		v.proxied = t.id
		t.proxy = v.id
		return v, nil
	case *Property:
		if t.proxy != "" {
			return nil, fmt.Errorf("proxy property %q: %w", t.id, ErrProxyTaken)
		}
		v := g.CreateVertex()
		v.proxied = t.id
		t.proxy = v.id
		return v, nil
	case *Graph:
		if t.proxy != "" {
			return nil, fmt.Errorf("proxy graph %q: %w", t.id, ErrProxyTaken)
		}
		v := g.CreateVertex()
		v.proxied = t.id
		t.proxy = v.id
		return v, nil
	default:
		violate("proxy request for unexpected construct kind %s", live.Kind())
		return nil, nil
	}
}

// ConstructByID resolves id through the redirector and returns the
// surviving live construct. Unknown IDs return absence, not an error.
func (g *Graph) ConstructByID(id string) (Construct, bool) {
	return g.liveConstruct(id)
}

// VertexByName returns the unique live vertex carrying name. One name
// maps to at most one vertex; the merge algorithm enforces this.
func (g *Graph) VertexByName(name string) (*Vertex, bool) {
	id, ok := g.names[name]
	if !ok {
		return nil, false
	}
	return g.liveVertex(id)
}

// VerticesByType returns all live vertices whose type set contains t,
// sorted by ID.
func (g *Graph) VerticesByType(t *Vertex) []*Vertex {
	if t == nil {
		return nil
	}
	tid := g.resolveID(t.id)
	var out []*Vertex
	for _, v := range g.vertices {
		if v.hasResolvedType(tid) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// EdgesByType returns all live edges typed by t, sorted by ID.
func (g *Graph) EdgesByType(t *Vertex) []*Edge {
	if t == nil {
		return nil
	}
	tid := g.resolveID(t.id)
	var out []*Edge
	for _, e := range g.edges {
		if g.resolveID(e.typeID) == tid {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Vertices returns the IDs of all live vertices sorted lexicographically.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Edges returns the IDs of all live edges sorted lexicographically.
func (g *Graph) Edges() []string {
	out := make([]string, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// PropertyCount returns the number of live properties.
func (g *Graph) PropertyCount() int { return len(g.properties) }

// Remove destroys a live construct and detaches it from every index and
// association. Removing a vertex drops its properties, withdraws it
// from every edge it participates in (which can itself trigger edge
// merges), and cascades into any edge or property typed by it. Removing
// an edge also removes its proxy vertex. Graphs are removed through
// GraphSystem.RemoveGraph.
func (g *Graph) Remove(c Construct) error {
	if c == nil {
		return fmt.Errorf("remove: %w", ErrNilConstruct)
	}
	if c.Graph() != g {
		return fmt.Errorf("remove: %w", ErrForeignConstruct)
	}
	switch c.Kind() {
	case KindVertex:
		v, ok := g.liveVertex(c.ID())
		if !ok {
			return fmt.Errorf("remove vertex %q: %w", c.ID(), ErrConstructNotFound)
		}
		return g.removeVertex(v)
	case KindEdge:
		e, ok := g.liveEdge(c.ID())
		if !ok {
			return fmt.Errorf("remove edge %q: %w", c.ID(), ErrConstructNotFound)
		}
		return g.removeEdge(e)
	case KindProperty:
		p, ok := g.liveProperty(c.ID())
		if !ok {
			return fmt.Errorf("remove property %q: %w", c.ID(), ErrConstructNotFound)
		}
		return g.removeProperty(p)
	case KindGraph:
		return fmt.Errorf("remove graph %q: %w", c.ID(), ErrNotRemovable)
	default:
		violate("remove request for unexpected construct kind %s", c.Kind())
		return nil
	}
}

// removeVertex destroys v and everything that cannot outlive it.
func (g *Graph) removeVertex(v *Vertex) error {
	g.log.Debug("removing vertex", "vertex", v.id)

	// Own properties die with the vertex; no owner reindex needed.
	for pid := range v.properties {
		if p, ok := g.liveProperty(pid); ok {
			g.dropProperty(p)
		}
	}
	v.properties = make(map[string]struct{})

	// Withdraw from participating edges through the normal mutation
	// path so shrinking edges still merge with their equals.
	for _, eid := range sortedKeys(v.edges) {
		if e, ok := g.liveEdge(eid); ok {
			if err := e.RemoveVertex(v); err != nil {
				return err
			}
		}
	}

	// Constructs typed by v cannot keep a dangling type reference:
	// edges typed by v die with it, vertices and properties drop the
	// type (which can trigger their own merges).
	typedVertices, typedEdges, typedProperties := g.referencingType(v.id)
	for _, eid := range typedEdges {
		if e, ok := g.liveEdge(eid); ok {
			if err := g.removeEdge(e); err != nil {
				return err
			}
		}
	}
	for _, pid := range typedProperties {
		if p, ok := g.liveProperty(pid); ok {
			if err := g.removeProperty(p); err != nil {
				return err
			}
		}
	}
	for _, vid := range typedVertices {
		if w, ok := g.liveVertex(vid); ok && w != v {
			if err := w.RemoveType(v); err != nil {
				return err
			}
		}
	}

	// The vertex may have been absorbed by a merge the detachment
	// cascade triggered; in that case there is nothing left to delete.
	self, ok := g.liveVertex(v.id)
	if !ok || self != v {
		return nil
	}

	if self.proxied != "" {
		g.setProxyBackref(self.proxied, "")
		self.proxied = ""
	}
	for name := range self.names {
		if id, ok := g.names[name]; ok && g.resolveID(id) == self.id {
			delete(g.names, name)
		}
	}
	bucketRemove(g.vertexBuckets, self.hash, self.id)
	delete(g.vertices, self.id)
	delete(g.registry, self.id)
	return nil
}

// removeEdge destroys e, detaching every participant and removing the
// edge's proxy vertex with it.
func (g *Graph) removeEdge(e *Edge) error {
	g.log.Debug("removing edge", "edge", e.id)

	for vid := range e.members {
		if v, ok := g.liveVertex(vid); ok {
			delete(v.edges, e.id)
		}
	}
	e.members = make(map[string]struct{})

	proxyID := e.proxy
	e.proxy = ""
	bucketRemove(g.edgeBuckets, e.hash, e.id)
	delete(g.edges, e.id)
	delete(g.registry, e.id)

	if proxyID != "" {
		if pv, ok := g.liveVertex(proxyID); ok {
			pv.proxied = ""
			return g.removeVertex(pv)
		}
	}
	return nil
}

// removeProperty destroys p, re-evaluating the owning vertex whose
// signature just shrank.
func (g *Graph) removeProperty(p *Property) error {
	owner, hasOwner := g.liveVertex(p.owner)
	g.dropProperty(p)
	if hasOwner {
		delete(owner.properties, p.id)
		g.deliver(message{kind: msgPropertyRemoved, vertex: owner})
	}
	return nil
}

// dropProperty deletes p from the indexes and removes its proxy vertex.
func (g *Graph) dropProperty(p *Property) {
	proxyID := p.proxy
	p.proxy = ""
	delete(g.properties, p.id)
	delete(g.registry, p.id)
	if proxyID != "" {
		if pv, ok := g.liveVertex(proxyID); ok {
			pv.proxied = ""
			_ = g.removeVertex(pv)
		}
	}
}

// sortedKeys snapshots a set's keys in lexicographic order, so cascade
// iteration is deterministic while the underlying set mutates.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
