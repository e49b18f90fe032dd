// File: message.go
// Role: The closed mutation-message set and the graph's synchronous
// notification handler.
//
// Vertices and edges report every structural mutation to their owning
// graph through deliver. Delivery is an in-process call made inline by
// the mutating method: by the time a mutator returns, every merge the
// mutation implied has completed. The kind set is closed; the default
// switch arm is statically unreachable and panics if the engine is ever
// extended incorrectly.
package core

// msgKind tags the closed set of mutation messages.
type msgKind uint8

const (
	msgNameAdded msgKind = iota
	msgNameRemoved
	msgTypeAdded
	msgTypeRemoved
	msgPropertyAdded
	msgPropertyRemoved
	msgPropertyValueModified
	msgPropertiesMerged
	msgEdgeVertexAdded
	msgEdgeVertexRemoved
	msgEdgeTypeModified
)

// message carries one mutation report from a construct to its graph.
// vertex is set for vertex-originated kinds, edge for edge-originated
// kinds; the remaining fields are payload for specific kinds.
type message struct {
	kind   msgKind
	vertex *Vertex
	edge   *Edge

	name       string // msgNameAdded, msgNameRemoved
	propertyID string // msgPropertyRemoved, msgPropertiesMerged (survivor)
	otherID    string // msgPropertiesMerged (absorbed)
	oldTypeID  string // msgEdgeTypeModified
	newTypeID  string // msgEdgeTypeModified
}

// deliver applies the structural consequence of one mutation message:
// reindexing the originating construct and merging it with whatever
// live construct it has become equal to.
func (g *Graph) deliver(m message) {
	switch m.kind {
	case msgNameAdded:
		g.onNameAdded(m.vertex, m.name)
	case msgNameRemoved:
		g.onNameRemoved(m.vertex, m.name)
	case msgTypeAdded, msgTypeRemoved, msgPropertyAdded, msgPropertyRemoved, msgPropertyValueModified:
		g.vertexChanged(m.vertex)
	case msgPropertiesMerged:
		g.onPropertiesMerged(m.vertex, m.propertyID, m.otherID)
	case msgEdgeVertexAdded, msgEdgeVertexRemoved:
		g.edgeChanged(m.edge)
	case msgEdgeTypeModified:
		g.log.Debug("edge type modified",
			"edge", m.edge.id, "old", m.oldTypeID, "new", m.newTypeID)
		g.edgeChanged(m.edge)
	default:
		violate("unrecognized message kind %d", m.kind)
	}
}

// onNameAdded updates the name index, merging the mutated vertex into
// the incumbent holder when the name is already taken. One name maps to
// at most one live vertex; the invariant is enforced by merging, never
// by rejection.
func (g *Graph) onNameAdded(v *Vertex, name string) {
	if otherID, ok := g.names[name]; ok {
		if other, live := g.liveVertex(otherID); live && other != v {
			g.mergeVertices(other, v)
			return
		}
	}
	g.names[name] = v.id
	g.vertexChanged(v)
}

// onNameRemoved drops the index entry if it still points at v, then
// re-evaluates v: losing a name can make it equal to another vertex.
func (g *Graph) onNameRemoved(v *Vertex, name string) {
	if otherID, ok := g.names[name]; ok && g.resolveID(otherID) == v.id {
		delete(g.names, name)
	}
	g.vertexChanged(v)
}

// onPropertiesMerged retires the absorbed property as a redirect to the
// survivor and re-evaluates the owning vertex.
func (g *Graph) onPropertiesMerged(v *Vertex, survivorID, absorbedID string) {
	p, ok := g.liveProperty(absorbedID)
	if !ok {
		violate("properties-merged message for unknown property %q", absorbedID)
	}
	delete(g.properties, p.id)
	g.redirectConstruct(p.id, survivorID)
	g.log.Debug("merged properties", "vertex", v.id, "survivor", survivorID, "absorbed", absorbedID)
	g.vertexChanged(v)
}

// vertexChanged reindexes v after a structural mutation and merges it
// into a structurally equal incumbent if one exists.
func (g *Graph) vertexChanged(v *Vertex) {
	g.reindexVertex(v)
	if cand := g.vertexMergeCandidate(v); cand != nil {
		g.mergeVertices(cand, v)
	}
}

// edgeChanged reindexes e after a structural mutation and merges it
// into a structurally equal incumbent if one exists.
func (g *Graph) edgeChanged(e *Edge) {
	g.reindexEdge(e)
	if cand := g.edgeMergeCandidate(e); cand != nil {
		g.mergeEdges(cand, e)
	}
}
