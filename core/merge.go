// File: merge.go
// Role: The merge/redirect algorithm: when a mutation makes two
// constructs structurally equal, the incumbent absorbs the other's
// associations and the other becomes a permanent redirect. Absorbing a
// vertex ripples into every edge, vertex and property that referenced
// it, which can reveal further equalities and cascade into more merges.
//
// Directionality: target is always the construct that was present
// before the triggering mutation (the pre-mutation incumbent), other
// the construct whose mutation exposed the equality. Keeping the
// incumbent alive keeps proxy identities and held references stable.
package core

// mergeVertices absorbs other into target. Both arguments are resolved
// through the redirector first; a self-merge is a no-op. On return,
// every merge the absorption implied, including cascaded edge merges,
// has completed.
func (g *Graph) mergeVertices(target, other *Vertex) {
	target, ok := g.liveVertex(target.id)
	if !ok {
		return
	}
	other, okOther := g.liveVertex(other.id)
	if !okOther || target == other {
		return
	}
	g.log.Debug("merging vertices", "target", target.id, "absorbed", other.id)

	// Record, before any transfer, everything that references other:
	// the edges it participates in and the constructs typed by it.
	memberEdges := make([]string, 0, len(other.edges))
	for eid := range other.edges {
		memberEdges = append(memberEdges, eid)
	}
	typedVertices, typedEdges, typedProperties := g.referencingType(other.id)

	// Union transfer of names, types, properties, edge memberships.
	for name := range other.names {
		target.names[name] = struct{}{}
		g.names[name] = target.id
	}
	for tid := range other.types {
		rid := g.resolveID(tid)
		if rid == target.id || rid == other.id {
			continue // the union must not make target its own type
		}
		target.types[rid] = struct{}{}
	}
	g.transferProperties(target, other)
	for _, eid := range memberEdges {
		target.edges[eid] = struct{}{}
	}
	if target.proxied == "" && other.proxied != "" {
		target.proxied = other.proxied
		g.setProxyBackref(other.proxied, target.id)
	}

	// Retire other: redirect its ID, drop it from the primary and
	// secondary indexes, reindex target under its widened signature.
	delete(g.vertices, other.id)
	bucketRemove(g.vertexBuckets, other.hash, other.id)
	g.redirectConstruct(other.id, target.id)
	g.reindexVertex(target)

	// Fan the redirection out to every recorded referrer so stored
	// references move from other to target, collecting the constructs
	// whose structure actually changed.
	changedEdges := make(map[string]struct{})
	for _, eid := range memberEdges {
		if e, live := g.liveEdge(eid); live && e.replaceMember(other.id, target.id) {
			changedEdges[e.id] = struct{}{}
		}
	}
	for _, eid := range typedEdges {
		if e, live := g.liveEdge(eid); live && e.replaceType(other.id, target.id) {
			changedEdges[e.id] = struct{}{}
		}
	}
	changedVertices := make(map[string]struct{})
	for _, vid := range typedVertices {
		if w, live := g.liveVertex(vid); live && w != target && w.replaceTypeRef(other.id, target.id) {
			changedVertices[w.id] = struct{}{}
		}
	}
	for _, pid := range typedProperties {
		p, live := g.liveProperty(pid)
		if !live || !p.replaceTypeRef(other.id, target.id) {
			continue
		}
		w, okW := g.liveVertex(p.owner)
		if !okW {
			continue
		}
		// The swap can make p carry the same resolved (type, value)
		// pair as another property on the same vertex; property sets
		// hold no duplicate pairs, so the incumbent absorbs p (which
		// also re-evaluates the owner).
		if g.collapseDuplicateProperty(w, p) {
			continue
		}
		if w != target {
			changedVertices[w.id] = struct{}{}
		}
	}

	// Sweep the candidates. Each hit recurses into mergeEdges or
	// mergeVertices; every recursion retires one construct, so the
	// cascade terminates.
	for eid := range changedEdges {
		if e, live := g.liveEdge(eid); live {
			g.edgeChanged(e)
		}
	}
	for vid := range changedVertices {
		if w, live := g.liveVertex(vid); live && w != target {
			g.vertexChanged(w)
		}
	}
	// The union widened target's own signature; it may now equal a
	// third vertex.
	if t, live := g.liveVertex(target.id); live {
		g.vertexChanged(t)
	}
}

// mergeEdges absorbs other into target. The two are structurally equal
// when called, so the transfer is bookkeeping: participant back-links
// and the proxy association move to the survivor.
func (g *Graph) mergeEdges(target, other *Edge) {
	target, ok := g.liveEdge(target.id)
	if !ok {
		return
	}
	other, okOther := g.liveEdge(other.id)
	if !okOther || target == other {
		return
	}
	g.log.Debug("merging edges", "target", target.id, "absorbed", other.id)

	for vid := range other.members {
		target.members[vid] = struct{}{}
		if v, live := g.liveVertex(vid); live {
			delete(v.edges, other.id)
			v.edges[target.id] = struct{}{}
		}
	}
	if target.proxy == "" && other.proxy != "" {
		target.proxy = other.proxy
		if pv, live := g.liveVertex(other.proxy); live {
			pv.proxied = target.id
		}
	}

	delete(g.edges, other.id)
	bucketRemove(g.edgeBuckets, other.hash, other.id)
	g.redirectConstruct(other.id, target.id)
	g.reindexEdge(target)

	// Retiring other can leave target equal to yet another edge.
	if t, live := g.liveEdge(target.id); live {
		if cand := g.edgeMergeCandidate(t); cand != nil {
			g.mergeEdges(cand, t)
		}
	}
}

// transferProperties moves other's properties onto target, collapsing
// any property whose (type, value) pair target already carries into the
// incumbent pair as a redirect.
func (g *Graph) transferProperties(target, other *Vertex) {
	for pid := range other.properties {
		p, live := g.liveProperty(pid)
		if !live {
			continue
		}
		tid := g.resolveID(p.typeID)
		if existing := target.propertyWith(tid, p.value); existing != nil {
			delete(g.properties, p.id)
			g.redirectConstruct(p.id, existing.id)
			continue
		}
		p.owner = target.id
		target.properties[p.id] = struct{}{}
	}
}

// collapseDuplicateProperty retires p as a redirect to an incumbent
// property on owner that carries the same resolved (type, value) pair,
// if one exists, and re-evaluates owner. Reports whether p was absorbed.
func (g *Graph) collapseDuplicateProperty(owner *Vertex, p *Property) bool {
	tid := g.resolveID(p.typeID)
	for pid := range owner.properties {
		q, live := g.liveProperty(pid)
		if !live || q == p {
			continue
		}
		if g.resolveID(q.typeID) == tid && q.value == p.value {
			delete(owner.properties, p.id)
			g.deliver(message{
				kind: msgPropertiesMerged, vertex: owner,
				propertyID: q.id, otherID: p.id,
			})
			return true
		}
	}
	return false
}

// referencingType scans the graph for constructs whose type reference
// resolves to id: vertices carrying it in their type set, edges typed
// by it, properties typed by it.
func (g *Graph) referencingType(id string) (vertices, edges, properties []string) {
	for vid, v := range g.vertices {
		if vid == id {
			continue
		}
		for tid := range v.types {
			if g.resolveID(tid) == id {
				vertices = append(vertices, vid)
				break
			}
		}
	}
	for eid, e := range g.edges {
		if g.resolveID(e.typeID) == id {
			edges = append(edges, eid)
		}
	}
	for pid, p := range g.properties {
		if g.resolveID(p.typeID) == id {
			properties = append(properties, pid)
		}
	}
	return vertices, edges, properties
}

// setProxyBackref points the proxied construct's proxy link at vertexID.
func (g *Graph) setProxyBackref(constructID, vertexID string) {
	c, ok := g.liveConstruct(constructID)
	if !ok {
		return
	}
	switch t := c.(type) {
	case *Edge:
		t.proxy = vertexID
	case *Property:
		t.proxy = vertexID
	case *Graph:
		t.proxy = vertexID
	case *Vertex:
		violate("vertex %q recorded as a proxied construct", constructID)
	}
}
