// File: redirect.go
// Role: Permanent forwarding records from absorbed construct IDs to
// their merge survivors, with transitive chain resolution.
package core

// redirectConstruct retires oldID as a permanent forward to newID and
// drops it from the live registry. A construct is redirected at most
// once, and always to a construct that is live at that moment, so the
// chain graph is acyclic by construction.
func (g *Graph) redirectConstruct(oldID, newID string) {
	g.redirects[oldID] = newID
	delete(g.registry, oldID)
	g.log.Debug("redirect recorded", "from", oldID, "to", newID)
}

// resolveID follows redirection records until it reaches an ID with no
// forward entry. Unknown IDs resolve to themselves; the caller decides
// whether absence from the registry matters. A chain longer than the
// redirect table cannot occur and is treated as a broken invariant.
func (g *Graph) resolveID(id string) string {
	limit := len(g.redirects) + 1
	for hops := 0; ; hops++ {
		next, ok := g.redirects[id]
		if !ok {
			return id
		}
		if hops >= limit {
			violate("redirection chain starting at %q does not terminate", id)
		}
		id = next
	}
}

// liveConstruct resolves id through the redirector and returns the
// surviving live construct, if any.
func (g *Graph) liveConstruct(id string) (Construct, bool) {
	c, ok := g.registry[g.resolveID(id)]
	return c, ok
}

// liveVertex resolves id to a live vertex.
func (g *Graph) liveVertex(id string) (*Vertex, bool) {
	c, ok := g.registry[g.resolveID(id)]
	if !ok {
		return nil, false
	}
	v, ok := c.(*Vertex)
	return v, ok
}

// liveEdge resolves id to a live edge.
func (g *Graph) liveEdge(id string) (*Edge, bool) {
	c, ok := g.registry[g.resolveID(id)]
	if !ok {
		return nil, false
	}
	e, ok := c.(*Edge)
	return e, ok
}

// liveProperty resolves id to a live property.
func (g *Graph) liveProperty(id string) (*Property, bool) {
	c, ok := g.registry[g.resolveID(id)]
	if !ok {
		return nil, false
	}
	p, ok := c.(*Property)
	return p, ok
}
