// Package species is the chemistry collaborator layer over a
// core.Graph: atoms are vertices of a well-known "atom" type, fragments
// are hyperedges of a well-known "fragment" type proxied by a vertex
// carrying the fragment name.
package species

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hypergraph/core"
)

// ComplexGraph wraps one core.Graph and exposes the atom/fragment
// vocabulary on top of it. It keeps no state of its own: every lookup
// goes through the graph's indexes, so handles stay correct across the
// graph's automatic merges.
type ComplexGraph struct {
	g *core.Graph
}

// New wraps g. Returns ErrGraphNil for a nil graph.
func New(g *core.Graph) (*ComplexGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return &ComplexGraph{g: g}, nil
}

// Graph exposes the underlying graph for direct engine access.
func (c *ComplexGraph) Graph() *core.Graph { return c.g }

// checkName enforces the identifier syntax rule shared with construct
// IDs and keeps the well-known type names out of the user namespace.
func checkName(name string) error {
	if !core.ValidIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if name == AtomTypeName || name == FragmentTypeName {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	return nil
}

// typeVertex returns the type vertex carrying name, creating it lazily.
func (c *ComplexGraph) typeVertex(name string) *core.Vertex {
	if v, ok := c.g.VertexByName(name); ok {
		return v
	}
	v := c.g.CreateVertex()
	// The name is free (checked above) and the vertex is fresh, so the
	// rename cannot collide.
	_ = v.AddName(name)
	return v
}

// AddAtom ensures an atom vertex named name exists and returns it.
// Calling it again with the same name returns the same atom. The name
// must satisfy the identifier rule and must not already belong to a
// non-atom vertex.
func (c *ComplexGraph) AddAtom(name string) (*core.Vertex, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	at := c.typeVertex(AtomTypeName)
	if v, ok := c.g.VertexByName(name); ok {
		if v.HasType(at) {
			return v, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrNameInUse, name)
	}
	v := c.g.CreateVertex()
	if err := v.AddName(name); err != nil {
		return nil, err
	}
	if err := v.AddType(at); err != nil {
		return nil, err
	}
	return v, nil
}

// Atom returns the atom vertex named name, if one exists.
func (c *ComplexGraph) Atom(name string) (*core.Vertex, bool) {
	at, ok := c.g.VertexByName(AtomTypeName)
	if !ok {
		return nil, false
	}
	v, ok := c.g.VertexByName(name)
	if !ok || !v.HasType(at) {
		return nil, false
	}
	return v, true
}

// AddFragment ensures a fragment edge named name exists over the given
// atoms and returns it. Missing atoms are created. The fragment is a
// hyperedge of the fragment type, proxied by a vertex carrying the
// fragment name. If a fragment with that name already exists it is
// returned as is; a name held by anything else fails with ErrNameInUse.
//
// A fragment built over the same atom set as an existing fragment is
// structurally equal to it and collapses into it; the new name becomes
// an alias on the survivor's proxy.
func (c *ComplexGraph) AddFragment(name string, atoms ...string) (*core.Edge, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if v, ok := c.g.VertexByName(name); ok {
		if e, isFrag := proxiedFragment(v); isFrag {
			return e, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrNameInUse, name)
	}

	ft := c.typeVertex(FragmentTypeName)
	e, err := c.g.CreateEdge(ft)
	if err != nil {
		return nil, err
	}
	for _, an := range atoms {
		a, err := c.AddAtom(an)
		if err != nil {
			return nil, err
		}
		if err = e.AddVertex(a); err != nil {
			return nil, err
		}
	}

	// The growing edge may have collapsed into an existing structurally
	// equal fragment; follow the redirect before proxying.
	live, _ := c.g.ConstructByID(e.ID())
	le := live.(*core.Edge)

	proxy, err := c.g.ProxyConstruct(le)
	switch {
	case errors.Is(err, core.ErrProxyTaken):
		proxy, _ = le.Proxy()
	case err != nil:
		return nil, err
	}
	if err = proxy.AddName(name); err != nil {
		return nil, err
	}

	live, _ = c.g.ConstructByID(le.ID())
	return live.(*core.Edge), nil
}

// Fragment returns the fragment edge named name, if one exists. The
// name lives on the fragment's proxy vertex.
func (c *ComplexGraph) Fragment(name string) (*core.Edge, bool) {
	v, ok := c.g.VertexByName(name)
	if !ok {
		return nil, false
	}
	return proxiedFragment(v)
}

// proxiedFragment unwraps v to the fragment edge it proxies, if any.
func proxiedFragment(v *core.Vertex) (*core.Edge, bool) {
	pc, ok := v.Proxied()
	if !ok {
		return nil, false
	}
	e, ok := pc.(*core.Edge)
	if !ok {
		return nil, false
	}
	t, ok := e.Type()
	if !ok || !t.HasName(FragmentTypeName) {
		return nil, false
	}
	return e, true
}

// RemoveFragment removes the fragment named name: the edge, its proxy
// vertex, and every participant atom. Removing an absent fragment does
// nothing.
func (c *ComplexGraph) RemoveFragment(name string) error {
	e, ok := c.Fragment(name)
	if !ok {
		return nil
	}
	members := e.Vertices()
	if err := c.g.Remove(e); err != nil {
		return err
	}
	for _, m := range members {
		live, still := c.g.ConstructByID(m.ID())
		if !still {
			continue
		}
		if v, isVertex := live.(*core.Vertex); isVertex {
			if err := c.g.Remove(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveAtom removes the atom named name and everything that depends
// on it (edge memberships, properties, proxies). Removing an absent
// atom does nothing.
func (c *ComplexGraph) RemoveAtom(name string) error {
	v, ok := c.Atom(name)
	if !ok {
		return nil
	}
	return c.g.Remove(v)
}

// Atoms enumerates all atom vertices in sorted ID order.
func (c *ComplexGraph) Atoms() []*core.Vertex {
	at, ok := c.g.VertexByName(AtomTypeName)
	if !ok {
		return nil
	}
	return c.g.VerticesByType(at)
}

// Fragments enumerates all fragment edges in sorted ID order.
func (c *ComplexGraph) Fragments() []*core.Edge {
	ft, ok := c.g.VertexByName(FragmentTypeName)
	if !ok {
		return nil
	}
	return c.g.EdgesByType(ft)
}
