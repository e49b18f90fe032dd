// File: property.go
// Role: Property construct: a typed string value attached to exactly
// one vertex, interpretable as float or integer on demand.
package core

import (
	"fmt"
	"strconv"
)

// Property associates one vertex with a value under a type vertex that
// names the association's semantic kind. Values are stored as strings.
type Property struct {
	id    string
	graph *Graph

	owner  string // owning vertex ID
	typeID string // type vertex ID
	value  string

	proxy string // proxy vertex ID, "" if none
}

// ID returns the property identifier.
func (p *Property) ID() string { return p.id }

// Kind reports KindProperty.
func (p *Property) Kind() Kind { return KindProperty }

// Graph returns the owning graph.
func (p *Property) Graph() *Graph { return p.graph }

// live resolves the receiver to the surviving live property.
func (p *Property) live() (*Property, bool) {
	return p.graph.liveProperty(p.id)
}

// Vertex returns the vertex the property is attached to.
func (p *Property) Vertex() (*Vertex, bool) {
	self, ok := p.live()
	if !ok {
		return nil, false
	}
	return p.graph.liveVertex(self.owner)
}

// Type returns the property's type vertex.
func (p *Property) Type() (*Vertex, bool) {
	self, ok := p.live()
	if !ok {
		return nil, false
	}
	return p.graph.liveVertex(self.typeID)
}

// Value returns the stored string value.
func (p *Property) Value() string {
	self, ok := p.live()
	if !ok {
		return ""
	}
	return self.value
}

// Float64 interprets the value as a float.
func (p *Property) Float64() (float64, error) {
	f, err := strconv.ParseFloat(p.Value(), 64)
	if err != nil {
		return 0, fmt.Errorf("property %s value %q: %w", p.id, p.Value(), ErrNotNumeric)
	}
	return f, nil
}

// Int64 interprets the value as an integer.
func (p *Property) Int64() (int64, error) {
	n, err := strconv.ParseInt(p.Value(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s value %q: %w", p.id, p.Value(), ErrNotNumeric)
	}
	return n, nil
}

// Proxy returns the vertex fronting this property, if any.
func (p *Property) Proxy() (*Vertex, bool) {
	self, ok := p.live()
	if !ok || self.proxy == "" {
		return nil, false
	}
	return p.graph.liveVertex(self.proxy)
}

// SetValue changes the stored value. Setting the current value is a
// no-op. When the change makes this property carry the same (type,
// value) pair as another property on the same vertex, the incumbent
// survives and this property is retired as a redirect to it; either
// way the owning vertex is re-evaluated for structural equality.
func (p *Property) SetValue(value string) error {
	self, ok := p.live()
	if !ok {
		return fmt.Errorf("set value: %w", ErrConstructNotFound)
	}
	if self.value == value {
		return nil
	}
	self.value = value
	g := self.graph
	owner, ok := g.liveVertex(self.owner)
	if !ok {
		violate("property %q attached to unknown vertex %q", self.id, self.owner)
	}
	if g.collapseDuplicateProperty(owner, self) {
		return nil
	}
	g.deliver(message{kind: msgPropertyValueModified, vertex: owner})
	return nil
}

// replaceTypeRef swaps the type reference after a merge redirected the
// type vertex.
func (p *Property) replaceTypeRef(oldID, newID string) bool {
	if p.typeID != oldID {
		return false
	}
	p.typeID = newID
	return true
}
