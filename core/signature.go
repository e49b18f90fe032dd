// File: signature.go
// Role: Structural signatures, hashes and deep equality for vertices
// and edges.
//
// A vertex's signature is its name set, resolved type-ID set and
// resolved (property type-ID, value) pair set; an edge's signature is
// its resolved type ID plus its resolved participant-vertex set.
// All cross-references are resolved through the redirector first, so
// equality is insensitive to which identity survived an earlier merge,
// and participant multisets collapse to sets when two stored IDs
// resolve to the same vertex.
//
// Hashes bucket merge candidates only; collisions are expected and are
// always confirmed by comparing full canonical signatures.
package core

import (
	"bytes"
	"encoding/binary"
	"sort"

	"lukechampine.com/blake3"
)

// Field and record separators for the canonical encoding. Both are
// outside the identifier alphabet, so encodings cannot collide.
const (
	sigField  = '\x1f'
	sigRecord = '\x1e'
)

// vertexSignature builds the canonical byte encoding of v's structural
// identity: sorted names, sorted resolved type IDs, sorted resolved
// property (type, value) pairs.
func (g *Graph) vertexSignature(v *Vertex) []byte {
	names := make([]string, 0, len(v.names))
	for name := range v.names {
		names = append(names, name)
	}
	sort.Strings(names)

	// Resolved references are deduplicated: the identity is a set even
	// when distinct stored IDs resolve to the same survivor.
	types := make([]string, 0, len(v.types))
	seenT := make(map[string]struct{}, len(v.types))
	for tid := range v.types {
		rid := g.resolveID(tid)
		if _, dup := seenT[rid]; dup {
			continue
		}
		seenT[rid] = struct{}{}
		types = append(types, rid)
	}
	sort.Strings(types)

	props := make([]string, 0, len(v.properties))
	seenP := make(map[string]struct{}, len(v.properties))
	for pid := range v.properties {
		p, ok := g.liveProperty(pid)
		if !ok {
			continue
		}
		pair := g.resolveID(p.typeID) + string(sigField) + p.value
		if _, dup := seenP[pair]; dup {
			continue
		}
		seenP[pair] = struct{}{}
		props = append(props, pair)
	}
	sort.Strings(props)

	var b bytes.Buffer
	b.WriteByte('v')
	for _, s := range names {
		b.WriteByte(sigField)
		b.WriteString(s)
	}
	b.WriteByte(sigRecord)
	for _, s := range types {
		b.WriteByte(sigField)
		b.WriteString(s)
	}
	b.WriteByte(sigRecord)
	for _, s := range props {
		b.WriteByte(sigField)
		b.WriteString(s)
	}
	return b.Bytes()
}

// edgeSignature builds the canonical byte encoding of e's structural
// identity: resolved type ID plus the sorted, deduplicated resolved
// participant set.
func (g *Graph) edgeSignature(e *Edge) []byte {
	seen := make(map[string]struct{}, len(e.members))
	members := make([]string, 0, len(e.members))
	for vid := range e.members {
		rid := g.resolveID(vid)
		if _, dup := seen[rid]; dup {
			continue
		}
		seen[rid] = struct{}{}
		members = append(members, rid)
	}
	sort.Strings(members)

	var b bytes.Buffer
	b.WriteByte('e')
	b.WriteByte(sigField)
	b.WriteString(g.resolveID(e.typeID))
	b.WriteByte(sigRecord)
	for _, s := range members {
		b.WriteByte(sigField)
		b.WriteString(s)
	}
	return b.Bytes()
}

// sigHash maps a canonical signature to its bucket key.
func sigHash(sig []byte) uint64 {
	sum := blake3.Sum256(sig)
	return binary.BigEndian.Uint64(sum[:8])
}

// vertexHash returns the current bucket key for v.
func (g *Graph) vertexHash(v *Vertex) uint64 {
	return sigHash(g.vertexSignature(v))
}

// edgeHash returns the current bucket key for e.
func (g *Graph) edgeHash(e *Edge) uint64 {
	return sigHash(g.edgeSignature(e))
}

// vertexEqual reports structural equality of two live vertices. The
// canonical encoding is injective over (names, types, properties), so
// byte equality is deep equality.
func (g *Graph) vertexEqual(a, b *Vertex) bool {
	return bytes.Equal(g.vertexSignature(a), g.vertexSignature(b))
}

// edgeEqual reports structural equality of two live edges: same
// resolved type, same resolved participant set.
func (g *Graph) edgeEqual(a, b *Edge) bool {
	return bytes.Equal(g.edgeSignature(a), g.edgeSignature(b))
}
