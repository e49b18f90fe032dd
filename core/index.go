// File: index.go
// Role: Secondary index maintenance: the name index and the
// structural-hash buckets used to find merge candidates.
//
// Buckets hold candidate IDs only. Two constructs sharing a bucket are
// not assumed equal; every candidate is confirmed with a full signature
// comparison before a merge is applied.
package core

// bucketAdd inserts id into the bucket for hash h.
func bucketAdd(buckets map[uint64]map[string]struct{}, h uint64, id string) {
	b, ok := buckets[h]
	if !ok {
		b = make(map[string]struct{})
		buckets[h] = b
	}
	b[id] = struct{}{}
}

// bucketRemove drops id from the bucket for hash h, pruning the bucket
// when it empties.
func bucketRemove(buckets map[uint64]map[string]struct{}, h uint64, id string) {
	b, ok := buckets[h]
	if !ok {
		return
	}
	delete(b, id)
	if len(b) == 0 {
		delete(buckets, h)
	}
}

// reindexVertex recomputes v's structural hash after its content
// changed and moves it to the matching bucket.
func (g *Graph) reindexVertex(v *Vertex) {
	h := g.vertexHash(v)
	if h == v.hash {
		return
	}
	bucketRemove(g.vertexBuckets, v.hash, v.id)
	bucketAdd(g.vertexBuckets, h, v.id)
	v.hash = h
}

// reindexEdge recomputes e's structural hash after its content changed
// and moves it to the matching bucket.
func (g *Graph) reindexEdge(e *Edge) {
	h := g.edgeHash(e)
	if h == e.hash {
		return
	}
	bucketRemove(g.edgeBuckets, e.hash, e.id)
	bucketAdd(g.edgeBuckets, h, e.id)
	e.hash = h
}

// vertexMergeCandidate scans v's hash bucket for a live vertex that is
// structurally equal to v. Freshly created vertices with no content are
// never candidates: equivalence is established by mutation, and an
// empty vertex has not been mutated yet.
func (g *Graph) vertexMergeCandidate(v *Vertex) *Vertex {
	if len(v.names) == 0 && len(v.types) == 0 && len(v.properties) == 0 {
		return nil
	}
	for id := range g.vertexBuckets[v.hash] {
		if id == v.id {
			continue
		}
		o, ok := g.vertices[id]
		if !ok {
			continue
		}
		if g.vertexEqual(o, v) {
			return o
		}
	}
	return nil
}

// edgeMergeCandidate scans e's hash bucket for a live edge that is
// structurally equal to e. Edges with no participants yet are skipped
// for the same reason as empty vertices.
func (g *Graph) edgeMergeCandidate(e *Edge) *Edge {
	if len(e.members) == 0 {
		return nil
	}
	for id := range g.edgeBuckets[e.hash] {
		if id == e.id {
			continue
		}
		o, ok := g.edges[id]
		if !ok {
			continue
		}
		if g.edgeEqual(o, e) {
			return o
		}
	}
	return nil
}
