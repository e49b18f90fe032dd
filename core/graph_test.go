package core_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergraph/core"
)

func newTestGraph(t *testing.T) *core.Graph {
	t.Helper()
	s := core.NewGraphSystem()
	g, err := s.CreateGraph("g1")
	if err != nil {
		t.Fatalf("CreateGraph: %v", err)
	}
	return g
}

// TestGraphSystem_Lifecycle covers graph creation, duplicate IDs, and
// back-handle invalidation on removal.
func TestGraphSystem_Lifecycle(t *testing.T) {
	s := core.NewGraphSystem()

	g, err := s.CreateGraph("alpha")
	if err != nil {
		t.Fatalf("CreateGraph: %v", err)
	}
	if _, err = s.CreateGraph("alpha"); !errors.Is(err, core.ErrDuplicateGraphID) {
		t.Errorf("duplicate graph: want ErrDuplicateGraphID, got %v", err)
	}
	if _, err = s.CreateGraph("not valid"); !errors.Is(err, core.ErrInvalidIdentifier) {
		t.Errorf("bad graph id: want ErrInvalidIdentifier, got %v", err)
	}

	if got := g.System(); got != s {
		t.Errorf("System() = %v; want the owning system", got)
	}
	if err = s.RemoveGraph("alpha"); err != nil {
		t.Fatalf("RemoveGraph: %v", err)
	}
	if _, ok := s.Graph("alpha"); ok {
		t.Error("removed graph still retrievable")
	}
	if err = s.RemoveGraph("alpha"); !errors.Is(err, core.ErrConstructNotFound) {
		t.Errorf("double remove: want ErrConstructNotFound, got %v", err)
	}
	// The back-handle is a non-owning reference; using it after
	// teardown is a programming error and must fail loudly.
	require.Panics(t, func() { _ = g.System() })

	// Auto-generated graph IDs are valid identifiers.
	g2, err := s.CreateGraph("")
	if err != nil {
		t.Fatalf("CreateGraph(auto): %v", err)
	}
	if !core.ValidIdentifier(g2.ID()) {
		t.Errorf("generated graph id %q not identifier-valid", g2.ID())
	}
}

// TestSelfTypeRejected: a vertex can never be its own type, and the
// failed attempt leaves the type set untouched.
func TestSelfTypeRejected(t *testing.T) {
	g := newTestGraph(t)
	v := g.CreateVertex()

	if err := v.AddType(v); !errors.Is(err, core.ErrSelfType) {
		t.Fatalf("self type: want ErrSelfType, got %v", err)
	}
	if ts := v.Types(); len(ts) != 0 {
		t.Errorf("types after rejected self-type = %v; want empty", ts)
	}

	// The same applies when the cycle would arrive through a merge
	// alias: u merged into v must still be rejected as v's type.
	u := g.CreateVertex()
	if err := v.AddName("n"); err != nil {
		t.Fatal(err)
	}
	if err := u.AddName("n"); err != nil { // u absorbed into v
		t.Fatal(err)
	}
	if err := v.AddType(u); !errors.Is(err, core.ErrSelfType) {
		t.Errorf("aliased self type: want ErrSelfType, got %v", err)
	}
}

// TestTypeAndPropertyValidation covers nil and cross-graph arguments.
func TestTypeAndPropertyValidation(t *testing.T) {
	s := core.NewGraphSystem()
	g1, _ := s.CreateGraph("g1")
	g2, _ := s.CreateGraph("g2")

	v := g1.CreateVertex()
	foreign := g2.CreateVertex()

	if err := v.AddType(nil); !errors.Is(err, core.ErrNilConstruct) {
		t.Errorf("nil type: want ErrNilConstruct, got %v", err)
	}
	if err := v.AddType(foreign); !errors.Is(err, core.ErrForeignConstruct) {
		t.Errorf("foreign type: want ErrForeignConstruct, got %v", err)
	}
	if _, err := v.AddProperty(foreign, "1"); !errors.Is(err, core.ErrForeignConstruct) {
		t.Errorf("foreign property type: want ErrForeignConstruct, got %v", err)
	}
	if _, err := g1.CreateEdge(foreign); !errors.Is(err, core.ErrForeignConstruct) {
		t.Errorf("foreign edge type: want ErrForeignConstruct, got %v", err)
	}
	if _, err := g1.CreateEdge(nil); !errors.Is(err, core.ErrNilConstruct) {
		t.Errorf("nil edge type: want ErrNilConstruct, got %v", err)
	}
}

// TestLookupMissIsAbsence: unknown IDs and names return absence, never
// an error.
func TestLookupMissIsAbsence(t *testing.T) {
	g := newTestGraph(t)

	if _, ok := g.ConstructByID("vnothing"); ok {
		t.Error("unknown id resolved")
	}
	if _, ok := g.VertexByName("nothing"); ok {
		t.Error("unknown name resolved")
	}
}

// TestTypedLookups verifies VerticesByType / EdgesByType with resolved
// identities.
func TestTypedLookups(t *testing.T) {
	g := newTestGraph(t)

	typ := g.CreateVertex()
	require.NoError(t, typ.AddName("atom"))
	bond := g.CreateVertex()
	require.NoError(t, bond.AddName("bond"))

	var members []*core.Vertex
	for _, name := range []string{"a", "b", "c"} {
		v := g.CreateVertex()
		require.NoError(t, v.AddType(typ))
		require.NoError(t, v.AddName(name))
		members = append(members, v)
	}
	require.Len(t, g.VerticesByType(typ), 3)

	e, err := g.CreateEdge(bond)
	require.NoError(t, err)
	require.NoError(t, e.AddVertex(members[0]))
	require.NoError(t, e.AddVertex(members[1]))
	require.Len(t, g.EdgesByType(bond), 1)
	require.Empty(t, g.EdgesByType(typ))
}

// TestProxyRules: only non-vertex constructs are proxied, at most once,
// and the proxy vertex can carry names and edges on their behalf.
func TestProxyRules(t *testing.T) {
	g := newTestGraph(t)

	bond := g.CreateVertex()
	require.NoError(t, bond.AddName("bond"))
	e, err := g.CreateEdge(bond)
	require.NoError(t, err)
	a := g.CreateVertex()
	require.NoError(t, a.AddName("a"))
	require.NoError(t, e.AddVertex(a))

	pv, err := g.ProxyConstruct(e)
	require.NoError(t, err)
	require.NoError(t, pv.AddName("ring1"))

	got, ok := pv.Proxied()
	require.True(t, ok)
	require.Equal(t, e.ID(), got.ID())
	back, ok := e.Proxy()
	require.True(t, ok)
	require.Equal(t, pv.ID(), back.ID())

	// One proxy per construct.
	if _, err = g.ProxyConstruct(e); !errors.Is(err, core.ErrProxyTaken) {
		t.Errorf("second proxy: want ErrProxyTaken, got %v", err)
	}
	// Vertices are never proxied.
	if _, err = g.ProxyConstruct(a); !errors.Is(err, core.ErrProxyVertex) {
		t.Errorf("proxy vertex: want ErrProxyVertex, got %v", err)
	}

	// The graph itself may be proxied (rare but supported).
	gv, err := g.ProxyConstruct(g)
	require.NoError(t, err)
	pg, ok := gv.Proxied()
	require.True(t, ok)
	require.Equal(t, g.ID(), pg.ID())
}

// TestRemovalCascade: removing an edge removes its proxy vertex;
// removing the participants afterwards leaves nothing resolvable.
func TestRemovalCascade(t *testing.T) {
	g := newTestGraph(t)

	bond := g.CreateVertex()
	require.NoError(t, bond.AddName("fragment"))

	var atoms []*core.Vertex
	for _, name := range []string{"a1", "a2", "a3"} {
		v := g.CreateVertex()
		require.NoError(t, v.AddName(name))
		atoms = append(atoms, v)
	}

	e, err := g.CreateEdge(bond)
	require.NoError(t, err)
	for _, v := range atoms {
		require.NoError(t, e.AddVertex(v))
	}
	pv, err := g.ProxyConstruct(e)
	require.NoError(t, err)
	require.NoError(t, pv.AddName("ring"))

	removedIDs := []string{e.ID(), pv.ID()}
	require.NoError(t, g.Remove(e))
	for _, v := range atoms {
		removedIDs = append(removedIDs, v.ID())
		require.NoError(t, g.Remove(v))
	}

	for _, id := range removedIDs {
		if _, ok := g.ConstructByID(id); ok {
			t.Errorf("construct %q still resolvable after removal", id)
		}
	}
	if _, ok := g.VertexByName("ring"); ok {
		t.Error("proxy name still indexed after removal")
	}
	for _, name := range []string{"a1", "a2", "a3"} {
		if _, ok := g.VertexByName(name); ok {
			t.Errorf("atom %q still indexed after removal", name)
		}
	}
	require.Equal(t, 0, g.EdgeCount())
	// Only the type vertex survives.
	require.Equal(t, 1, g.VertexCount())
}

// TestRemoveTypeVertexCascades: removing a vertex that types live edges
// removes those edges; vertices typed by it just lose the reference.
func TestRemoveTypeVertexCascades(t *testing.T) {
	g := newTestGraph(t)

	typ := g.CreateVertex()
	require.NoError(t, typ.AddName("bond"))
	a := g.CreateVertex()
	require.NoError(t, a.AddName("a"))
	b := g.CreateVertex()
	require.NoError(t, b.AddName("b"))
	require.NoError(t, b.AddType(typ))

	e, err := g.CreateEdge(typ)
	require.NoError(t, err)
	require.NoError(t, e.AddVertex(a))

	require.NoError(t, g.Remove(typ))

	if _, ok := g.ConstructByID(e.ID()); ok {
		t.Error("edge typed by removed vertex still live")
	}
	require.Empty(t, b.Types())
	require.Empty(t, a.Edges())
}

// TestRemoveMissing: removing what is not there is an error for
// constructs (the caller named a concrete construct) and Remove rejects
// graphs outright.
func TestRemoveMissing(t *testing.T) {
	g := newTestGraph(t)

	v := g.CreateVertex()
	require.NoError(t, g.Remove(v))
	if err := g.Remove(v); !errors.Is(err, core.ErrConstructNotFound) {
		t.Errorf("double remove: want ErrConstructNotFound, got %v", err)
	}
	if err := g.Remove(g); !errors.Is(err, core.ErrNotRemovable) {
		t.Errorf("remove graph: want ErrNotRemovable, got %v", err)
	}
	if err := g.Remove(nil); !errors.Is(err, core.ErrNilConstruct) {
		t.Errorf("remove nil: want ErrNilConstruct, got %v", err)
	}
}

// TestPropertyNumerics covers the double/int interpretations.
func TestPropertyNumerics(t *testing.T) {
	g := newTestGraph(t)
	typ := g.CreateVertex()
	require.NoError(t, typ.AddName("mass"))
	v := g.CreateVertex()
	require.NoError(t, v.AddName("C"))

	p, err := v.AddProperty(typ, "12.011")
	require.NoError(t, err)
	f, err := p.Float64()
	require.NoError(t, err)
	require.InDelta(t, 12.011, f, 1e-9)
	if _, err = p.Int64(); !errors.Is(err, core.ErrNotNumeric) {
		t.Errorf("Int64 on float: want ErrNotNumeric, got %v", err)
	}

	require.NoError(t, p.SetValue("12"))
	n, err := p.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(12), n)

	require.NoError(t, p.SetValue("carbon"))
	if _, err = p.Float64(); !errors.Is(err, core.ErrNotNumeric) {
		t.Errorf("Float64 on text: want ErrNotNumeric, got %v", err)
	}
}

// TestMergeTraceLogging: the optional logger observes merges at debug
// level.
func TestMergeTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	s := core.NewGraphSystem(core.WithLogger(logger))
	g, err := s.CreateGraph("traced")
	require.NoError(t, err)

	v1 := g.CreateVertex()
	require.NoError(t, v1.AddName("X"))
	v2 := g.CreateVertex()
	require.NoError(t, v2.AddName("X"))

	out := buf.String()
	require.Contains(t, out, "merging vertices")
	require.Contains(t, out, "redirect recorded")
}
