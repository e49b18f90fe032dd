package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/hypergraph/core"
)

// TestValidIdentifier exercises the identifier syntax rule shared by
// construct IDs and vertex names.
func TestValidIdentifier(t *testing.T) {
	valid := []string{"a", "_", "atom", "C6H6", "frag-1", "x.y", "_v2", "Ü1"}
	for _, s := range valid {
		if !core.ValidIdentifier(s) {
			t.Errorf("ValidIdentifier(%q) = false; want true", s)
		}
	}
	invalid := []string{"", "1abc", "-x", ".x", "a b", "a\tb", "a:b", "has space", "semi;colon"}
	for _, s := range invalid {
		if core.ValidIdentifier(s) {
			t.Errorf("ValidIdentifier(%q) = true; want false", s)
		}
	}
}

// TestCreateVertexID_Validation verifies supplied-ID syntax and
// collision checks.
func TestCreateVertexID_Validation(t *testing.T) {
	s := core.NewGraphSystem()
	g, err := s.CreateGraph("g1")
	if err != nil {
		t.Fatalf("CreateGraph: %v", err)
	}

	if _, err = g.CreateVertexID("9bad"); !errors.Is(err, core.ErrInvalidIdentifier) {
		t.Errorf("leading digit: want ErrInvalidIdentifier, got %v", err)
	}
	if _, err = g.CreateVertexID("white space"); !errors.Is(err, core.ErrInvalidIdentifier) {
		t.Errorf("whitespace: want ErrInvalidIdentifier, got %v", err)
	}

	if _, err = g.CreateVertexID("atom1"); err != nil {
		t.Fatalf("CreateVertexID(atom1): %v", err)
	}
	if _, err = g.CreateVertexID("atom1"); !errors.Is(err, core.ErrDuplicateID) {
		t.Errorf("duplicate id: want ErrDuplicateID, got %v", err)
	}
	// The graph's own ID occupies the shared namespace.
	if _, err = g.CreateVertexID("g1"); !errors.Is(err, core.ErrDuplicateID) {
		t.Errorf("graph id reuse: want ErrDuplicateID, got %v", err)
	}
}

// TestGeneratedIDs_AreValidAndDistinct verifies the auto-ID contract:
// identifier-valid, collision-free, kind-prefixed.
func TestGeneratedIDs_AreValidAndDistinct(t *testing.T) {
	s := core.NewGraphSystem()
	g, _ := s.CreateGraph("g1")

	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		v := g.CreateVertex()
		if !core.ValidIdentifier(v.ID()) {
			t.Fatalf("generated id %q is not identifier-valid", v.ID())
		}
		if !strings.HasPrefix(v.ID(), "v") {
			t.Fatalf("generated vertex id %q lacks kind prefix", v.ID())
		}
		if _, dup := seen[v.ID()]; dup {
			t.Fatalf("generated id %q repeated", v.ID())
		}
		seen[v.ID()] = struct{}{}
	}
}

// TestRetiredIDs_AreNeverReused verifies that a merged-away ID stays
// retired: a caller cannot claim it for a new construct.
func TestRetiredIDs_AreNeverReused(t *testing.T) {
	s := core.NewGraphSystem()
	g, _ := s.CreateGraph("g1")

	v1, _ := g.CreateVertexID("keep")
	v2, _ := g.CreateVertexID("gone")
	if err := v1.AddName("n"); err != nil {
		t.Fatalf("AddName: %v", err)
	}
	if err := v2.AddName("n"); err != nil {
		t.Fatalf("AddName: %v", err)
	}
	// v2 is now a redirect to v1; its ID is permanently retired.
	if _, err := g.CreateVertexID("gone"); !errors.Is(err, core.ErrDuplicateID) {
		t.Errorf("retired id reuse: want ErrDuplicateID, got %v", err)
	}
}
