// File: types.go
// Role: Construct capability, construct kinds, sentinel errors, and
// system-level options.
//
// Errors:
//
//	ErrInvalidIdentifier - identifier violates the identifier syntax rule.
//	ErrDuplicateGraphID  - graph ID already managed by the system.
//	ErrDuplicateID       - construct ID already in use within the graph.
//	ErrConstructNotFound - operation referenced a construct that is not live.
//	ErrNilConstruct      - nil construct passed where one is required.
//	ErrForeignConstruct  - construct belongs to a different graph.
//	ErrSelfType          - vertex assigned as its own type.
//	ErrProxyTaken        - construct already fronted by a proxy vertex.
//	ErrProxyVertex       - attempt to proxy a vertex with another vertex.
//	ErrNotRemovable      - construct kind cannot be removed through Graph.Remove.
//	ErrNotNumeric        - property value does not parse as a number.
package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for hypergraph operations. All are user-correctable
// validation failures; invariant violations inside the engine panic
// instead (see violate).
var (
	// ErrInvalidIdentifier indicates an ID or name that fails ValidIdentifier.
	ErrInvalidIdentifier = errors.New("core: invalid identifier")

	// ErrDuplicateGraphID indicates a graph ID already managed by the system.
	ErrDuplicateGraphID = errors.New("core: duplicate graph id")

	// ErrDuplicateID indicates a caller-supplied construct ID that is already
	// live or permanently retired by a redirection record.
	ErrDuplicateID = errors.New("core: construct id already in use")

	// ErrConstructNotFound indicates an operation referenced a construct
	// that is neither live nor resolvable through the redirector.
	ErrConstructNotFound = errors.New("core: construct not found")

	// ErrNilConstruct indicates a nil construct argument.
	ErrNilConstruct = errors.New("core: nil construct")

	// ErrForeignConstruct indicates a construct owned by a different graph.
	ErrForeignConstruct = errors.New("core: construct belongs to another graph")

	// ErrSelfType indicates an attempt to make a vertex its own type.
	ErrSelfType = errors.New("core: vertex cannot be its own type")

	// ErrProxyTaken indicates the construct is already fronted by a proxy vertex.
	ErrProxyTaken = errors.New("core: construct is already proxied")

	// ErrProxyVertex indicates an attempt to proxy a vertex; only non-vertex
	// constructs can be fronted by a proxy vertex.
	ErrProxyVertex = errors.New("core: a vertex cannot be proxied")

	// ErrNotRemovable indicates Graph.Remove was handed a graph; graphs are
	// removed through GraphSystem.RemoveGraph.
	ErrNotRemovable = errors.New("core: construct kind not removable through Graph.Remove")

	// ErrNotNumeric indicates a property value that is not a number.
	ErrNotNumeric = errors.New("core: property value is not numeric")
)

// Kind discriminates the construct kinds stored in a graph.
type Kind uint8

const (
	// KindGraph is the graph construct itself.
	KindGraph Kind = iota
	// KindVertex is a named, typed vertex.
	KindVertex
	// KindEdge is a typed hyperedge over a set of participant vertices.
	KindEdge
	// KindProperty is a typed value attached to exactly one vertex.
	KindProperty
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindVertex:
		return "vertex"
	case KindEdge:
		return "edge"
	case KindProperty:
		return "property"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Construct is the capability shared by every first-class addressable
// entity in the hypergraph: graph, vertex, edge, and property.
//
// IDs are unique within the owning graph across all kinds. A construct
// that has been absorbed by a merge keeps its old handle, but every
// graph-side lookup of its ID resolves to the surviving construct.
type Construct interface {
	// ID returns the construct's identifier within its graph.
	ID() string
	// Kind reports which construct kind the value is.
	Kind() Kind
	// Graph returns the owning graph. For a graph it returns the receiver.
	Graph() *Graph
}

// SystemOption configures a GraphSystem before use.
type SystemOption func(*GraphSystem)

// WithLogger installs a structured logger for engine tracing
// (merges, redirects, cascade sweeps are logged at debug level).
// The default logger discards everything.
func WithLogger(logger *log.Logger) SystemOption {
	return func(s *GraphSystem) {
		if logger != nil {
			s.log = logger
		}
	}
}

// discardLogger returns the default logger writing to io.Discard.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// violate aborts the current operation with an invariant-violation panic.
// These paths indicate a bug in the engine itself, never a caller error,
// and are made unreachable by exhaustive message handling.
func violate(format string, args ...any) {
	panic(fmt.Sprintf("core: invariant violation: "+format, args...))
}
