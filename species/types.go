// File: types.go
// Role: sentinel errors and well-known names for the species layer.
package species

import "errors"

// Well-known type-vertex names. The layer creates these vertices lazily
// in the underlying graph and tags every atom and fragment with them.
const (
	// AtomTypeName names the type vertex shared by all atom vertices.
	AtomTypeName = "atom"

	// FragmentTypeName names the type vertex shared by all fragment edges.
	FragmentTypeName = "fragment"
)

// Sentinel errors for species operations.
var (
	// ErrGraphNil is returned when the layer is constructed over a nil graph.
	ErrGraphNil = errors.New("species: graph is nil")

	// ErrInvalidName is returned when an atom or fragment name fails the
	// identifier syntax rule shared with construct IDs.
	ErrInvalidName = errors.New("species: invalid name")

	// ErrReservedName is returned when an atom or fragment name collides
	// with a well-known type-vertex name.
	ErrReservedName = errors.New("species: reserved name")

	// ErrNameInUse is returned when a fragment name is already carried by
	// a vertex that is not a fragment proxy.
	ErrNameInUse = errors.New("species: name already in use")
)
