// File: ident.go
// Role: Identifier syntax rule and collision-checked ID generation.
//
// IDs and vertex names share one syntax rule (an NCName-like subset):
// printable, no whitespace, no colon, and a letter or underscore first.
// Auto-generated IDs are random UUIDs behind a kind letter, retried
// until they collide with neither a live construct nor a retired
// (redirected) identifier.
package core

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ValidIdentifier reports whether s satisfies the identifier syntax rule
// shared by construct IDs and vertex names: non-empty, first rune a
// letter or underscore, remaining runes letters, digits, '_', '-' or '.'.
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// idPrefix letters keep generated IDs readable and identifier-valid
// (a raw UUID may start with a digit).
const (
	vertexIDPrefix   = 'v'
	edgeIDPrefix     = 'e'
	propertyIDPrefix = 'p'
	graphIDPrefix    = 'g'
)

// randomID produces one identifier-valid candidate for the given kind letter.
func randomID(prefix rune) string {
	return string(prefix) + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// newID generates a fresh construct ID that collides with no live
// construct and no retired ID in this graph. The UUID space makes more
// than one round vanishingly unlikely; the loop keeps the contract exact.
func (g *Graph) newID(prefix rune) string {
	for {
		id := randomID(prefix)
		if !g.idTaken(id) {
			return id
		}
	}
}

// idTaken reports whether id is live or permanently retired in this graph.
func (g *Graph) idTaken(id string) bool {
	if _, ok := g.registry[id]; ok {
		return true
	}
	_, ok := g.redirects[id]
	return ok
}
