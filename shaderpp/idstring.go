package shaderpp

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// IdString is a stable, interned identifier derived from argument text (a
// property or piece name). Two IdStrings derived from the same name are
// always equal; this is the only contract names rely on.
//
// The hash is computed with sha3.Sum256 rather than a bespoke or stdlib
// hash/fnv so that names are stable across processes and architectures.
type IdString uint64

// NewIdString interns name into a stable identifier.
func NewIdString(name string) IdString {
	sum := sha3.Sum256([]byte(name))
	return IdString(binary.LittleEndian.Uint64(sum[:8]))
}

// idRegistry remembers the original text behind each IdString seen so far,
// purely for diagnostics (line reporting, "did you mean" suggestions). It
// is not part of the language's semantics.
type idRegistry struct {
	names map[IdString]string
}

func newIDRegistry() *idRegistry {
	return &idRegistry{names: make(map[IdString]string)}
}

func (r *idRegistry) intern(name string) IdString {
	id := NewIdString(name)
	if _, ok := r.names[id]; !ok {
		r.names[id] = name
	}
	return id
}

func (r *idRegistry) nameOf(id IdString) (string, bool) {
	name, ok := r.names[id]
	return name, ok
}
