package shaderpp

// PiecesMap is the piece library built by collectPieces and consumed by
// insertPieces. It is created fresh per top-level Parse call and never
// outlives it. Re-defining a name already present is a syntax error
// (duplicate piece), enforced by the caller (collectPieces), not by this
// type.
type PiecesMap struct {
	bodies   map[IdString]string
	registry *idRegistry
}

func newPiecesMap() *PiecesMap {
	return &PiecesMap{
		bodies:   make(map[IdString]string),
		registry: newIDRegistry(),
	}
}

// has reports whether name has already been registered.
func (p *PiecesMap) has(name string) bool {
	_, ok := p.bodies[p.registry.intern(name)]
	return ok
}

// define registers name -> body. Callers must check has(name) first; define
// does not itself enforce the no-duplicates invariant.
func (p *PiecesMap) define(name, body string) {
	p.bodies[p.registry.intern(name)] = body
}

// lookup returns the body registered under name, if any.
func (p *PiecesMap) lookup(name string) (string, bool) {
	body, ok := p.bodies[p.registry.intern(name)]
	return body, ok
}

// names returns every registered piece name, in no particular order. Used
// to suggest a near-miss when @insertpiece names something unknown.
func (p *PiecesMap) names() []string {
	out := make([]string, 0, len(p.bodies))
	for id := range p.bodies {
		if name, ok := p.registry.nameOf(id); ok {
			out = append(out, name)
		}
	}
	return out
}
