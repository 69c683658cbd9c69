package shaderpp

import "strconv"

// notANumber is the out-of-band sentinel used while parsing an operand: it
// distinguishes "this argument failed to parse as a signed integer" from
// any value that could legitimately be stored, and is never itself written
// into a PropertyMap.
const notANumber = int32(-1 << 31)

// PropertyMap is the integer environment the preprocessor reads and
// mutates. Keys are names interned to IdStrings; an undefined key reads as
// 0. It is exclusively owned by the calling goroutine for the duration of a
// Parse call — see shaderpp.Parse's doc comment for the concurrency
// contract.
type PropertyMap struct {
	values   map[IdString]int32
	registry *idRegistry
}

// NewPropertyMap returns an empty property environment.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{
		values:   make(map[IdString]int32),
		registry: newIDRegistry(),
	}
}

// NewPropertyMapFrom seeds a PropertyMap from a plain name->value map, as
// produced by internal/config.LoadProperties.
func NewPropertyMapFrom(seed map[string]int32) *PropertyMap {
	pm := NewPropertyMap()
	for name, v := range seed {
		pm.Set(name, v)
	}
	return pm
}

// Get returns the value stored under name, or 0 if name has never been set.
func (m *PropertyMap) Get(name string) int32 {
	return m.GetDefault(name, 0)
}

// GetDefault returns the value stored under name, or def if name has never
// been set.
func (m *PropertyMap) GetDefault(name string, def int32) int32 {
	id := m.registry.intern(name)
	if v, ok := m.values[id]; ok {
		return v
	}
	return def
}

// Set stores value under name.
func (m *PropertyMap) Set(name string, value int32) {
	id := m.registry.intern(name)
	m.values[id] = value
}

// Names returns every property name ever read or written, in no particular
// order.
func (m *PropertyMap) Names() []string {
	out := make([]string, 0, len(m.registry.names))
	for _, name := range m.registry.names {
		out = append(out, name)
	}
	return out
}

// parseOperand resolves an argument as a signed decimal literal, falling
// back to a property lookup (default 0) when it does not parse as a
// number. This is the shared rule behind @pset/@padd/.../@foreach's
// start/count arguments and @set/@add/... 's op2 argument.
func parseOperand(properties *PropertyMap, arg string) int32 {
	if n := parseSignedInt(arg); n != notANumber {
		return n
	}
	return properties.Get(arg)
}

// parseSignedInt parses a leading base-10 signed integer from arg,
// ignoring any trailing bytes: "5abc" reads as 5. notANumber is returned
// only when no digits are consumed at all, or on int32 overflow. An arg
// that is itself the literal sentinel value cannot be told apart from a
// genuine parse failure and reads as a property lookup instead; an
// accepted, documented limitation.
func parseSignedInt(arg string) int32 {
	end := 0
	if end < len(arg) && (arg[end] == '+' || arg[end] == '-') {
		end++
	}
	digitsFrom := end
	for end < len(arg) && arg[end] >= '0' && arg[end] <= '9' {
		end++
	}
	if end == digitsFrom {
		return notANumber
	}

	n, err := strconv.ParseInt(arg[:end], 10, 32)
	if err != nil {
		return notANumber
	}
	v := int32(n)
	if v == notANumber {
		return notANumber
	}
	return v
}
