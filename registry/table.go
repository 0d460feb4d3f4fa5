package registry

import "fmt"

// table is the process-wide registry, indexed by Type. It is populated
// exclusively during package init() (typically by package model) and never
// mutated afterward.
var table = map[Type]*Descriptor{}

// Register installs d under d.Type. Panics on a duplicate or invalid Type,
// since that represents a programming mistake caught at process startup,
// not a runtime condition: violations here are meant to terminate the
// process.
func Register(d *Descriptor) {
	if d.Type == TypeInvalid {
		panic(fmt.Sprintf("registry: cannot register descriptor %q with TypeInvalid", d.TypeName))
	}
	if _, exists := table[d.Type]; exists {
		panic(fmt.Errorf("%w: %d (%s)", ErrAlreadyRegistered, d.Type, d.TypeName))
	}
	table[d.Type] = d
}

// Find looks up the descriptor for t.
func Find(t Type) (*Descriptor, error) {
	d, ok := table[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	return d, nil
}

// Enumerate returns every registered descriptor, for schema generation.
// Order is unspecified.
func Enumerate() []*Descriptor {
	out := make([]*Descriptor, 0, len(table))
	for _, d := range table {
		out = append(out, d)
	}
	return out
}

// reset clears the table. Test-only: lets package registry's own tests
// exercise self-check against a deliberately broken table
// without disturbing the real one built by package model's init().
func reset() {
	table = map[Type]*Descriptor{}
}
