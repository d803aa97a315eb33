package graphql

import "fmt"

// Builtin scalars. Completion logic compares against these by identity, so a
// Schema always hands out the package-level singletons for builtin names.
var (
	Int     = &Scalar{Name: "Int", Description: "A signed 32-bit integer."}
	Float   = &Scalar{Name: "Float", Description: "A signed double-precision floating-point value."}
	String  = &Scalar{Name: "String", Description: "A UTF-8 character sequence."}
	Boolean = &Scalar{Name: "Boolean", Description: "Either true or false."}
	ID      = &Scalar{Name: "ID", Description: "A unique identifier."}
)

var builtinScalars = []*Scalar{Int, Float, String, Boolean, ID}

// Schema is a registry of named input types. Declaration order is preserved
// because completion candidates are emitted in it.
type Schema struct {
	names []string
	types map[string]Type
}

// NewSchema returns a schema with the builtin scalars pre-registered.
func NewSchema() *Schema {
	s := &Schema{types: make(map[string]Type)}
	for _, sc := range builtinScalars {
		s.names = append(s.names, sc.Name)
		s.types[sc.Name] = sc
	}
	return s
}

// Register adds a named type. Wrapper and reference variants have no
// standalone identity and are rejected, as are duplicate names.
func (s *Schema) Register(t Type) error {
	var name string
	switch v := t.(type) {
	case *Scalar:
		name = v.Name
	case *Enum:
		name = v.Name
	case *InputObject:
		name = v.Name
	default:
		return fmt.Errorf("register type: %T has no name", t)
	}
	if name == "" {
		return fmt.Errorf("register type: empty name")
	}
	if _, exists := s.types[name]; exists {
		return fmt.Errorf("register type: %s already registered", name)
	}
	s.names = append(s.names, name)
	s.types[name] = t
	return nil
}

// Type returns the named type, or nil if not registered.
func (s *Schema) Type(name string) Type {
	return s.types[name]
}

// Types returns all registered types in declaration order.
func (s *Schema) Types() []Type {
	out := make([]Type, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.types[name])
	}
	return out
}
