// Package graphql models the input side of a GraphQL type system: the types
// a query variable can be declared with. Output-only constructs (objects with
// resolvers, interfaces, unions) are out of scope.
package graphql

import "strings"

// Type is the closed set of input type variants. Wrapper variants (List,
// NonNull) nest arbitrarily around a named variant (Scalar, Enum,
// InputObject) or an unresolved Named reference.
type Type interface {
	// String renders the type in type-reference notation, e.g. "[User!]!".
	String() string

	inputType()
}

type Scalar struct {
	Name        string
	Description string
}

type EnumValue struct {
	Name        string
	Description string
}

type Enum struct {
	Name        string
	Description string
	Values      []EnumValue
}

type InputField struct {
	Name        string
	Description string
	Type        Type
}

type InputObject struct {
	Name        string
	Description string
	Fields      []InputField
}

// List wraps an element type.
type List struct {
	OfType Type
}

// NonNull marks its wrapped type as required.
type NonNull struct {
	OfType Type
}

// Named is a by-name reference that has not been resolved against a Schema.
type Named struct {
	Name string
}

func (t *Scalar) inputType()      {}
func (t *Enum) inputType()        {}
func (t *InputObject) inputType() {}
func (t *List) inputType()        {}
func (t *NonNull) inputType()     {}
func (t *Named) inputType()       {}

func (t *Scalar) String() string      { return t.Name }
func (t *Enum) String() string        { return t.Name }
func (t *InputObject) String() string { return t.Name }
func (t *Named) String() string       { return t.Name }

func (t *List) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	if t.OfType != nil {
		sb.WriteString(t.OfType.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (t *NonNull) String() string {
	if t.OfType == nil {
		return "!"
	}
	return t.OfType.String() + "!"
}

// FieldByName returns the field with the given name, if declared.
func (t *InputObject) FieldByName(name string) (InputField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return InputField{}, false
}

// ValueByName returns the enum value with the given name, if declared.
func (t *Enum) ValueByName(name string) (EnumValue, bool) {
	for _, v := range t.Values {
		if v.Name == name {
			return v, true
		}
	}
	return EnumValue{}, false
}

// UnwrapNonNull strips NonNull wrappers, exposing the nullable form.
func UnwrapNonNull(t Type) Type {
	for {
		nn, ok := t.(*NonNull)
		if !ok {
			return t
		}
		t = nn.OfType
	}
}

// NamedType strips all List and NonNull wrappers, exposing the named form.
// Returns nil for nil input.
func NamedType(t Type) Type {
	for t != nil {
		switch w := t.(type) {
		case *NonNull:
			t = w.OfType
		case *List:
			t = w.OfType
		default:
			return t
		}
	}
	return nil
}
