package graphql

import (
	"fmt"
	"strings"
)

// ParseTypeRef parses a type-reference string such as "Int", "User!" or
// "[Episode!]!" and resolves its named part against the schema. Unknown
// names and malformed references are errors.
func ParseTypeRef(ref string, schema *Schema) (Type, error) {
	p := &typeRefParser{input: strings.TrimSpace(ref), schema: schema}
	t, err := p.parse()
	if err != nil {
		return nil, fmt.Errorf("parse type reference %q: %w", ref, err)
	}
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("parse type reference %q: trailing %q", ref, p.input[p.pos:])
	}
	return t, nil
}

type typeRefParser struct {
	input  string
	pos    int
	schema *Schema
}

func (p *typeRefParser) parse() (Type, error) {
	var inner Type

	switch {
	case p.peek() == '[':
		p.pos++
		elem, err := p.parse()
		if err != nil {
			return nil, err
		}
		if p.peek() != ']' {
			return nil, fmt.Errorf("missing ] at offset %d", p.pos)
		}
		p.pos++
		inner = &List{OfType: elem}
	default:
		name := p.readName()
		if name == "" {
			return nil, fmt.Errorf("expected type name at offset %d", p.pos)
		}
		named := p.schema.Type(name)
		if named == nil {
			return nil, fmt.Errorf("unknown type %s", name)
		}
		inner = named
	}

	if p.peek() == '!' {
		p.pos++
		return &NonNull{OfType: inner}, nil
	}
	return inner, nil
}

func (p *typeRefParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *typeRefParser) readName() string {
	start := p.pos
	for p.pos < len(p.input) && isNameByte(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
