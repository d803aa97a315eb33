package graphql

import (
	"encoding/json"
	"fmt"
	"io"
)

// Wire shapes of the standard introspection query response. Only the parts
// relevant to input types are decoded.

type introspectionData struct {
	Schema introspectionSchema `json:"__schema"`
}

type introspectionSchema struct {
	Types []introspectionType `json:"types"`
}

type introspectionType struct {
	Kind        string                   `json:"kind"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	InputFields []introspectionInput     `json:"inputFields"`
	EnumValues  []introspectionEnumValue `json:"enumValues"`
}

type introspectionInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Type        introspectionTypeRef `json:"type"`
}

type introspectionTypeRef struct {
	Kind   string                `json:"kind"`
	Name   string                `json:"name"`
	OfType *introspectionTypeRef `json:"ofType"`
}

type introspectionEnumValue struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SchemaFromIntrospection builds a Schema from an introspection-query JSON
// document. Both the full response ({"data": {"__schema": …}}) and a bare
// {"__schema": …} object are accepted. Scalars, enums and input objects are
// registered; output-only kinds are skipped. Input objects may reference each
// other (including themselves), so registration happens in two passes: shells
// first, fields second.
func SchemaFromIntrospection(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read introspection document: %w", err)
	}

	var wrapped struct {
		Data introspectionData `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("decode introspection document: %w", err)
	}
	types := wrapped.Data.Schema.Types
	if len(types) == 0 {
		var bare introspectionData
		if err := json.Unmarshal(data, &bare); err == nil {
			types = bare.Schema.Types
		}
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("introspection document contains no types")
	}

	schema := NewSchema()

	// Pass 1: register shells so field types can resolve by name.
	var inputObjects []introspectionType
	for _, t := range types {
		if t.Name == "" || schema.Type(t.Name) != nil {
			continue
		}
		switch t.Kind {
		case "SCALAR":
			if err := schema.Register(&Scalar{Name: t.Name, Description: t.Description}); err != nil {
				return nil, err
			}
		case "ENUM":
			enum := &Enum{Name: t.Name, Description: t.Description}
			for _, v := range t.EnumValues {
				enum.Values = append(enum.Values, EnumValue{Name: v.Name, Description: v.Description})
			}
			if err := schema.Register(enum); err != nil {
				return nil, err
			}
		case "INPUT_OBJECT":
			if err := schema.Register(&InputObject{Name: t.Name, Description: t.Description}); err != nil {
				return nil, err
			}
			inputObjects = append(inputObjects, t)
		}
	}

	// Pass 2: wire input object fields.
	for _, t := range inputObjects {
		obj := schema.Type(t.Name).(*InputObject)
		for _, f := range t.InputFields {
			ft := resolveTypeRef(&f.Type, schema)
			if ft == nil {
				continue
			}
			obj.Fields = append(obj.Fields, InputField{
				Name:        f.Name,
				Description: f.Description,
				Type:        ft,
			})
		}
	}

	return schema, nil
}

// resolveTypeRef converts a wire type reference into a Type. References to
// types absent from the schema dissolve to nil rather than failing the load.
func resolveTypeRef(ref *introspectionTypeRef, schema *Schema) Type {
	if ref == nil {
		return nil
	}
	switch ref.Kind {
	case "NON_NULL":
		inner := resolveTypeRef(ref.OfType, schema)
		if inner == nil {
			return nil
		}
		return &NonNull{OfType: inner}
	case "LIST":
		inner := resolveTypeRef(ref.OfType, schema)
		if inner == nil {
			return nil
		}
		return &List{OfType: inner}
	default:
		return schema.Type(ref.Name)
	}
}
