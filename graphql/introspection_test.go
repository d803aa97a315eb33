package graphql

import (
	"strings"
	"testing"
)

const starWarsIntrospection = `{
  "data": {
    "__schema": {
      "types": [
        {"kind": "OBJECT", "name": "Query", "fields": []},
        {"kind": "SCALAR", "name": "Boolean", "description": "ignored, builtin wins"},
        {"kind": "SCALAR", "name": "Date", "description": "An ISO-8601 date."},
        {
          "kind": "ENUM",
          "name": "Episode",
          "description": "The episodes of the original trilogy.",
          "enumValues": [
            {"name": "NEWHOPE", "description": "Released in 1977."},
            {"name": "EMPIRE", "description": "Released in 1980."},
            {"name": "JEDI", "description": "Released in 1983."}
          ]
        },
        {
          "kind": "INPUT_OBJECT",
          "name": "ReviewInput",
          "description": "The input object sent when someone is creating a new review.",
          "inputFields": [
            {
              "name": "stars",
              "description": "0-5 stars",
              "type": {"kind": "NON_NULL", "ofType": {"kind": "SCALAR", "name": "Int"}}
            },
            {
              "name": "commentary",
              "description": "Comment about the movie, optional",
              "type": {"kind": "SCALAR", "name": "String"}
            },
            {
              "name": "episodes",
              "type": {"kind": "LIST", "ofType": {"kind": "ENUM", "name": "Episode"}}
            },
            {
              "name": "followup",
              "type": {"kind": "INPUT_OBJECT", "name": "ReviewInput"}
            }
          ]
        }
      ]
    }
  }
}`

func TestSchemaFromIntrospection(t *testing.T) {
	schema, err := SchemaFromIntrospection(strings.NewReader(starWarsIntrospection))
	if err != nil {
		t.Fatalf("SchemaFromIntrospection() = %v", err)
	}

	if schema.Type("Query") != nil {
		t.Error("output type Query registered, want skipped")
	}
	if schema.Type("Date") == nil {
		t.Error("custom scalar Date not registered")
	}
	if schema.Type("Boolean") != Type(Boolean) {
		t.Error("Boolean is not the builtin singleton")
	}

	enum, ok := schema.Type("Episode").(*Enum)
	if !ok {
		t.Fatalf("Episode = %T, want *Enum", schema.Type("Episode"))
	}
	wantValues := []string{"NEWHOPE", "EMPIRE", "JEDI"}
	if len(enum.Values) != len(wantValues) {
		t.Fatalf("Episode has %d values, want %d", len(enum.Values), len(wantValues))
	}
	for i, want := range wantValues {
		if enum.Values[i].Name != want {
			t.Errorf("Episode value %d = %s, want %s", i, enum.Values[i].Name, want)
		}
	}

	obj, ok := schema.Type("ReviewInput").(*InputObject)
	if !ok {
		t.Fatalf("ReviewInput = %T, want *InputObject", schema.Type("ReviewInput"))
	}
	if len(obj.Fields) != 4 {
		t.Fatalf("ReviewInput has %d fields, want 4", len(obj.Fields))
	}
	if got := obj.Fields[0].Type.String(); got != "Int!" {
		t.Errorf("stars type = %s, want Int!", got)
	}
	if got := obj.Fields[2].Type.String(); got != "[Episode]" {
		t.Errorf("episodes type = %s, want [Episode]", got)
	}

	// Self-reference resolves to the same instance.
	followup, ok := obj.FieldByName("followup")
	if !ok {
		t.Fatal("followup field missing")
	}
	if NamedType(followup.Type) != Type(obj) {
		t.Error("followup does not point back at ReviewInput")
	}
}

func TestSchemaFromIntrospectionBareSchema(t *testing.T) {
	bare := `{"__schema": {"types": [{"kind": "ENUM", "name": "Color", "enumValues": [{"name": "RED"}]}]}}`

	schema, err := SchemaFromIntrospection(strings.NewReader(bare))
	if err != nil {
		t.Fatalf("SchemaFromIntrospection() = %v", err)
	}
	if schema.Type("Color") == nil {
		t.Error("Color not registered from bare __schema document")
	}
}

func TestSchemaFromIntrospectionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "nope"},
		{name: "no types", input: `{"data": {"__schema": {"types": []}}}`},
		{name: "empty object", input: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SchemaFromIntrospection(strings.NewReader(tt.input)); err == nil {
				t.Error("SchemaFromIntrospection() succeeded, want error")
			}
		})
	}
}
