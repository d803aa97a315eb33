package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/qvar/graphql"
)

func loadSchema(path string) (*graphql.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file: %w", err)
	}
	defer f.Close()

	schema, err := graphql.SchemaFromIntrospection(f)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", path, err)
	}
	return schema, nil
}

// loadVariableRefs reads a variable-map file: variable name → type reference
// string, e.g. {"episode": "Episode!"}. JSON and YAML are accepted, keyed off
// the extension.
func loadVariableRefs(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variables file: %w", err)
	}

	refs := map[string]string{}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &refs); err != nil {
			return nil, fmt.Errorf("decode variables file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &refs); err != nil {
			return nil, fmt.Errorf("decode variables file %s: %w", path, err)
		}
	}
	return refs, nil
}

// loadVariableTypes resolves every entry of a variable-map file against the
// schema.
func loadVariableTypes(path string, schema *graphql.Schema) (map[string]graphql.Type, error) {
	refs, err := loadVariableRefs(path)
	if err != nil {
		return nil, err
	}

	varTypes := make(map[string]graphql.Type, len(refs))
	for name, ref := range refs {
		t, err := graphql.ParseTypeRef(ref, schema)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		varTypes[name] = t
	}
	return varTypes, nil
}
