package graphql

import "testing"

func TestParseTypeRef(t *testing.T) {
	schema := NewSchema()
	if err := schema.Register(&Enum{Name: "Episode"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		ref  string
		want string
	}{
		{ref: "Int", want: "Int"},
		{ref: "Episode", want: "Episode"},
		{ref: "Episode!", want: "Episode!"},
		{ref: "[Episode]", want: "[Episode]"},
		{ref: "[Episode!]!", want: "[Episode!]!"},
		{ref: "[[Int]]", want: "[[Int]]"},
		{ref: "  String  ", want: "String"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			typ, err := ParseTypeRef(tt.ref, schema)
			if err != nil {
				t.Fatalf("ParseTypeRef(%q) = %v", tt.ref, err)
			}
			if got := typ.String(); got != tt.want {
				t.Errorf("ParseTypeRef(%q) = %s, want %s", tt.ref, got, tt.want)
			}
		})
	}
}

func TestParseTypeRefResolvesAgainstSchema(t *testing.T) {
	schema := NewSchema()
	episode := &Enum{Name: "Episode"}
	if err := schema.Register(episode); err != nil {
		t.Fatal(err)
	}

	typ, err := ParseTypeRef("[Episode!]!", schema)
	if err != nil {
		t.Fatal(err)
	}
	if NamedType(typ) != Type(episode) {
		t.Error("named part is not the registered enum instance")
	}
}

func TestParseTypeRefErrors(t *testing.T) {
	schema := NewSchema()

	tests := []struct {
		name string
		ref  string
	}{
		{name: "unknown type", ref: "Nope"},
		{name: "missing bracket", ref: "[Int"},
		{name: "empty", ref: ""},
		{name: "trailing garbage", ref: "Int!!"},
		{name: "bare bang", ref: "!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTypeRef(tt.ref, schema); err == nil {
				t.Errorf("ParseTypeRef(%q) succeeded, want error", tt.ref)
			}
		})
	}
}
