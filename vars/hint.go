package vars

import (
	"sort"
	"strings"

	"github.com/dhamidi/qvar/graphql"
)

// Position is a cursor location in the host editor, zero-based.
type Position struct {
	Line   int
	Column int
}

// Token is the lexical token under the cursor as reported by the host
// tokenizer, with the parse-state chain at its position.
type Token struct {
	Start int
	End   int
	Text  string
	State *State
}

// Candidate is one suggested insertion.
type Candidate struct {
	Text        string
	Type        graphql.Type
	Description string
}

// Result is an ordered candidate list plus the document range it replaces.
type Result struct {
	List []Candidate
	From Position
	To   Position
}

// Options carries the per-request inputs. VariableToType maps each declared
// variable name to its input type; it is read-only for the request.
type Options struct {
	VariableToType map[string]graphql.Type
}

// Hint computes the completion candidates at the cursor. It is pure: neither
// the options nor the state chain are mutated, and the same inputs always
// produce the same result. A nil result means there is nothing to suggest.
func Hint(cur Position, token Token, opts Options) *Result {
	state := token.State
	if state == nil {
		return nil
	}
	// A malformed token still carries the last valid context.
	if state.Kind() == KindInvalid {
		state = state.Prev()
		if state == nil {
			return nil
		}
	}

	kind := state.Kind()
	step := state.Step()

	// The document root can only be an object literal. This is the one hint
	// that works without a variable-to-type map.
	if kind == KindDocument && step == 0 {
		return hintList(cur, token, []Candidate{{Text: "{"}})
	}

	if opts.VariableToType == nil {
		return nil
	}

	info := typeInfoAt(opts.VariableToType, token.State)

	// Top level: variable names.
	if kind == KindDocument || (kind == KindVariable && step == 0) {
		names := make([]string, 0, len(opts.VariableToType))
		for name := range opts.VariableToType {
			names = append(names, name)
		}
		sort.Strings(names)
		list := make([]Candidate, 0, len(names))
		for _, name := range names {
			list = append(list, Candidate{
				Text: `"` + name + `": `,
				Type: opts.VariableToType[name],
			})
		}
		return hintList(cur, token, list)
	}

	// Input object fields.
	if kind == KindObjectValue || (kind == KindObjectField && step == 0) {
		if info.fields != nil {
			list := make([]Candidate, 0, len(info.fields))
			for _, f := range info.fields {
				list = append(list, Candidate{
					Text:        `"` + f.Name + `": `,
					Type:        f.Type,
					Description: f.Description,
				})
			}
			return hintList(cur, token, list)
		}
	}

	// Input values.
	if kind == KindStringValue || kind == KindNumberValue ||
		kind == KindBooleanValue || kind == KindNullValue ||
		(kind == KindListValue && step == 1) ||
		(kind == KindObjectField && step == 2) ||
		(kind == KindVariable && step == 2) {
		switch named := graphql.NamedType(info.typ).(type) {
		case *graphql.InputObject:
			return hintList(cur, token, []Candidate{{Text: "{"}})
		case *graphql.Enum:
			list := make([]Candidate, 0, len(named.Values))
			for _, v := range named.Values {
				list = append(list, Candidate{
					Text:        `"` + v.Name + `"`,
					Type:        named,
					Description: v.Description,
				})
			}
			return hintList(cur, token, list)
		case *graphql.Scalar:
			if named == graphql.Boolean {
				return hintList(cur, token, []Candidate{
					{Text: "true", Type: graphql.Boolean, Description: "Not false."},
					{Text: "false", Type: graphql.Boolean, Description: "Not true."},
				})
			}
		}
	}

	return nil
}

// typeInfo is the type context recovered at the cursor. A nil type means no
// expectation could be established; a nil field slice means no input object
// is open at this level.
type typeInfo struct {
	typ    graphql.Type
	fields []graphql.InputField
}

// typeInfoAt reduces the state chain, outermost first, into the expected
// type at the innermost state. Every unresolved lookup degrades to nil;
// nothing here fails hard.
func typeInfoAt(variableToType map[string]graphql.Type, state *State) typeInfo {
	var info typeInfo
	ForEachState(state, func(s *State) {
		switch s.Kind() {
		case KindVariable:
			info.typ = variableToType[s.Name()]
		case KindListValue:
			var nullable graphql.Type
			if info.typ != nil {
				nullable = graphql.UnwrapNonNull(info.typ)
			}
			if list, ok := nullable.(*graphql.List); ok {
				info.typ = list.OfType
			} else {
				info.typ = nil
			}
		case KindObjectValue:
			obj, ok := graphql.NamedType(info.typ).(*graphql.InputObject)
			if ok {
				info.fields = obj.Fields
			} else {
				info.fields = nil
			}
		case KindObjectField:
			info.typ = nil
			if s.Name() != "" && info.fields != nil {
				for _, f := range info.fields {
					if f.Name == s.Name() {
						info.typ = f.Type
						break
					}
				}
			}
		}
	})
	return info
}

// hintList filters the candidates against the current token text and anchors
// the replacement range. Candidate order is preserved. Returns nil when
// nothing survives the filter.
func hintList(cur Position, token Token, list []Candidate) *Result {
	hints := filterList(list, normalizeText(token.Text))
	if len(hints) == 0 {
		return nil
	}

	// Partial words and opened strings get replaced; punctuation and
	// whitespace get appended after.
	from := token.End
	if token.Text != "" {
		c := token.Text[0]
		if c == '"' || c == '_' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			from = token.Start
		}
	}

	return &Result{
		List: hints,
		From: Position{Line: cur.Line, Column: from},
		To:   Position{Line: cur.Line, Column: token.End},
	}
}

func filterList(list []Candidate, text string) []Candidate {
	if text == "" {
		return list
	}
	var out []Candidate
	for _, c := range list {
		if strings.Contains(normalizeText(c.Text), text) {
			out = append(out, c)
		}
	}
	return out
}

// normalizeText lowercases and strips everything but word characters, so a
// half-typed `"RE` still matches the candidate `"RED"`.
func normalizeText(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
