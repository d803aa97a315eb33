// Package vars resolves completion candidates for a GraphQL query-variables
// document. The host tokenizer reports where in the grammar the cursor sits
// as a chain of parse states; this package walks that chain against the
// variables' declared types and proposes what can be typed next.
package vars

// Kind tags the syntactic context a parse state belongs to.
type Kind int

const (
	KindInvalid Kind = iota
	KindDocument
	KindVariable
	KindObjectValue
	KindObjectField
	KindListValue
	KindStringValue
	KindNumberValue
	KindBooleanValue
	KindNullValue
)

var kindNames = map[Kind]string{
	KindInvalid:      "Invalid",
	KindDocument:     "Document",
	KindVariable:     "Variable",
	KindObjectValue:  "ObjectValue",
	KindObjectField:  "ObjectField",
	KindListValue:    "ListValue",
	KindStringValue:  "StringValue",
	KindNumberValue:  "NumberValue",
	KindBooleanValue: "BooleanValue",
	KindNullValue:    "NullValue",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// State is one node of an immutable parse-state chain. The innermost state
// links back through prev to the outermost (Document) state. Producers must
// not form cycles; traversal does not defend against them.
type State struct {
	kind Kind
	step int
	name string
	prev *State
}

// NewState starts a chain, normally with KindDocument.
func NewState(kind Kind, step int) *State {
	return &State{kind: kind, step: step}
}

// Push derives an inner state on top of s.
func (s *State) Push(kind Kind, step int) *State {
	return &State{kind: kind, step: step, prev: s}
}

// PushNamed derives an inner state carrying an identifier, such as the
// variable name of a Variable state or the field name of an ObjectField.
func (s *State) PushNamed(kind Kind, step int, name string) *State {
	return &State{kind: kind, step: step, name: name, prev: s}
}

func (s *State) Kind() Kind   { return s.kind }
func (s *State) Step() int    { return s.step }
func (s *State) Name() string { return s.name }
func (s *State) Prev() *State { return s.prev }

// ForEachState calls fn once per state in the chain, outermost first, so
// later calls refine context established by earlier ones. Pure iteration:
// no state is skipped or filtered.
func ForEachState(state *State, fn func(*State)) {
	var chain []*State
	for s := state; s != nil; s = s.prev {
		chain = append(chain, s)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		fn(chain[i])
	}
}
