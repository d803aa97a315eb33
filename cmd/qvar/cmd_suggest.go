package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/qvar/vars"
)

func newSuggestCmd() *cobra.Command {
	var variablesFile string
	var at string
	var fields bool

	cmd := &cobra.Command{
		Use:   "suggest <introspection.json>",
		Short: "Print the completion candidates for an editing context",
		Long: `Print the completion candidates the engine would offer at a given
editing context inside a variables document.

The context is a dotted path: the first segment names a variable, the rest
name input object fields. An empty path means the top level of the document
(variable names). With --fields the path is treated as an object being
filled in and its field names are suggested instead of its value.

  qvar suggest schema.json --variables vars.json
  qvar suggest schema.json --variables vars.json --at episode
  qvar suggest schema.json --variables vars.json --at review.stars
  qvar suggest schema.json --variables vars.json --at review --fields`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(args[0])
			if err != nil {
				return err
			}

			opts := vars.Options{}
			if variablesFile != "" {
				varTypes, err := loadVariableTypes(variablesFile, schema)
				if err != nil {
					return err
				}
				opts.VariableToType = varTypes
			}

			state, err := stateForPath(at, fields)
			if err != nil {
				return err
			}

			result := vars.Hint(vars.Position{}, vars.Token{State: state}, opts)
			if result == nil || len(result.List) == 0 {
				fmt.Println("no suggestions")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, c := range result.List {
				typeName := ""
				if c.Type != nil {
					typeName = c.Type.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Text, typeName, c.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&variablesFile, "variables", "", "variable map file (name: typeref), JSON or YAML")
	cmd.Flags().StringVar(&at, "at", "", "editing context path, e.g. review.stars")
	cmd.Flags().BoolVar(&fields, "fields", false, "suggest the object's field names instead of its value")

	return cmd
}

// stateForPath builds the parse-state chain a tokenizer would report at the
// given editing context.
func stateForPath(path string, fields bool) (*vars.State, error) {
	if path == "" {
		// Inside the root object literal.
		state := vars.NewState(vars.KindDocument, 1)
		if fields {
			return nil, fmt.Errorf("--fields requires a path to an object-typed value")
		}
		return state, nil
	}

	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}
	}

	state := vars.NewState(vars.KindDocument, 1).
		PushNamed(vars.KindVariable, 2, segments[0])
	for _, seg := range segments[1:] {
		state = state.Push(vars.KindObjectValue, 0).
			PushNamed(vars.KindObjectField, 2, seg)
	}
	if fields {
		state = state.Push(vars.KindObjectValue, 0)
	}
	return state, nil
}
