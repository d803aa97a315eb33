package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/qvar/graphql"
)

func newTypesCmd() *cobra.Command {
	var includeBuiltins bool

	cmd := &cobra.Command{
		Use:   "types <introspection.json>",
		Short: "List the completable input types of a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(args[0])
			if err != nil {
				return err
			}

			for _, t := range schema.Types() {
				switch v := t.(type) {
				case *graphql.Scalar:
					if !includeBuiltins && isBuiltin(v) {
						continue
					}
					fmt.Printf("scalar %s\n", v.Name)
				case *graphql.Enum:
					fmt.Printf("enum %s {\n", v.Name)
					for _, val := range v.Values {
						fmt.Printf("  %s\n", val.Name)
					}
					fmt.Println("}")
				case *graphql.InputObject:
					fmt.Printf("input %s {\n", v.Name)
					for _, f := range v.Fields {
						fmt.Printf("  %s: %s\n", f.Name, f.Type)
					}
					fmt.Println("}")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeBuiltins, "builtins", false, "include builtin scalars")

	return cmd
}

func isBuiltin(s *graphql.Scalar) bool {
	switch s {
	case graphql.Int, graphql.Float, graphql.String, graphql.Boolean, graphql.ID:
		return true
	}
	return false
}
