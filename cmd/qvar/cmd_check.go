package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dhamidi/qvar/graphql"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <introspection.json> <vars.{json,yaml}>",
		Short: "Verify that a variable map's type references resolve against a schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := loadSchema(args[0])
			if err != nil {
				return err
			}

			refs, err := loadVariableRefs(args[1])
			if err != nil {
				return err
			}

			names := make([]string, 0, len(refs))
			for name := range refs {
				names = append(names, name)
			}
			sort.Strings(names)

			bad := 0
			for _, name := range names {
				t, err := graphql.ParseTypeRef(refs[name], schema)
				if err != nil {
					fmt.Printf("%s: %v\n", name, err)
					bad++
					continue
				}
				fmt.Printf("%s: %s ok\n", name, t)
			}

			if bad > 0 {
				return fmt.Errorf("%d of %d variables failed to resolve", bad, len(names))
			}
			return nil
		},
	}
}
