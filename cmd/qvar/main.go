package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qvar",
		Short: "Completion tooling for GraphQL query variables",
	}

	rootCmd.AddCommand(newTypesCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSuggestCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
