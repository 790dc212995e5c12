package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/vonneumann/pkg/predicate"
)

// predicatesCommand lists the built-in shading predicates.
func (c *CLI) predicatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "predicates",
		Short: "List the built-in shading predicates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range predicate.Names() {
				printKeyValue(name, predicate.Describe(name))
			}
		},
	}
}
