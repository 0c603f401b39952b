package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/commands/options"
	"tableflip.dev/shoplist/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category keys items can be filed under",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := categories.Categories{JSON: oo.JSON}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
