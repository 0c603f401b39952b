package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/commands/options"
	"tableflip.dev/shoplist/pkg/item"
	"tableflip.dev/shoplist/pkg/runner/categories"
)

func addCollapse(topLevel *cobra.Command) {
	r := categories.Collapse{}

	cmd := &cobra.Command{
		Use:   "collapse <inventory|shoppingList> <category>",
		Short: "Collapse or expand a category group",
		Example: `
shoplist collapse inventory frescos
shoplist collapse list congelados
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return err
			}
			list, err := item.ParseListType(args[0])
			if err != nil {
				return err
			}
			r.List = list
			r.Category = category.Parse(args[1])
			return nil
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				return []string{string(item.Inventory), string(item.ShoppingList)}, cobra.ShellCompDirectiveNoFileComp
			case 1:
				return options.CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return err
			}
			defer s.Close()

			r.Service = s.svc
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
