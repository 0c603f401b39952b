package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/commands/options"
	"tableflip.dev/shoplist/pkg/runner/inventory"
	"tableflip.dev/shoplist/pkg/snake"
)

func addInventory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Manage the inventory of known items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newInventoryAddCmd(), newInventoryListCmd(), newInventoryRemoveCmd())
	topLevel.AddCommand(cmd)
}

func newInventoryAddCmd() *cobra.Command {
	co := &options.CategoryOptions{}
	oo := &options.OutputOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "add <name...> --category <key>",
		Short: "Add an item to the inventory",
		Long: `Add an item to the inventory.

When the name or the category is missing and stdin is a terminal, they are
asked for interactively.`,
		Example: `
shoplist inventory add Leite --category frigorifico
shoplist inventory add Papel de cozinha -c limpeza-higiene
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				n, err := snake.PromptName(cmd)
				if errors.Is(err, snake.ErrNotInteractive) {
					return errors.New("item name is required")
				} else if err != nil {
					return err
				}
				name = n
			}
			if co.Category == "" {
				k, err := snake.SelectCategory(cmd)
				if errors.Is(err, snake.ErrNotInteractive) {
					return errors.New("--category is required")
				} else if err != nil {
					return err
				}
				co.Category = string(k)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openCLISession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			if len(args) > 0 {
				name = strings.Join(args, " ")
			}
			r := inventory.Add{
				Name:     name,
				Category: co.Key(),
				JSON:     oo.JSON,
				Service:  s.svc,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newInventoryListCmd() *cobra.Command {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list", "get"},
		Short:   "Show the inventory grouped by category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := inventory.List{
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Service: s.svc,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	return cmd
}

func newInventoryRemoveCmd() *cobra.Command {
	io := &options.IDOptions{}
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item from the inventory",
		Long: `Delete an item from the inventory after confirmation.

The shopping list keeps its copy of the item.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := inventory.Remove{
				ID:      io.ID,
				Yes:     yo.Yes,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
				Service: s.svc,
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, yo)
	return cmd
}
