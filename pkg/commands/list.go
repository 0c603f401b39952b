package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/commands/options"
	"tableflip.dev/shoplist/pkg/runner/shopping"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"shopping"},
		Short:   "Manage the shopping list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newListAddCmd(),
		newListShowCmd(),
		newListToggleCmd(),
		newListRemoveCmd(),
		newListUncheckAllCmd(),
		newListClearCmd(),
	)
	topLevel.AddCommand(cmd)
}

func newListAddCmd() *cobra.Command {
	io := &options.IDOptions{}

	return &cobra.Command{
		Use:   "add <id>",
		Short: "Put an inventory item on the shopping list",
		Example: `
shoplist inventory ls -k
shoplist list add 1718037600000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := shopping.Add{ID: io.ID, Service: s.svc}
			return r.Do(cmd.Context())
		},
	}
}

func newListShowCmd() *cobra.Command {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"get", "show"},
		Short:   "Show the shopping list, unbought items first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := shopping.List{
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

func newListToggleCmd() *cobra.Command {
	io := &options.IDOptions{}

	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"buy", "check"},
		Short:   "Mark a shopping list item bought, or not bought",
		Args: func(cmd *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := shopping.Toggle{ID: io.ID, Service: s.svc}
			return r.Do(cmd.Context())
		},
	}
}

func newListRemoveCmd() *cobra.Command {
	io := &options.IDOptions{}
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an item from the shopping list",
		Args: func(cmd *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := shopping.Remove{ID: io.ID, Prompted: prompted(cmd, yo, s)}
			return r.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, yo)
	return cmd
}

func newListUncheckAllCmd() *cobra.Command {
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "uncheck-all",
		Short: "Clear the bought mark of every item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := shopping.UncheckAll{Prompted: prompted(cmd, yo, s)}
			return r.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, yo)
	return cmd
}

func newListClearCmd() *cobra.Command {
	yo := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the shopping list",
		Long:  "Empty the shopping list after confirmation. This can not be undone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openCLISession()
			if err != nil {
				return err
			}
			defer s.Close()

			r := shopping.Clear{Prompted: prompted(cmd, yo, s)}
			return r.Do(cmd.Context())
		},
	}

	options.AddConfirmArgs(cmd, yo)
	return cmd
}

func prompted(cmd *cobra.Command, yo *options.ConfirmOptions, s *session) shopping.Prompted {
	return shopping.Prompted{
		Yes:     yo.Yes,
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Service: s.svc,
	}
}
