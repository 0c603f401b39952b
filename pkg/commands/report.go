package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/commands/options"
	"tableflip.dev/shoplist/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Count inventory, listed and bought items per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openCLISession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := report.Report{JSON: oo.JSON, Service: s.svc}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
