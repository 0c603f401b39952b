package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/shoplist/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	var ephemeral bool
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
shoplist ui
shoplist ui --ephemeral
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI, so logs only go to log.file.
			s, err := openSession(sessionOptions{ephemeral: ephemeral})
			if err != nil {
				return err
			}
			defer s.Close()
			i := ui.UI{Service: s.svc, Log: s.log}
			return i.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Keep everything in memory, starting from demo data.")

	topLevel.AddCommand(cmd)
}
