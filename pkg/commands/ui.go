package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
habitflow ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ss, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer ss.close()

			period, err := resetPeriod(ss.config)
			if err != nil {
				return err
			}
			i := ui.UI{
				Store:       ss.store,
				Persistence: ss.persistence,
				Period:      period,
				Logger:      ss.logger,
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
