package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/commands/options"
	"tableflip.dev/habitflow/pkg/runner/reset"
)

func addReset(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Mark every habit pending, as the midnight reset does",
		Example: `
habitflow reset
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ss, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer ss.close()

			s := reset.Reset{
				Store:  ss.store,
				Output: output.Printer(io),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
