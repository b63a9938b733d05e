package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where habits are stored and when they were last reset.",
		Example: `
habitflow info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ss, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer ss.close()

			s := info.Info{
				Config: ss.config,
				Store:  ss.store,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
