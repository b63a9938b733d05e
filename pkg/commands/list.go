package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/commands/options"
	"tableflip.dev/habitflow/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"get", "ls"},
		Short:   "Show today's habits and progress",
		Example: `
habitflow list
habitflow ls --show-id=false
habitflow list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ss, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer ss.close()

			s := list.List{
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
