package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/commands/options"
	"tableflip.dev/habitflow/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <habit id>",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a habit",
		Example: `
habitflow delete 1760745600000
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a habit id")
			}
			return io.ParseID(args[0])
		},
		ValidArgsFunction: habitIDCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ss, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer ss.close()

			s := remove.Remove{
				ID:     io.ID,
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
