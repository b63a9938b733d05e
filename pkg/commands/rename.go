package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/commands/options"
	"tableflip.dev/habitflow/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var name string

	cmd := &cobra.Command{
		Use:     "rename <habit id> <name>",
		Aliases: []string{"edit"},
		Short:   "Rename a habit",
		Example: `
habitflow rename 1760745600000 stretch for ten minutes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a habit id and a new name")
			}
			name = strings.Join(args[1:], " ")
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

			s := rename.Rename{
				ID:     io.ID,
				Name:   name,
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
