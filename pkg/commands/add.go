package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/commands/options"
	"tableflip.dev/habitflow/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var name string

	cmd := &cobra.Command{
		Use:     "add <name>",
		Aliases: []string{"new"},
		Short:   "Add a habit",
		Example: `
habitflow add drink water
habitflow add "read 20 pages" --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ss, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			defer ss.close()

			s := add.Add{
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
