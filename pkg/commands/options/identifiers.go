package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitflow/pkg/habit"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     habit.ID
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", true,
		"Show the ID of each habit.")
}

// ParseID reads a habit id from a positional argument.
func (o *IDOptions) ParseID(arg string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid habit id %q", arg)
	}
	o.ID = habit.ID(n)
	return nil
}
