// Package rename provides the runner for renaming habits.
package rename

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/printers"
)

// Rename changes a habit's name.
type Rename struct {
	ID     habit.ID
	Name   string
	Store  *app.Store
	Output printers.Options
}

// Do renames the habit. A blank name leaves it as it was.
func (n *Rename) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not rename, no store")
	}
	snap, err := app.Apply(n.Store, app.Command{Kind: app.KindRename, ID: n.ID, Name: n.Name})
	if err != nil {
		return fmt.Errorf("habit %s: %w", n.ID, err)
	}
	return printers.Render(n.Output, snap)
}
