// Package remove provides the runner for deleting habits.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/printers"
)

// Remove deletes a habit.
type Remove struct {
	ID     habit.ID
	Store  *app.Store
	Output printers.Options
}

func (n *Remove) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}
	snap, err := app.Apply(n.Store, app.Command{Kind: app.KindDelete, ID: n.ID})
	if err != nil {
		return fmt.Errorf("habit %s: %w", n.ID, err)
	}
	return printers.Render(n.Output, snap)
}
