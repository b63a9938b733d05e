// Package toggle provides the runner for marking a habit done or pending.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/habit"
	"tableflip.dev/habitflow/pkg/printers"
)

// Toggle flips the completion state of a habit.
type Toggle struct {
	ID     habit.ID
	Store  *app.Store
	Output printers.Options
}

// Do executes the toggle for the configured habit ID.
func (n *Toggle) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not toggle, no store")
	}
	snap, err := app.Apply(n.Store, app.Command{Kind: app.KindToggle, ID: n.ID})
	if err != nil {
		return fmt.Errorf("habit %s: %w", n.ID, err)
	}
	return printers.Render(n.Output, snap)
}
