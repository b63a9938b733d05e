// Package add provides the runner for creating habits.
package add

import (
	"context"
	"errors"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/printers"
)

// Add appends a habit and prints the updated list.
type Add struct {
	Name   string
	Store  *app.Store
	Output printers.Options
}

// Do adds the habit. A blank name changes nothing.
func (n *Add) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	snap, err := app.Apply(n.Store, app.Command{Kind: app.KindAdd, Name: n.Name})
	if err != nil {
		return err
	}
	return printers.Render(n.Output, snap)
}
