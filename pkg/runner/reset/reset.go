// Package reset provides the runner for the manual daily reset.
package reset

import (
	"context"
	"errors"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/printers"
)

// Reset clears every completion flag, the same way the midnight timer does.
type Reset struct {
	Store  *app.Store
	Output printers.Options
}

func (n *Reset) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not reset, no store")
	}
	snap, err := app.Apply(n.Store, app.Command{Kind: app.KindReset})
	if err != nil {
		return err
	}
	return printers.Render(n.Output, snap)
}
