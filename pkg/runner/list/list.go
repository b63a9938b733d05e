// Package list provides the runner that prints today's habits.
package list

import (
	"context"
	"errors"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/printers"
)

type List struct {
	Store  *app.Store
	Output printers.Options
}

func (n *List) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no store")
	}
	return printers.Render(n.Output, n.Store.Snapshot())
}
