// Package ui launches the interactive terminal interface.
package ui

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/store"
	"tableflip.dev/habitflow/pkg/tui"
)

type UI struct {
	Store       *app.Store
	Persistence store.Persistence
	Period      time.Duration
	Logger      *zap.Logger
}

func (d *UI) Do(ctx context.Context) error {
	if d.Store == nil {
		return errors.New("can not open ui, no store")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("ui requires a terminal; use `habitflow list` instead")
	}
	return tui.Run(ctx, d.Store, d.Persistence, d.Period, d.Logger)
}
