// Package run keeps the reset scheduler alive without a UI.
package run

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/schedule"
)

// Run resets habits at every local midnight until interrupted.
type Run struct {
	Store     *app.Store
	Scheduler *schedule.Scheduler
	Logger    *zap.Logger
}

func (n *Run) Do(ctx context.Context) error {
	if n.Store == nil || n.Scheduler == nil {
		return errors.New("can not run, no store")
	}
	logger := n.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("waiting for midnight", zap.Int("habits", len(n.Store.Habits())))
	err := n.Scheduler.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("stopped")
		return nil
	}
	return err
}
