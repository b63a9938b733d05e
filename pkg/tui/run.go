package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/schedule"
	"tableflip.dev/habitflow/pkg/store"
)

// Run launches the interactive program. The midnight reset is armed for the
// lifetime of the program and its callbacks are queued onto the UI loop.
func Run(ctx context.Context, s *app.Store, p store.Persistence, period time.Duration, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := Options{}
	if p != nil {
		ch, err := p.Watch(ctx)
		if err != nil {
			logger.Warn("watching storage", zap.Error(err))
		} else {
			opts.Watch = ch
		}
	}

	prog := tea.NewProgram(New(ctx, s, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	sched := schedule.New(s, logger)
	sched.Period = period
	sched.Post = func(f func()) {
		prog.Send(postedMsg{run: f, label: "New day, habits reset"})
	}
	sched.Arm()
	defer sched.Stop()

	_, err := prog.Run()
	return err
}
