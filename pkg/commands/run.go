package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/habitflow/pkg/runner/run"
	"tableflip.dev/habitflow/pkg/schedule"
)

func addRun(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Stay in the foreground and reset habits at every midnight",
		Example: `
habitflow run --verbose
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ss, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer ss.close()

			period, err := resetPeriod(ss.config)
			if err != nil {
				return err
			}
			sched := schedule.New(ss.store, ss.logger)
			sched.Period = period
			sched.OnReset = func(t schedule.Trigger) {
				ss.logger.Info("habits reset", zap.String("trigger", string(t)))
			}

			r := run.Run{
				Store:     ss.store,
				Scheduler: sched,
				Logger:    ss.logger,
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
