package commands

import (
	"fmt"
	"time"

	"tableflip.dev/habitflow/pkg/store"
	"tableflip.dev/habitflow/pkg/timeutil"
)

func resetPeriod(cfg store.Config) (time.Duration, error) {
	d, _, err := timeutil.ParsePeriod(cfg.ResetPeriod())
	if err != nil {
		return 0, fmt.Errorf("reset.period: %w", err)
	}
	return d, nil
}
