package commands

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/habitflow/pkg/app"
	"tableflip.dev/habitflow/pkg/schedule"
	"tableflip.dev/habitflow/pkg/store"
)

// session is the state every command starts from: configuration, the disk
// store and a Store that already caught up on a missed daily reset.
type session struct {
	config      store.Config
	persistence store.Persistence
	store       *app.Store
	logger      *zap.Logger
}

func openSession(ctx context.Context) (*session, error) {
	logger, err := logs.Logger()
	if err != nil {
		return nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	s, err := app.Open(ctx, p, app.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if schedule.New(s, logger).CheckOnStartup() {
		logger.Info("habits reset for a new day", zap.String("day", s.LastReset().String()))
	}

	return &session{
		config:      cfg,
		persistence: p,
		store:       s,
		logger:      logger,
	}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
