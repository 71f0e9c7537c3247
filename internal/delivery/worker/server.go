// Package worker hosts the outbox dispatcher loop. It polls the outbox
// table and delivers pending side effects until stopped.
package worker

import (
	"context"
	"log/slog"
	"time"

	"cakery/config"
	"cakery/internal/delivery"
	"cakery/internal/usecase"

	"go.uber.org/fx"
)

const defaultPollInterval = 5 * time.Second

type workerServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	outboxUC usecase.OutboxUsecase
	stopped  chan struct{}
}

// ServerParams holds dependencies for the outbox worker
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	OutboxUC usecase.OutboxUsecase
}

// NewServer creates the outbox dispatcher worker
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:      params.Cfg,
		logger:   params.Logger,
		outboxUC: params.OutboxUC,
		stopped:  make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve polls the outbox until the worker is stopped. Dispatch errors
// are logged and the loop keeps going; a failing side effect must never
// take the dispatcher down with it.
func (s *workerServer) Serve(ctx context.Context) error {
	interval := defaultPollInterval
	if s.cfg.Outbox != nil && s.cfg.Outbox.PollInterval > 0 {
		interval = s.cfg.Outbox.PollInterval
	}

	s.logger.Info("Starting outbox dispatcher", slog.Duration("pollInterval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopped:
			return nil
		case <-ticker.C:
			processed, err := s.outboxUC.DispatchPending(ctx)
			if err != nil {
				s.logger.Error("Outbox dispatch failed", slog.Any("error", err))

				continue
			}

			if processed > 0 {
				s.logger.Debug("Dispatched outbox messages", slog.Int("processed", processed))
			}
		}
	}
}

// stop signals the polling loop to exit.
func (s *workerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down outbox dispatcher")
	close(s.stopped)

	return nil
}
