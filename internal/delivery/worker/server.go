// Package worker runs background jobs next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionJanitor deletes expired refresh tokens on a fixed interval.
type sessionJanitor struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// NewServer creates the session janitor delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	interval := time.Hour
	if params.Cfg.Auth != nil && params.Cfg.Auth.SessionPurgeInterval > 0 {
		interval = params.Cfg.Auth.SessionPurgeInterval
	}

	j := newSessionJanitor(params.Sessions, interval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j, nil
}

func newSessionJanitor(sessions usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *sessionJanitor {
	return &sessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve sweeps once immediately, then on every tick until stopped or ctx ends.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	defer close(j.doneCh)

	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-j.stopCh:
			return nil
		case <-ticker.C:
		}
	}
}

func (j *sessionJanitor) sweep(ctx context.Context) {
	runID := uuid.NewString()
	logger := j.logger.With(slog.String("request_id", runID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, runID), logger)

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := j.sessions.PurgeExpiredSessions(ctx); err != nil {
		// Retried on the next tick.
		logger.Error("Session sweep failed", slog.Any("error", err))
	}
}

func (j *sessionJanitor) stop(ctx context.Context) error {
	j.logger.Info("Shutting down session janitor")
	close(j.stopCh)

	select {
	case <-j.doneCh:
	case <-ctx.Done():
	}

	return nil
}
