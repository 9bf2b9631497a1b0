package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(refreshTokenRepo repository.RefreshTokenRepository, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		refreshTokenRepo: refreshTokenRepo,
		logger:           logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired sessions")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Purged expired sessions", slog.Int64("count", deleted))
	}

	return deleted, nil
}
