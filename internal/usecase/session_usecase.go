package usecase

import "context"

// SessionUsecase performs housekeeping on stored refresh tokens.
type SessionUsecase interface {
	// PurgeExpiredSessions deletes expired refresh tokens and reports how many were removed.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
