package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSessions struct {
	calls atomic.Int64
	err   error
}

func (s *countingSessions) PurgeExpiredSessions(_ context.Context) (int64, error) {
	s.calls.Add(1)

	return 0, s.err
}

func TestSessionJanitor_SweepsUntilStopped(t *testing.T) {
	sessions := &countingSessions{}
	j := newSessionJanitor(sessions, 10*time.Millisecond, slog.New(slog.DiscardHandler))

	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return sessions.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	require.NoError(t, j.stop(context.Background()))
	require.NoError(t, <-errCh)
}

func TestSessionJanitor_KeepsRunningAfterFailure(t *testing.T) {
	sessions := &countingSessions{err: errors.New("db down")}
	j := newSessionJanitor(sessions, 10*time.Millisecond, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(ctx) }()

	assert.Eventually(t, func() bool { return sessions.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-errCh)
}
