package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dragenda/agenda-api/internal/repository"
)

// CleanupWorker periodically removes expired sessions and verification
// challenges. Expired rows are harmless to readers, so the sweep is purely
// about keeping the tables small.
type CleanupWorker struct {
	sessions      repository.SessionRepository
	verifications repository.VerificationRepository
	interval      time.Duration
	now           func() time.Time
}

func NewCleanupWorker(sessions repository.SessionRepository, verifications repository.VerificationRepository, interval time.Duration) *CleanupWorker {
	return &CleanupWorker{
		sessions:      sessions,
		verifications: verifications,
		interval:      interval,
		now:           time.Now,
	}
}

// Start blocks until ctx is cancelled, sweeping on every tick.
func (w *CleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	cutoff := w.now()

	if n, err := w.sessions.DeleteExpired(ctx, cutoff); err != nil {
		log.Error().Err(err).Msg("failed to delete expired sessions")
	} else if n > 0 {
		log.Info().Int64("deleted", n).Msg("removed expired sessions")
	}

	if n, err := w.verifications.DeleteExpired(ctx, cutoff); err != nil {
		log.Error().Err(err).Msg("failed to delete expired verifications")
	} else if n > 0 {
		log.Info().Int64("deleted", n).Msg("removed expired verifications")
	}
}
