package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
)

// SessionSweeper periodically removes expired sessions from a store that
// does not expire them by itself.
type SessionSweeper struct {
	sessions store.SessionStore
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeper(sessions store.SessionStore, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = config.DefaultSweepInterval
	}
	return &SessionSweeper{sessions: sessions, interval: interval, logger: logger}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			removed, err := s.sessions.Sweep(ctx)
			if err != nil {
				s.logger.Err(err).Str("func", "*SessionSweeper.Run").Msg("session sweep failed")
				continue
			}
			if removed > 0 {
				s.logger.Debug().Str("func", "*SessionSweeper.Run").Int("removed", removed).Msg("expired sessions removed")
			}
		}
	}
}
