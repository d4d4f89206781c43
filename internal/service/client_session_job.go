package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-travel-journal/models"
)

// DefaultKeepAliveInterval is how often the terminal client checks its
// session when no interval is given.
const DefaultKeepAliveInterval = 30 * time.Second

// ClientSessionJob keeps the terminal client's session fresh in the
// background. Interactive clients have no request loop that would refresh the
// tokens on the way, so the job asks AuthService.Session on a ticker.
type ClientSessionJob interface {
	// Start launches the background goroutine. onRefresh receives every
	// session returned by the check, onExpired is called once when the
	// session cannot be kept alive. Any previously running job is stopped
	// first.
	Start(ctx context.Context, sessionID string, interval time.Duration, onRefresh func(models.Session), onExpired func())

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

type clientSessionJob struct {
	authService AuthService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a job that is idle until Start is called.
func NewClientSessionJob(authService AuthService) ClientSessionJob {
	return &clientSessionJob{authService: authService}
}

func (j *clientSessionJob) Start(ctx context.Context, sessionID string, interval time.Duration, onRefresh func(models.Session), onExpired func()) {
	if interval <= 0 {
		interval = DefaultKeepAliveInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				session, err := j.authService.Session(jobCtx, sessionID)
				switch {
				case errors.Is(err, ErrAuthRequired):
					if onExpired != nil {
						onExpired()
					}
					return
				case err != nil:
					// transient, try again on the next tick
				case onRefresh != nil:
					onRefresh(session)
				}
			}
		}
	}()
}

func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
