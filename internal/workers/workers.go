package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/synchronizer"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the jobs the configuration asks for. relay may be nil
// when Redis is not configured.
func NewWorkers(storages *store.Storages, relay *synchronizer.RedisRelay, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cfg.Session.Backend == config.BackendMemory && storages.SessionStore != nil {
		w.workers = append(w.workers, NewSessionSweeper(storages.SessionStore, cfg.Session.SweepInterval, logger))
	}
	if relay != nil {
		w.workers = append(w.workers, NewRelayWorker(relay, logger))
	}

	logger.Info().Int("workers", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
