package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// relay is the part of synchronizer.RedisRelay the worker drives.
type relay interface {
	Run(ctx context.Context) error
}

// RelayWorker runs the cross-instance event relay for the server's lifetime.
type RelayWorker struct {
	relay  relay
	logger *logger.Logger
}

func NewRelayWorker(r relay, logger *logger.Logger) *RelayWorker {
	return &RelayWorker{relay: r, logger: logger}
}

func (w *RelayWorker) Run(ctx context.Context) {
	err := w.relay.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		// events keep flowing locally; only other instances stop seeing them
		w.logger.Err(err).Str("func", "*RelayWorker.Run").Msg("event relay stopped")
	}
}
