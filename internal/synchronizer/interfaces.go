package synchronizer

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/synchronizer_mock.go -package=mock

// Publisher announces domain events. Publish never blocks on subscribers.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}
