// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
)

// DefaultBuffer is the subscription buffer used when Subscribe gets a
// non-positive size.
const DefaultBuffer = 16

// Bus is an in-process typed event bus. It is safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]*Subscription
	nextID uint64
	hooks  []func(Event)
	closed bool

	dropped atomic.Uint64

	logger *logger.Logger
}

// NewBus returns an empty bus.
func NewBus(logger *logger.Logger) *Bus {
	return &Bus{
		subs:   make(map[uint64]*Subscription),
		logger: logger,
	}
}

// Publish delivers a locally produced event to every matching subscriber and
// to the publish hooks (see OnPublish).
func (b *Bus) Publish(ctx context.Context, event Event) {
	if event == nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	b.deliver(event)
	for _, hook := range b.hooks {
		hook(event)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*Bus.Publish").
		Str("kind", event.Kind()).
		Int("subscribers", len(b.subs)).
		Msg("event published")
}

// Deliver hands an event that came from another instance to the local
// subscribers only. Publish hooks are skipped so relayed events are not sent
// back out.
func (b *Bus) Deliver(event Event) {
	if event == nil {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	b.deliver(event)
}

// deliver must be called with at least the read lock held.
func (b *Bus) deliver(event Event) {
	for _, sub := range b.subs {
		if sub.filter != nil && !sub.filter(event) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			b.dropped.Add(1)
			b.logger.Warn().
				Str("func", "*Bus.deliver").
				Str("kind", event.Kind()).
				Uint64("subscription", sub.id).
				Msg("subscriber buffer is full, event dropped")
		}
	}
}

// Subscribe registers a subscriber. Only events accepted by filter are
// delivered; a nil filter accepts everything. Subscribing to a closed bus
// returns a subscription whose channel is already closed.
func (b *Bus) Subscribe(buffer int, filter func(Event) bool) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:     b.nextID,
		ch:     make(chan Event, buffer),
		filter: filter,
		bus:    b,
	}
	if b.closed {
		sub.closed = true
		close(sub.ch)
		return sub
	}
	b.subs[sub.id] = sub
	return sub
}

// OnPublish registers fn to be called for every locally published event.
// fn runs on the publisher's goroutine and must not block.
func (b *Bus) OnPublish(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, fn)
}

// Dropped returns how many deliveries were skipped because a subscriber
// buffer was full.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

// Subscribers returns the number of live subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscription. Later publishes are ignored.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		sub.closed = true
		close(sub.ch)
	}
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub.closed {
		return
	}
	delete(b.subs, sub.id)
	sub.closed = true
	close(sub.ch)
}

// Subscription is a registered receiver of bus events.
type Subscription struct {
	id     uint64
	ch     chan Event
	filter func(Event) bool
	bus    *Bus

	// guarded by bus.mu
	closed bool
}

// Events returns the channel events arrive on. It is closed by Close or when
// the bus is closed.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close unregisters the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.bus.unsubscribe(s)
}

// ForUser accepts the events owned by userID.
func ForUser(userID string) func(Event) bool {
	return func(e Event) bool {
		return e.Owner() == userID
	}
}
