// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synchronizer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
)

// DefaultEventsChannel is the Redis channel used when none is configured.
const DefaultEventsChannel = "travel-journal:events"

// relayOutbox bounds the events waiting to be sent to Redis.
const relayOutbox = 256

// relayMessage is the wire form of an event on the Redis channel.
type relayMessage struct {
	Instance string          `json:"instance"`
	Kind     string          `json:"kind"`
	Payload  json.RawMessage `json:"payload"`
}

// RedisRelay forwards locally published events to a Redis channel and hands
// events published by other instances to the local bus.
type RedisRelay struct {
	client     *redis.Client
	channel    string
	instanceID string
	bus        *Bus
	outbox     chan Event

	logger *logger.Logger
}

// NewRedisRelay hooks the relay into bus. Events published before Run starts
// wait in a bounded outbox.
func NewRedisRelay(client *redis.Client, channel string, bus *Bus, logger *logger.Logger) *RedisRelay {
	if channel == "" {
		channel = DefaultEventsChannel
	}
	r := &RedisRelay{
		client:     client,
		channel:    channel,
		instanceID: utils.NewID(),
		bus:        bus,
		outbox:     make(chan Event, relayOutbox),
		logger:     logger,
	}
	bus.OnPublish(r.enqueue)
	return r
}

// InstanceID identifies this process on the channel.
func (r *RedisRelay) InstanceID() string {
	return r.instanceID
}

func (r *RedisRelay) enqueue(event Event) {
	select {
	case r.outbox <- event:
	default:
		r.logger.Warn().Str("func", "*RedisRelay.enqueue").Str("kind", event.Kind()).Msg("relay outbox is full, event not forwarded")
	}
}

// Run subscribes to the channel and pumps events both ways until ctx is done.
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	// wait for the subscription confirmation so no remote event is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", r.channel, err)
	}

	r.logger.Info().Str("func", "*RedisRelay.Run").Str("channel", r.channel).Str("instance", r.instanceID).Msg("event relay started")

	incoming := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Str("func", "*RedisRelay.Run").Msg("event relay stopped")
			return nil

		case event := <-r.outbox:
			if err := r.send(ctx, event); err != nil {
				r.logger.Err(err).Str("func", "*RedisRelay.Run").Str("kind", event.Kind()).Msg("forwarding event failed")
			}

		case msg, ok := <-incoming:
			if !ok {
				return nil
			}
			r.receive(msg.Payload)
		}
	}
}

func (r *RedisRelay) send(ctx context.Context, event Event) error {
	data, err := r.encode(event)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, data).Err()
}

func (r *RedisRelay) encode(event Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event.Kind(), err)
	}
	return json.Marshal(relayMessage{Instance: r.instanceID, Kind: event.Kind(), Payload: payload})
}

// receive decodes a channel message. Own messages are ignored.
func (r *RedisRelay) receive(data string) {
	var msg relayMessage
	if err := json.Unmarshal([]byte(data), &msg); err != nil {
		r.logger.Err(err).Str("func", "*RedisRelay.receive").Msg("malformed relay message")
		return
	}
	if msg.Instance == r.instanceID {
		return
	}

	event, err := DecodeEvent(msg.Kind, msg.Payload)
	if err != nil {
		r.logger.Err(err).Str("func", "*RedisRelay.receive").Msg("unknown relay event")
		return
	}
	r.bus.Deliver(event)
}
