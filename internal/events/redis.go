package events

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thesrcielos/WordSlide/internal/logger"
)

const Channel = "wordslide:stats"

// RedisBroker fans events out to every instance subscribed to Channel.
type RedisBroker struct {
	db    *redis.Client
	local Broadcaster
}

func NewRedisBroker(db *redis.Client, local Broadcaster) *RedisBroker {
	return &RedisBroker{db: db, local: local}
}

func (r *RedisBroker) Publish(ctx context.Context, msg Message) error {
	payload, err := Encode(msg)
	if err != nil {
		return err
	}
	if err := r.db.Publish(ctx, Channel, payload).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", Channel, err)
	}
	return nil
}

// Subscribe returns once the subscription is confirmed; delivery runs until ctx is done.
func (r *RedisBroker) Subscribe(ctx context.Context) error {
	sub := r.db.Subscribe(ctx, Channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("error subscribing %w", err)
	}

	ch := sub.Channel()
	logger.Log.Infow("subscribed to stats channel", "channel", Channel)
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				r.deliver(m.Payload)
			}
		}
	}()

	return nil
}

func (r *RedisBroker) deliver(payload string) {
	msg, err := Decode(payload)
	if err != nil {
		logger.Log.Warnw("dropping stats message", "error", err)
		return
	}
	r.local.Broadcast(msg.Payload.GameMode, msg)
}
