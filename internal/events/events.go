package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	RoundRecorded = "ROUND_RECORDED"
	StatsReset    = "STATS_RESET"
)

type StatsEvent struct {
	UserID      uint      `json:"userId"`
	GameMode    string    `json:"gameMode"`
	WordsSolved int       `json:"wordsSolved"`
	TotalMoves  int       `json:"totalMoves"`
	At          time.Time `json:"at"`
}

// Message is the envelope both on the Redis channel and on the websocket.
type Message struct {
	Type    string     `json:"type"`
	Payload StatsEvent `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Broadcaster delivers a message to local subscribers of a game mode.
type Broadcaster interface {
	Broadcast(gameMode string, msg interface{})
}

func Encode(msg Message) (string, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("encoding %s message: %w", msg.Type, err)
	}
	return string(data), nil
}

func Decode(payload string) (Message, error) {
	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return Message{}, fmt.Errorf("decoding message: %w", err)
	}
	if msg.Type == "" || msg.Payload.GameMode == "" {
		return Message{}, fmt.Errorf("decoding message: missing type or game mode")
	}
	return msg, nil
}

const localQueueSize = 256

var (
	ErrQueueFull    = errors.New("live feed queue full")
	ErrBrokerClosed = errors.New("live feed closed")
)

// LocalBroker delivers to this instance's subscribers from a single worker
// goroutine, so Publish never waits on a websocket write.
type LocalBroker struct {
	local  Broadcaster
	queue  chan Message
	done   chan struct{}
	closed sync.Once
}

func NewLocalBroker(local Broadcaster) *LocalBroker {
	b := &LocalBroker{
		local: local,
		queue: make(chan Message, localQueueSize),
		done:  make(chan struct{}),
	}
	go b.run()
	return b
}

// Publish drops the message when the queue is full.
func (b *LocalBroker) Publish(_ context.Context, msg Message) error {
	select {
	case <-b.done:
		return ErrBrokerClosed
	default:
	}

	select {
	case b.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

func (b *LocalBroker) Close() {
	b.closed.Do(func() { close(b.done) })
}

func (b *LocalBroker) run() {
	for {
		select {
		case <-b.done:
			return
		case msg := <-b.queue:
			b.local.Broadcast(msg.Payload.GameMode, msg)
		}
	}
}
