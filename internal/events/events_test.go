package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	mu   sync.Mutex
	got  []interface{}
	mode []string
}

func (r *recordingBroadcaster) Broadcast(gameMode string, msg interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = append(r.mode, gameMode)
	r.got = append(r.got, msg)
}

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	msg := Message{Type: RoundRecorded, Payload: StatsEvent{UserID: 3, GameMode: "tetris", WordsSolved: 4, TotalMoves: 20, At: at}}

	encoded, err := Encode(msg)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestDecode_RejectsIncompleteMessages(t *testing.T) {
	_, err := Decode(`{"type":"ROUND_RECORDED","payload":{}}`)
	assert.Error(t, err)

	_, err = Decode(`not json`)
	assert.Error(t, err)
}

func TestLocalBroker_BroadcastsToGameMode(t *testing.T) {
	rec := &recordingBroadcaster{}
	broker := NewLocalBroker(rec)
	msg := Message{Type: StatsReset, Payload: StatsEvent{UserID: 1, GameMode: "original"}}

	t.Cleanup(broker.Close)

	require.NoError(t, broker.Publish(context.Background(), msg))
	assert.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return len(rec.got) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"original"}, rec.mode)
	assert.Equal(t, msg, rec.got[0])
}

type blockingBroadcaster struct {
	release chan struct{}
}

func (b *blockingBroadcaster) Broadcast(string, interface{}) {
	<-b.release
}

func TestLocalBroker_PublishDoesNotWaitForDelivery(t *testing.T) {
	slow := &blockingBroadcaster{release: make(chan struct{})}
	broker := NewLocalBroker(slow)
	t.Cleanup(func() {
		close(slow.release)
		broker.Close()
	})
	msg := Message{Type: RoundRecorded, Payload: StatsEvent{UserID: 1, GameMode: "original"}}

	start := time.Now()
	for i := 0; i < localQueueSize; i++ {
		require.NoError(t, broker.Publish(context.Background(), msg))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	assert.Eventually(t, func() bool {
		return errors.Is(broker.Publish(context.Background(), msg), ErrQueueFull)
	}, time.Second, 5*time.Millisecond)
}

func TestLocalBroker_Closed(t *testing.T) {
	broker := NewLocalBroker(&recordingBroadcaster{})
	broker.Close()
	broker.Close()
	assert.ErrorIs(t, broker.Publish(context.Background(), Message{}), ErrBrokerClosed)
}

func TestRedisBroker_DeliverDropsBadPayload(t *testing.T) {
	rec := &recordingBroadcaster{}
	broker := NewRedisBroker(nil, rec)

	broker.deliver("garbage")
	assert.Empty(t, rec.got)

	broker.deliver(`{"type":"ROUND_RECORDED","payload":{"userId":2,"gameMode":"tetris"}}`)
	assert.Equal(t, []string{"tetris"}, rec.mode)
}
