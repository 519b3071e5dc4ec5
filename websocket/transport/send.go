package transport

import (
	"time"

	"github.com/thesrcielos/WordSlide/internal/logger"
	"github.com/thesrcielos/WordSlide/websocket/state"
)

const writeWait = 5 * time.Second

type OutgoingMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func SendToClient(client *state.Client, msg interface{}) {
	if client == nil || client.Conn == nil {
		return
	}

	client.ConnMu.Lock()
	defer client.ConnMu.Unlock()

	_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := client.Conn.WriteJSON(msg); err != nil {
		logger.Log.Debugw("error sending message", "client", client.ID, "error", err)
	}
}

// Broadcaster pushes messages to every client following a game mode.
type Broadcaster struct {
	registry *state.Registry
}

func NewBroadcaster(registry *state.Registry) *Broadcaster {
	return &Broadcaster{registry: registry}
}

func (b *Broadcaster) Broadcast(gameMode string, msg interface{}) {
	for _, client := range b.registry.InMode(gameMode) {
		SendToClient(client, msg)
	}
}
