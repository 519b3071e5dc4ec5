package websocket

import (
	"encoding/json"

	"github.com/thesrcielos/WordSlide/internal/logger"
	"github.com/thesrcielos/WordSlide/internal/metrics"
	"github.com/thesrcielos/WordSlide/websocket/message"
	"github.com/thesrcielos/WordSlide/websocket/router"
	"github.com/thesrcielos/WordSlide/websocket/state"
)

const maxMessageSize = 4096

func listenClientMessages(registry *state.Registry, client *state.Client) {
	defer func() {
		logger.Log.Debugw("live client disconnected", "client", client.ID)
		registry.Unregister(client.ID)
		metrics.LiveConnections.Dec()
		client.Conn.Close()
	}()

	client.Conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}

		var msg message.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Log.Debugw("error decoding message", "client", client.ID, "error", err)
			continue
		}

		router.RouteMessage(registry, client.ID, msg)
	}
}
