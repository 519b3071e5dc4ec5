package router

import (
	"encoding/json"
	"strings"

	"github.com/thesrcielos/WordSlide/internal/logger"
	"github.com/thesrcielos/WordSlide/websocket/message"
	"github.com/thesrcielos/WordSlide/websocket/state"
	"github.com/thesrcielos/WordSlide/websocket/transport"
)

type handlerFunc func(registry *state.Registry, clientID string, msg message.Message)

var handlers = map[string]handlerFunc{
	message.TypeSubscribe: handleSubscribe,
}

func RouteMessage(registry *state.Registry, clientID string, msg message.Message) {
	if handler, ok := handlers[msg.Type]; ok {
		handler(registry, clientID, msg)
	} else {
		logger.Log.Debugw("unknown message type", "client", clientID, "type", msg.Type)
	}
}

func handleSubscribe(registry *state.Registry, clientID string, msg message.Message) {
	client := registry.Get(clientID)
	if client == nil {
		return
	}

	var payload message.SubscribePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || strings.TrimSpace(payload.GameMode) == "" {
		transport.SendToClient(client, transport.OutgoingMessage{
			Type:    message.TypeError,
			Payload: message.ErrorPayload{Message: "gameMode is required"},
		})
		return
	}

	mode := strings.TrimSpace(payload.GameMode)
	registry.SetGameMode(clientID, mode)
	transport.SendToClient(client, transport.OutgoingMessage{
		Type:    message.TypeSubscribed,
		Payload: message.SubscribePayload{GameMode: mode},
	})
}
