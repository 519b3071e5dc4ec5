package message

import (
	"encoding/json"
)

const (
	TypeSubscribe  = "SUBSCRIBE"
	TypeSubscribed = "SUBSCRIBED"
	TypeError      = "ERROR"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type SubscribePayload struct {
	GameMode string `json:"gameMode"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
