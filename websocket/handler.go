package websocket

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/WordSlide/internal/logger"
	"github.com/thesrcielos/WordSlide/internal/metrics"
	"github.com/thesrcielos/WordSlide/internal/stats"
	"github.com/thesrcielos/WordSlide/websocket/state"
)

type Handler struct {
	registry *state.Registry
	upgrader websocket.Upgrader
}

// NewHandler accepts connections whose Origin passes allowOrigin. Requests
// without an Origin header (non-browser clients) are accepted.
func NewHandler(registry *state.Registry, allowOrigin func(origin string) bool) *Handler {
	return &Handler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowOrigin(origin)
			},
		},
	}
}

func (h *Handler) Live(c echo.Context) error {
	gameMode := strings.TrimSpace(c.QueryParam("gameMode"))
	if gameMode == "" {
		gameMode = stats.DefaultGameMode
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Log.Warnw("websocket upgrade failed", "error", err)
		return nil
	}

	clientID := uuid.New().String()
	client := h.registry.Register(clientID, gameMode, ws)
	metrics.LiveConnections.Inc()
	logger.Log.Debugw("live client connected", "client", clientID, "gameMode", gameMode)

	go listenClientMessages(h.registry, client)
	return nil
}
