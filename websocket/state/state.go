package state

import (
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	ID       string
	GameMode string
	Conn     *websocket.Conn
	ConnMu   sync.Mutex
}

// Registry tracks live connections by the game mode they follow.
type Registry struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*Client)}
}

func (r *Registry) Register(id, gameMode string, conn *websocket.Conn) *Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := &Client{
		ID:       id,
		GameMode: gameMode,
		Conn:     conn,
	}
	r.clients[id] = client
	return client
}

func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, id)
}

func (r *Registry) Get(id string) *Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.clients[id]
}

func (r *Registry) SetGameMode(id, gameMode string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[id]
	if !ok {
		return false
	}
	client.GameMode = gameMode
	return true
}

func (r *Registry) GameModeOf(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return "", false
	}
	return client.GameMode, true
}

func (r *Registry) InMode(gameMode string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*Client, 0)
	for _, c := range r.clients {
		if c.GameMode == gameMode {
			matched = append(matched, c)
		}
	}
	return matched
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}
