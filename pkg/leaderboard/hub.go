package leaderboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// spectator is one websocket watching the live feed.
type spectator struct {
	ws   *websocket.Conn
	send chan []byte
}

// Hub broadcasts accepted entries to every connected spectator.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mutex   sync.RWMutex
	clients map[*spectator]struct{}
}

// NewHub creates a hub with no spectators
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// the game is served from other origins
				return true
			},
		},
		logger:  logger,
		clients: make(map[*spectator]struct{}),
	}
}

// ServeHTTP upgrades the request and streams entries until the peer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade connection", "error", err)
		return
	}

	s := &spectator{ws: ws, send: make(chan []byte, 256)}
	h.add(s)

	go s.writePump()
	h.readPump(s)
}

// readPump discards anything the spectator sends and unregisters it on close.
func (h *Hub) readPump(s *spectator) {
	defer func() {
		h.remove(s)
		s.ws.Close()
	}()

	for {
		if _, _, err := s.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("spectator read failed", "error", err)
			}
			return
		}
	}
}

func (s *spectator) writePump() {
	defer s.ws.Close()

	for message := range s.send {
		if err := s.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	s.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) add(s *spectator) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[s] = struct{}{}
}

func (h *Hub) remove(s *spectator) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[s]; ok {
		delete(h.clients, s)
		close(s.send)
	}
}

// Broadcast sends e to every spectator. A spectator whose buffer is full is
// disconnected.
func (h *Hub) Broadcast(e Entry) {
	msg, err := json.Marshal(e)
	if err != nil {
		h.logger.Error("failed to encode entry", "error", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for s := range h.clients {
		select {
		case s.send <- msg:
		default:
			s.ws.Close()
		}
	}
}

// Len returns the number of connected spectators
func (h *Hub) Len() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Close disconnects every spectator
func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for s := range h.clients {
		delete(h.clients, s)
		close(s.send)
	}
}
