package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

// Hub tracks WebSocket clients per game and fans out state updates.
type Hub struct {
	games map[string]map[*Client]bool
	mu    sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMessage
	closeGame  chan string
	done       chan struct{}

	logger *log.Logger
}

// Client is one WebSocket connection watching a game.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	gameID string
	send   chan []byte
}

type broadcastMessage struct {
	gameID  string
	message []byte
}

// NewHub creates a hub. Call Run to start it.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		games:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastMessage),
		closeGame:  make(chan string),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.games[client.gameID] == nil {
				h.games[client.gameID] = make(map[*Client]bool)
			}
			h.games[client.gameID][client] = true
			h.mu.Unlock()
			h.logger.Printf("client registered: game=%s", client.gameID)

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()
			h.logger.Printf("client unregistered: game=%s", client.gameID)

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.games[msg.gameID] {
				select {
				case client.send <- msg.message:
				default:
					// Too slow to keep up; drop it.
					h.remove(client)
				}
			}
			h.mu.Unlock()

		case gameID := <-h.closeGame:
			h.mu.Lock()
			n := len(h.games[gameID])
			for client := range h.games[gameID] {
				h.remove(client)
			}
			h.mu.Unlock()
			if n > 0 {
				h.logger.Printf("closed %d clients: game=%s", n, gameID)
			}

		case <-ctx.Done():
			h.mu.Lock()
			for _, clients := range h.games {
				for client := range clients {
					h.remove(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

// remove drops a client and closes its send channel. Callers hold h.mu.
func (h *Hub) remove(client *Client) {
	clients, ok := h.games[client.gameID]
	if !ok || !clients[client] {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.games, client.gameID)
	}
}

// Broadcast queues a message for every client watching a game. It is a
// no-op once the hub has stopped.
func (h *Hub) Broadcast(gameID string, message []byte) {
	select {
	case h.broadcast <- &broadcastMessage{gameID: gameID, message: message}:
	case <-h.done:
	}
}

// Close disconnects every client watching a game. It is a no-op once the
// hub has stopped.
func (h *Hub) Close(gameID string) {
	select {
	case h.closeGame <- gameID:
	case <-h.done:
	}
}

// Watchers returns the number of clients watching a game.
func (h *Hub) Watchers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// attach registers a connection and starts its pumps. The first message
// sent is initial, so a new watcher sees the current position at once.
func (h *Hub) attach(conn *websocket.Conn, gameID string, initial []byte) {
	client := &Client{
		hub:    h,
		conn:   conn,
		gameID: gameID,
		send:   make(chan []byte, sendBuffer),
	}
	client.send <- initial

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump discards incoming messages; it exists to notice the peer
// closing and to answer pings.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Printf("websocket error: %v", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{}) //nolint:errcheck
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
