package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/constants"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for development; restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamClient is one websocket subscriber watching a session's events.
type streamClient struct {
	code string
	conn *websocket.Conn
	send chan []byte
}

type broadcastMsg struct {
	code    string
	payload []byte
}

// Hub fans action outcomes out to the websocket subscribers of each
// session. The stream is one-way; clients act through the HTTP endpoints.
type Hub struct {
	clients    map[string]map[*streamClient]bool
	register   chan *streamClient
	unregister chan *streamClient
	broadcast  chan broadcastMsg
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*streamClient]bool),
		register:   make(chan *streamClient),
		unregister: make(chan *streamClient),
		broadcast:  make(chan broadcastMsg, 64),
	}
}

// Run starts the hub's main loop. Should be run as a goroutine. When ctx
// is cancelled the loop stops and no longer accepts registrations.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logging.Info("event hub stopping", nil)
			return
		case client := <-h.register:
			if h.clients[client.code] == nil {
				h.clients[client.code] = make(map[*streamClient]bool)
			}
			h.clients[client.code][client] = true

		case client := <-h.unregister:
			if subs, ok := h.clients[client.code]; ok && subs[client] {
				delete(subs, client)
				close(client.send)
				if len(subs) == 0 {
					delete(h.clients, client.code)
				}
			}

		case msg := <-h.broadcast:
			for client := range h.clients[msg.code] {
				select {
				case client.send <- msg.payload:
				default:
					// Slow consumer; drop it rather than block the hub.
					delete(h.clients[msg.code], client)
					close(client.send)
				}
			}
		}
	}
}

// Broadcast sends an action outcome to every subscriber of a join code.
func (h *Hub) Broadcast(code string, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		logging.Error("failed to encode stream payload", err, nil)
		return
	}
	h.broadcast <- broadcastMsg{code: code, payload: b}
}

// StreamEvents upgrades the request to a websocket and subscribes it to
// the session's action outcomes.
func (h *SessionHandler) StreamEvents(c *gin.Context) {
	code := normalizeJoinCode(c.Param("code"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	if _, err := h.repo.FindSessionByJoinCode(code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, nil)
		return
	}

	client := &streamClient{code: code, conn: conn, send: make(chan []byte, 64)}
	h.hub.register <- client

	go client.writePump()
	go client.readPump(h.hub)
}

// readPump discards inbound frames; it exists to notice disconnects and
// answer pings.
func (c *streamClient) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *streamClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
