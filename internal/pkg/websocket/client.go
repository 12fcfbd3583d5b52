package websocket

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 64 * 1024
)

// Client is one connected viewer: a middleman between the websocket
// connection and the hub
type Client struct {
	id  string
	hub *Hub

	conn *websocket.Conn

	// Buffered channel of outbound frames, closed by the hub
	send chan []byte

	// Announced identity, nil until the first join. Guarded by hub.mu.
	identity *models.ViewerIdentity

	messages *MessageHandler
	logger   zerolog.Logger
}

// newClient creates a viewer session with a fresh transport identifier
func newClient(hub *Hub, conn *websocket.Conn, messages *MessageHandler, sendBuffer int, logger zerolog.Logger) *Client {
	id := uuid.NewString()
	return &Client{
		id:       id,
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		messages: messages,
		logger:   logger.With().Str("viewerID", id).Logger(),
	}
}

// ID returns the viewer's transport identifier
func (c *Client) ID() string {
	return c.id
}

// enqueue queues a frame without blocking. Only the hub calls it, under its
// lock, so the channel is never closed concurrently.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// readPump pumps messages from the websocket connection to the message handler
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().Msg("WebSocket closed normally")
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("Unexpected WebSocket close")
			} else {
				c.logger.Debug().Err(err).Msg("WebSocket read error")
			}
			break
		}

		c.messages.Handle(c, message)
	}
}

// writePump pumps frames from the hub to the websocket connection. It is the
// only writer on the connection, so frames leave in the order they were queued.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				c.logger.Debug().Err(err).Msg("WebSocket write error")
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
