package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Handler upgrades HTTP requests into viewer sessions
type Handler struct {
	hub        *Hub
	messages   *MessageHandler
	upgrader   websocket.Upgrader
	sendBuffer int
	logger     zerolog.Logger
}

// NewHandler creates a new WebSocket handler. Browsers may only connect
// from allowedOrigins; "*" allows any origin.
func NewHandler(hub *Hub, messages *MessageHandler, allowedOrigins []string, sendBuffer int, logger zerolog.Logger) *Handler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = struct{}{}
	}
	_, anyOrigin := origins["*"]

	return &Handler{
		hub:      hub,
		messages: messages,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || anyOrigin {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
		sendBuffer: sendBuffer,
		logger:     logger,
	}
}

// HandleConnection godoc
// @Summary Open the live portal channel
// @Description Upgrades the request to a WebSocket. The first frame is initial_data with the full shared state.
// @Tags realtime
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 403 {string} string "Origin not allowed"
// @Router /ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response
		h.logger.Warn().
			Err(err).
			Str("origin", c.GetHeader("Origin")).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := newClient(h.hub, conn, h.messages, h.sendBuffer, h.logger)
	if !h.hub.Register(client) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("viewerID", client.ID()).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
