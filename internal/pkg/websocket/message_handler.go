package websocket

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/auth"
)

const anonymousSender = "Anonymous"

// ChatStore keeps the chat history
type ChatStore interface {
	AddChatMessage(msg models.ChatMessage) models.ChatMessage
}

// TokenValidator verifies demo tokens presented on join
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// inboundMessage is a frame received from a viewer
type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinPayload struct {
	Name     string `json:"name"`
	UserType string `json:"userType"`
	College  string `json:"college"`
	Token    string `json:"token"`
}

type chatPayload struct {
	Message  string `json:"message"`
	Sender   string `json:"sender"`
	UserType string `json:"userType"`
}

type typingPayload struct {
	User     string `json:"user"`
	UserType string `json:"userType"`
}

// MessageHandler processes frames sent by viewers
type MessageHandler struct {
	hub    *Hub
	chats  ChatStore
	tokens TokenValidator
	logger zerolog.Logger
}

// NewMessageHandler creates a new MessageHandler. tokens may be nil, in which
// case join tokens are ignored.
func NewMessageHandler(hub *Hub, chats ChatStore, tokens TokenValidator, logger zerolog.Logger) *MessageHandler {
	return &MessageHandler{
		hub:    hub,
		chats:  chats,
		tokens: tokens,
		logger: logger,
	}
}

// Handle dispatches one raw frame from a viewer. Malformed frames and unknown
// events are logged and dropped.
func (h *MessageHandler) Handle(client *Client, raw []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.logger.Warn().Err(err).Str("viewerID", client.ID()).Msg("Failed to unmarshal viewer message")
		return
	}

	switch msg.Event {
	case models.ClientEventJoin:
		var payload joinPayload
		if !h.decode(client, msg, &payload) {
			return
		}
		h.handleJoin(client, payload)

	case models.ClientEventSendMessage:
		var payload chatPayload
		if !h.decode(client, msg, &payload) {
			return
		}
		h.handleChat(client, payload)

	case models.ClientEventTypingStart, models.ClientEventTypingStop:
		var payload typingPayload
		if len(msg.Data) > 0 && !h.decode(client, msg, &payload) {
			return
		}
		h.handleTyping(client, msg.Event, payload)

	default:
		h.logger.Debug().Str("viewerID", client.ID()).Str("event", msg.Event).Msg("Ignoring unknown viewer event")
	}
}

func (h *MessageHandler) decode(client *Client, msg inboundMessage, out interface{}) bool {
	if err := json.Unmarshal(msg.Data, out); err != nil {
		h.logger.Warn().
			Err(err).
			Str("viewerID", client.ID()).
			Str("event", msg.Event).
			Msg("Invalid viewer payload")
		return false
	}
	return true
}

// handleJoin resolves the announced identity, preferring a valid demo token
func (h *MessageHandler) handleJoin(client *Client, payload joinPayload) {
	identity := models.ViewerIdentity{
		Name:     strings.TrimSpace(payload.Name),
		UserType: payload.UserType,
		College:  payload.College,
	}

	if payload.Token != "" && h.tokens != nil {
		claims, err := h.tokens.ValidateToken(payload.Token)
		if err != nil {
			h.logger.Warn().Err(err).Str("viewerID", client.ID()).Msg("Ignoring invalid demo token on join")
		} else {
			identity = claims.Identity()
		}
	}

	if identity.Name == "" {
		identity.Name = anonymousSender
	}

	if !h.hub.Identify(client, identity) {
		h.logger.Debug().Str("viewerID", client.ID()).Msg("Ignoring repeated join")
		return
	}

	h.logger.Info().
		Str("viewerID", client.ID()).
		Str("name", identity.Name).
		Str("userType", identity.UserType).
		Msg("Viewer joined")
}

// handleChat stores the message and broadcasts it in one step so chat ids
// follow broadcast order
func (h *MessageHandler) handleChat(client *Client, payload chatPayload) {
	if strings.TrimSpace(payload.Message) == "" {
		h.logger.Debug().Str("viewerID", client.ID()).Msg("Ignoring empty chat message")
		return
	}

	identity, _ := h.hub.Identity(client)
	sender := firstNonEmpty(payload.Sender, identity.Name, anonymousSender)
	userType := firstNonEmpty(payload.UserType, identity.UserType)

	h.hub.Commit(func() []models.BroadcastEvent {
		stored := h.chats.AddChatMessage(models.ChatMessage{
			Message:  payload.Message,
			Sender:   sender,
			UserType: userType,
		})
		return []models.BroadcastEvent{{Name: models.EventNewMessage, Data: stored}}
	})
}

func (h *MessageHandler) handleTyping(client *Client, event string, payload typingPayload) {
	identity, _ := h.hub.Identity(client)
	notice := models.TypingNotice{
		User:     firstNonEmpty(payload.User, identity.Name, anonymousSender),
		UserType: firstNonEmpty(payload.UserType, identity.UserType),
	}

	name := models.EventUserTyping
	if event == models.ClientEventTypingStop {
		name = models.EventUserStopTyping
	}
	h.hub.Publish(models.BroadcastEvent{Name: name, Data: notice})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
