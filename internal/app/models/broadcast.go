package models

import "time"

// Event names sent from the server to every viewer
const (
	EventInitialData     = "initial_data"
	EventNewStudent      = "new_student"
	EventNewAlumni       = "new_alumni"
	EventNewEvent        = "new_event"
	EventNewMentorship   = "new_mentorship"
	EventNewNotification = "new_notification"
	EventAnalyticsUpdate = "analytics_update"
	EventUserJoined      = "user_joined"
	EventUserLeft        = "user_left"
	EventNewMessage      = "new_message"
	EventUserTyping      = "user_typing"
	EventUserStopTyping  = "user_stop_typing"
	EventLiveStatsUpdate = "live_stats_update"
	EventLiveActivity    = "live_activity"
	EventMentorshipNews  = "mentorship_update"
)

// Event names sent from a viewer to the server
const (
	ClientEventJoin        = "user_join"
	ClientEventSendMessage = "send_message"
	ClientEventTypingStart = "typing_start"
	ClientEventTypingStop  = "typing_stop"
)

// BroadcastEvent is a named payload fanned out to all connected viewers
type BroadcastEvent struct {
	Name string
	Data interface{}
}

// PresenceNotice is the payload of user_joined and user_left
type PresenceNotice struct {
	User      ViewerIdentity `json:"user"`
	Timestamp time.Time      `json:"timestamp"`
}

// TypingNotice is the payload of user_typing and user_stop_typing
type TypingNotice struct {
	User     string `json:"user"`
	UserType string `json:"userType,omitempty"`
}

// ActivityMessage is a synthetic status line produced by the generators
type ActivityMessage struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	Timestamp time.Time `json:"timestamp"`
}
