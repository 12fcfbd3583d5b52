package models

import "time"

// ChatMessage is a message sent over the live channel and kept in memory
type ChatMessage struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	UserType  string    `json:"userType,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ViewerIdentity is the metadata a viewer announces when it joins
type ViewerIdentity struct {
	Name     string `json:"name"`
	UserType string `json:"userType,omitempty"`
	College  string `json:"college,omitempty"`
}
