package models

import "time"

// Event is an association event listing
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	// Registrations is carried for the frontend; nothing increments it yet.
	Registrations int `json:"registrations"`
}

// MentorshipSession pairs a student with a mentor on a topic
type MentorshipSession struct {
	ID          int64     `json:"id"`
	StudentName string    `json:"studentName"`
	MentorName  string    `json:"mentorName"`
	Topic       string    `json:"topic"`
	Duration    int       `json:"duration"` // minutes
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notification is an announcement pushed to portal users
type Notification struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	TargetAudience string    `json:"targetAudience"`
	CreatedAt      time.Time `json:"createdAt"`
	IsRead         bool      `json:"isRead"`
}
