package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
)

// FlexibleString accepts either a JSON string or a JSON number, so forms that
// send a year as 2019 or "2019" bind the same way
type FlexibleString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleString(n.String())
	return nil
}

// OrDefault returns the value as submitted, or def when it is blank
func (f FlexibleString) OrDefault(def string) string {
	if strings.TrimSpace(string(f)) == "" {
		return def
	}
	return string(f)
}

// FlexibleInt accepts a JSON number or a numeric string. Fractions are
// truncated; anything that does not parse as a number binds as zero.
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	*f = 0
	data = bytes.TrimSpace(data)
	var text string
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	default:
		text = string(data)
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
		return nil
	}
	*f = FlexibleInt(int(n))
	return nil
}

// OrDefault returns the value when it is positive, or def otherwise
func (f FlexibleInt) OrDefault(def int) int {
	if f > 0 {
		return int(f)
	}
	return def
}

// CreateStudentRequest represents a student registration
type CreateStudentRequest struct {
	FirstName string         `json:"firstName" validate:"required" example:"Anjali"`
	LastName  string         `json:"lastName" validate:"required" example:"Murmu"`
	Email     string         `json:"email" validate:"required" example:"anjali@example.com"`
	College   string         `json:"college" validate:"required" example:"Jadavpur University"`
	Branch    FlexibleString `json:"branch" example:"Computer Science"`
	Year      FlexibleString `json:"year" example:"3"`
}

// CreateAlumniRequest represents an alumni registration
type CreateAlumniRequest struct {
	FirstName      string         `json:"firstName" validate:"required"`
	LastName       string         `json:"lastName" validate:"required"`
	Email          string         `json:"email" validate:"required"`
	College        string         `json:"college" validate:"required"`
	GraduationYear FlexibleString `json:"graduationYear" example:"2019"`
	CurrentCompany FlexibleString `json:"currentCompany" example:"Infosys"`
}

// CreateEventRequest represents a new event listing
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required" example:"Annual Meet"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required" example:"2024-12-20"`
	Time        string `json:"time" example:"18:00"`
	Location    string `json:"location" example:"Online"`
	Category    string `json:"category" example:"general"`
}

// CreateMentorshipRequest schedules a mentorship session
type CreateMentorshipRequest struct {
	StudentName string      `json:"studentName" validate:"required"`
	MentorName  string      `json:"mentorName" validate:"required"`
	Topic       string      `json:"topic" validate:"required"`
	Duration    FlexibleInt `json:"duration,omitempty" example:"60"` // minutes
}

// CreateNotificationRequest publishes a notification
type CreateNotificationRequest struct {
	Title          string `json:"title" validate:"required"`
	Message        string `json:"message" validate:"required"`
	Type           string `json:"type" example:"info"`
	TargetAudience string `json:"targetAudience" example:"all"`
}

// DemoLoginRequest asks for a demo token
type DemoLoginRequest struct {
	Name     string `json:"name" validate:"required" example:"Anjali Murmu"`
	Email    string `json:"email" example:"anjali@example.com"`
	UserType string `json:"userType" validate:"required" example:"student"`
	College  string `json:"college" example:"Jadavpur University"`
}

// StudentResponse wraps a created student
type StudentResponse struct {
	Success bool           `json:"success" example:"true"`
	Student models.Student `json:"student"`
}

// AlumniResponse wraps a created alumni record
type AlumniResponse struct {
	Success bool          `json:"success" example:"true"`
	Alumni  models.Alumni `json:"alumni"`
}

// EventResponse wraps a created event
type EventResponse struct {
	Success bool         `json:"success" example:"true"`
	Event   models.Event `json:"event"`
}

// MentorshipResponse wraps a created mentorship session
type MentorshipResponse struct {
	Success    bool                     `json:"success" example:"true"`
	Mentorship models.MentorshipSession `json:"mentorship"`
}

// NotificationResponse wraps a created notification
type NotificationResponse struct {
	Success      bool                `json:"success" example:"true"`
	Notification models.Notification `json:"notification"`
}

// StudentListResponse lists every student
type StudentListResponse struct {
	Success  bool             `json:"success"`
	Students []models.Student `json:"students"`
	Count    int              `json:"count"`
}

// AlumniListResponse lists every alumni record
type AlumniListResponse struct {
	Success bool            `json:"success"`
	Alumni  []models.Alumni `json:"alumni"`
	Count   int             `json:"count"`
}

// EventListResponse lists every event
type EventListResponse struct {
	Success bool           `json:"success"`
	Events  []models.Event `json:"events"`
	Count   int            `json:"count"`
}

// MentorshipListResponse lists every mentorship session
type MentorshipListResponse struct {
	Success     bool                       `json:"success"`
	Mentorships []models.MentorshipSession `json:"mentorships"`
	Count       int                        `json:"count"`
}

// NotificationListResponse lists every notification
type NotificationListResponse struct {
	Success       bool                  `json:"success"`
	Notifications []models.Notification `json:"notifications"`
	Count         int                   `json:"count"`
}

// DashboardResponse carries the whole shared state
type DashboardResponse struct {
	Success   bool                     `json:"success"`
	Data      models.DashboardSnapshot `json:"data"`
	Timestamp time.Time                `json:"timestamp"`
}

// AnalyticsResponse carries only the counters
type AnalyticsResponse struct {
	Success   bool             `json:"success"`
	Analytics models.Analytics `json:"analytics"`
	LiveStats models.LiveStats `json:"liveStats"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime" example:"12.5"` // seconds
	Message   string    `json:"message"`
}

// DemoLoginResponse carries a demo token
type DemoLoginResponse struct {
	Success   bool                  `json:"success"`
	Token     string                `json:"token"`
	ExpiresIn int                   `json:"expiresIn" example:"86400"` // seconds
	User      models.ViewerIdentity `json:"user"`
}
