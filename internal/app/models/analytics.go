package models

import "time"

// Analytics holds the aggregate counters shown on the dashboard.
// Every total equals the length of its collection.
type Analytics struct {
	TotalStudents      int       `json:"totalStudents"`
	TotalAlumni        int       `json:"totalAlumni"`
	ActiveUsers        int       `json:"activeUsers"`
	TotalEvents        int       `json:"totalEvents"`
	ActiveMentorships  int       `json:"activeMentorships"`
	TotalNotifications int       `json:"totalNotifications"`
	ServerStartTime    time.Time `json:"serverStartTime"`
}

// LiveStats holds the counters refreshed by the live stats ticker
type LiveStats struct {
	OnlineUsers             int `json:"onlineUsers"`
	TodayRegistrations      int `json:"todayRegistrations"`
	TodayEvents             int `json:"todayEvents"`
	ActiveMentoringSessions int `json:"activeMentoringSessions"`
}

// DashboardSnapshot is a point-in-time copy of the whole shared state
type DashboardSnapshot struct {
	Students           []Student           `json:"students"`
	Alumni             []Alumni            `json:"alumni"`
	Events             []Event             `json:"events"`
	MentorshipSessions []MentorshipSession `json:"mentorshipSessions"`
	Notifications      []Notification      `json:"notifications"`
	ChatMessages       []ChatMessage       `json:"chatMessages"`
	Analytics          Analytics           `json:"analytics"`
	LiveStats          LiveStats           `json:"liveStats"`
}
