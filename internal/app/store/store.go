package store

import (
	"sync"
	"time"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
)

// Store is the in-memory shared state of the portal. It is safe for
// concurrent use; every method runs inside one critical section so that a
// collection append and its counter updates are never observed apart.
type Store struct {
	mu sync.RWMutex

	students      []models.Student
	alumni        []models.Alumni
	events        []models.Event
	mentorships   []models.MentorshipSession
	notifications []models.Notification
	chatMessages  []models.ChatMessage

	analytics models.Analytics
	liveStats models.LiveStats

	lastID int64
	now    func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces the time source used for creation timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store with zeroed counters
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.analytics.ServerStartTime = s.now()
	return s
}

// nextIDLocked returns a strictly increasing identifier. Callers must hold mu.
func (s *Store) nextIDLocked() int64 {
	s.lastID++
	return s.lastID
}

// AddStudent appends a student and bumps the registration counters
func (s *Store) AddStudent(student models.Student) (models.Student, models.Analytics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student.ID = s.nextIDLocked()
	student.JoinedAt = s.now()
	student.UserType = models.UserTypeStudent
	s.students = append(s.students, student)

	s.analytics.TotalStudents++
	s.liveStats.TodayRegistrations++
	return student, s.analytics
}

// AddAlumni appends an alumni record and bumps the registration counters
func (s *Store) AddAlumni(alumni models.Alumni) (models.Alumni, models.Analytics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alumni.ID = s.nextIDLocked()
	alumni.JoinedAt = s.now()
	alumni.UserType = models.UserTypeAlumni
	s.alumni = append(s.alumni, alumni)

	s.analytics.TotalAlumni++
	s.liveStats.TodayRegistrations++
	return alumni, s.analytics
}

// AddEvent appends an event listing
func (s *Store) AddEvent(event models.Event) (models.Event, models.Analytics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.nextIDLocked()
	event.CreatedAt = s.now()
	s.events = append(s.events, event)

	s.analytics.TotalEvents++
	s.liveStats.TodayEvents++
	return event, s.analytics
}

// AddMentorship appends a mentorship session
func (s *Store) AddMentorship(session models.MentorshipSession) (models.MentorshipSession, models.Analytics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = s.nextIDLocked()
	session.CreatedAt = s.now()
	s.mentorships = append(s.mentorships, session)

	s.analytics.ActiveMentorships++
	s.liveStats.ActiveMentoringSessions++
	return session, s.analytics
}

// AddNotification appends a notification
func (s *Store) AddNotification(notification models.Notification) (models.Notification, models.Analytics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification.ID = s.nextIDLocked()
	notification.CreatedAt = s.now()
	s.notifications = append(s.notifications, notification)

	s.analytics.TotalNotifications++
	return notification, s.analytics
}

// AddChatMessage appends a chat message. Chat has no aggregate counter.
func (s *Store) AddChatMessage(msg models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.nextIDLocked()
	msg.Timestamp = s.now()
	s.chatMessages = append(s.chatMessages, msg)
	return msg
}

// ViewerConnected counts a new live connection
func (s *Store) ViewerConnected() models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analytics.ActiveUsers++
	s.liveStats.OnlineUsers++
	return s.analytics
}

// ViewerDisconnected removes a live connection from the counters, never
// letting them drop below zero
func (s *Store) ViewerDisconnected() models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.analytics.ActiveUsers > 0 {
		s.analytics.ActiveUsers--
	}
	if s.liveStats.OnlineUsers > 0 {
		s.liveStats.OnlineUsers--
	}
	return s.analytics
}

// NudgeOnlineUsers shifts the online user count by delta with a floor of one
func (s *Store) NudgeOnlineUsers(delta int) models.LiveStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.liveStats.OnlineUsers += delta
	if s.liveStats.OnlineUsers < 1 {
		s.liveStats.OnlineUsers = 1
	}
	return s.liveStats
}

// Analytics returns a copy of the aggregate counters
func (s *Store) Analytics() models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analytics
}

// LiveStats returns a copy of the live counters
func (s *Store) LiveStats() models.LiveStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liveStats
}

// Students returns a copy of the student collection
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.students)
}

// Alumni returns a copy of the alumni collection
func (s *Store) Alumni() []models.Alumni {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.alumni)
}

// Events returns a copy of the event collection
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.events)
}

// Mentorships returns a copy of the mentorship collection
func (s *Store) Mentorships() []models.MentorshipSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.mentorships)
}

// Notifications returns a copy of the notification collection
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.notifications)
}

// ChatMessages returns a copy of the chat history
func (s *Store) ChatMessages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.chatMessages)
}

// Snapshot copies the entire state at a single instant
func (s *Store) Snapshot() models.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.DashboardSnapshot{
		Students:           cloneSlice(s.students),
		Alumni:             cloneSlice(s.alumni),
		Events:             cloneSlice(s.events),
		MentorshipSessions: cloneSlice(s.mentorships),
		Notifications:      cloneSlice(s.notifications),
		ChatMessages:       cloneSlice(s.chatMessages),
		Analytics:          s.analytics,
		LiveStats:          s.liveStats,
	}
}

// cloneSlice copies src into a non-nil slice so empty collections encode as []
func cloneSlice[T any](src []T) []T {
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}
