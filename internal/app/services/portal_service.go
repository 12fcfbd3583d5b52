package services

import (
	"context"
	"strings"

	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/store"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/validation"
)

// Validation messages returned to clients
const (
	msgMemberRequired       = "First name, last name, email, and college are required"
	msgEventRequired        = "Title, description, and date are required"
	msgMentorshipRequired   = "Student name, mentor name, and topic are required"
	msgNotificationRequired = "Title and message are required"
)

// Broadcaster applies a state change and publishes the events it produces as
// one step
type Broadcaster interface {
	Commit(fn func() []models.BroadcastEvent)
}

// PortalService defines the operations behind the REST API
type PortalService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	CreateAlumni(ctx context.Context, req *dto.CreateAlumniRequest) (*models.Alumni, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	CreateMentorship(ctx context.Context, req *dto.CreateMentorshipRequest) (*models.MentorshipSession, error)
	CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error)

	GetStudents(ctx context.Context) []models.Student
	GetAlumni(ctx context.Context) []models.Alumni
	GetEvents(ctx context.Context) []models.Event
	GetMentorships(ctx context.Context) []models.MentorshipSession
	GetNotifications(ctx context.Context) []models.Notification
	GetDashboard(ctx context.Context) models.DashboardSnapshot
	GetAnalytics(ctx context.Context) (models.Analytics, models.LiveStats)
}

// portalServiceImpl implements the PortalService interface
type portalServiceImpl struct {
	store       *store.Store
	broadcaster Broadcaster
}

// NewPortalService creates a new portal service instance
func NewPortalService(st *store.Store, broadcaster Broadcaster) PortalService {
	return &portalServiceImpl{
		store:       st,
		broadcaster: broadcaster,
	}
}

// CreateStudent registers a student and announces it
func (s *portalServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.check(ctx, req, msgMemberRequired); err != nil {
		return nil, err
	}

	var created models.Student
	s.broadcaster.Commit(func() []models.BroadcastEvent {
		student, analytics := s.store.AddStudent(models.Student{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			College:   req.College,
			Branch:    req.Branch.OrDefault(models.DefaultNotSpecified),
			Year:      req.Year.OrDefault(models.DefaultNotSpecified),
			IsOnline:  true,
		})
		created = student
		return announce(models.EventNewStudent, student, analytics)
	})
	return &created, nil
}

// CreateAlumni registers an alumni member and announces it
func (s *portalServiceImpl) CreateAlumni(ctx context.Context, req *dto.CreateAlumniRequest) (*models.Alumni, error) {
	if err := s.check(ctx, req, msgMemberRequired); err != nil {
		return nil, err
	}

	var created models.Alumni
	s.broadcaster.Commit(func() []models.BroadcastEvent {
		alumni, analytics := s.store.AddAlumni(models.Alumni{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			College:        req.College,
			GraduationYear: req.GraduationYear.OrDefault(models.DefaultNotSpecified),
			CurrentCompany: req.CurrentCompany.OrDefault(models.DefaultNotSpecified),
			IsOnline:       true,
		})
		created = alumni
		return announce(models.EventNewAlumni, alumni, analytics)
	})
	return &created, nil
}

// CreateEvent lists a new event and announces it
func (s *portalServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	if err := s.check(ctx, req, msgEventRequired); err != nil {
		return nil, err
	}

	var created models.Event
	s.broadcaster.Commit(func() []models.BroadcastEvent {
		event, analytics := s.store.AddEvent(models.Event{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Time:        orDefault(req.Time, models.DefaultEventTime),
			Location:    orDefault(req.Location, models.DefaultEventLocation),
			Category:    orDefault(req.Category, models.DefaultEventCategory),
		})
		created = event
		return announce(models.EventNewEvent, event, analytics)
	})
	return &created, nil
}

// CreateMentorship schedules a mentorship session and announces it
func (s *portalServiceImpl) CreateMentorship(ctx context.Context, req *dto.CreateMentorshipRequest) (*models.MentorshipSession, error) {
	if err := s.check(ctx, req, msgMentorshipRequired); err != nil {
		return nil, err
	}

	duration := req.Duration.OrDefault(models.DefaultMentorshipDuration)

	var created models.MentorshipSession
	s.broadcaster.Commit(func() []models.BroadcastEvent {
		session, analytics := s.store.AddMentorship(models.MentorshipSession{
			StudentName: req.StudentName,
			MentorName:  req.MentorName,
			Topic:       req.Topic,
			Duration:    duration,
			Status:      models.MentorshipStatusScheduled,
		})
		created = session
		return announce(models.EventNewMentorship, session, analytics)
	})
	return &created, nil
}

// CreateNotification publishes a notification and announces it
func (s *portalServiceImpl) CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if err := s.check(ctx, req, msgNotificationRequired); err != nil {
		return nil, err
	}

	var created models.Notification
	s.broadcaster.Commit(func() []models.BroadcastEvent {
		notification, analytics := s.store.AddNotification(models.Notification{
			Title:          req.Title,
			Message:        req.Message,
			Type:           orDefault(req.Type, models.DefaultNotificationType),
			TargetAudience: orDefault(req.TargetAudience, models.DefaultTargetAudience),
		})
		created = notification
		return announce(models.EventNewNotification, notification, analytics)
	})
	return &created, nil
}

func (s *portalServiceImpl) GetStudents(ctx context.Context) []models.Student {
	return s.store.Students()
}

func (s *portalServiceImpl) GetAlumni(ctx context.Context) []models.Alumni {
	return s.store.Alumni()
}

func (s *portalServiceImpl) GetEvents(ctx context.Context) []models.Event {
	return s.store.Events()
}

func (s *portalServiceImpl) GetMentorships(ctx context.Context) []models.MentorshipSession {
	return s.store.Mentorships()
}

func (s *portalServiceImpl) GetNotifications(ctx context.Context) []models.Notification {
	return s.store.Notifications()
}

func (s *portalServiceImpl) GetDashboard(ctx context.Context) models.DashboardSnapshot {
	return s.store.Snapshot()
}

func (s *portalServiceImpl) GetAnalytics(ctx context.Context) (models.Analytics, models.LiveStats) {
	snap := s.store.Snapshot()
	return snap.Analytics, snap.LiveStats
}

// check rejects cancelled requests and payloads missing a required field
func (s *portalServiceImpl) check(ctx context.Context, req interface{}, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return validation.Struct(req, message)
}

// announce builds the pair of broadcasts every successful mutation emits:
// the record, then the refreshed aggregates
func announce(name string, record interface{}, analytics models.Analytics) []models.BroadcastEvent {
	return []models.BroadcastEvent{
		{Name: name, Data: record},
		{Name: models.EventAnalyticsUpdate, Data: analytics},
	}
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
