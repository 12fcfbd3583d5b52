package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/services"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/middleware"
)

// PortalController handles the portal's REST resources
type PortalController struct {
	portalService services.PortalService
	logger        zerolog.Logger
}

// NewPortalController creates a new PortalController
func NewPortalController(portalService services.PortalService, logger zerolog.Logger) *PortalController {
	return &PortalController{
		portalService: portalService,
		logger:        logger,
	}
}

// GetDashboard returns the whole shared state
// @Summary Get dashboard snapshot
// @Description Returns every collection and counter as of one instant
// @Tags portal
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (c *PortalController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		Success:   true,
		Data:      c.portalService.GetDashboard(ctx.Request.Context()),
		Timestamp: time.Now(),
	})
}

// GetAnalytics returns the aggregate counters
// @Summary Get analytics
// @Tags portal
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Router /analytics [get]
func (c *PortalController) GetAnalytics(ctx *gin.Context) {
	analytics, live := c.portalService.GetAnalytics(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.AnalyticsResponse{
		Success:   true,
		Analytics: analytics,
		LiveStats: live,
	})
}

// GetStudents lists students
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentListResponse
// @Router /students [get]
func (c *PortalController) GetStudents(ctx *gin.Context) {
	students := c.portalService.GetStudents(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.StudentListResponse{Success: true, Students: students, Count: len(students)})
}

// CreateStudent registers a student
// @Summary Register a student
// @Description Adds a student and broadcasts new_student and analytics_update to every viewer
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student registration"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse "First name, last name, email, and college are required"
// @Router /students [post]
func (c *PortalController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	student, err := c.portalService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student registration rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", student.ID).Str("college", student.College).Msg("Student registered")
	ctx.JSON(http.StatusOK, dto.StudentResponse{Success: true, Student: *student})
}

// GetAlumni lists alumni
// @Summary List alumni
// @Tags alumni
// @Produce json
// @Success 200 {object} dto.AlumniListResponse
// @Router /alumni [get]
func (c *PortalController) GetAlumni(ctx *gin.Context) {
	alumni := c.portalService.GetAlumni(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.AlumniListResponse{Success: true, Alumni: alumni, Count: len(alumni)})
}

// CreateAlumni registers an alumni member
// @Summary Register an alumni member
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body dto.CreateAlumniRequest true "Alumni registration"
// @Success 200 {object} dto.AlumniResponse
// @Failure 400 {object} dto.ErrorResponse "First name, last name, email, and college are required"
// @Router /alumni [post]
func (c *PortalController) CreateAlumni(ctx *gin.Context) {
	var req dto.CreateAlumniRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	alumni, err := c.portalService.CreateAlumni(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Alumni registration rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("alumniID", alumni.ID).Str("college", alumni.College).Msg("Alumni registered")
	ctx.JSON(http.StatusOK, dto.AlumniResponse{Success: true, Alumni: *alumni})
}

// GetEvents lists events
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {object} dto.EventListResponse
// @Router /events [get]
func (c *PortalController) GetEvents(ctx *gin.Context) {
	events := c.portalService.GetEvents(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.EventListResponse{Success: true, Events: events, Count: len(events)})
}

// CreateEvent lists a new event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse "Title, description, and date are required"
// @Router /events [post]
func (c *PortalController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	event, err := c.portalService.CreateEvent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("title", req.Title).Msg("Event rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventID", event.ID).Str("date", event.Date).Msg("Event created")
	ctx.JSON(http.StatusOK, dto.EventResponse{Success: true, Event: *event})
}

// GetMentorships lists mentorship sessions
// @Summary List mentorship sessions
// @Tags mentorship
// @Produce json
// @Success 200 {object} dto.MentorshipListResponse
// @Router /mentorship [get]
func (c *PortalController) GetMentorships(ctx *gin.Context) {
	sessions := c.portalService.GetMentorships(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.MentorshipListResponse{Success: true, Mentorships: sessions, Count: len(sessions)})
}

// CreateMentorship schedules a mentorship session
// @Summary Schedule a mentorship session
// @Tags mentorship
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorshipRequest true "Mentorship session"
// @Success 200 {object} dto.MentorshipResponse
// @Failure 400 {object} dto.ErrorResponse "Student name, mentor name, and topic are required"
// @Router /mentorship [post]
func (c *PortalController) CreateMentorship(ctx *gin.Context) {
	var req dto.CreateMentorshipRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	session, err := c.portalService.CreateMentorship(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Mentorship session rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("sessionID", session.ID).Str("topic", session.Topic).Msg("Mentorship session scheduled")
	ctx.JSON(http.StatusOK, dto.MentorshipResponse{Success: true, Mentorship: *session})
}

// GetNotifications lists notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.NotificationListResponse
// @Router /notifications [get]
func (c *PortalController) GetNotifications(ctx *gin.Context) {
	notifications := c.portalService.GetNotifications(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NotificationListResponse{Success: true, Notifications: notifications, Count: len(notifications)})
}

// CreateNotification publishes a notification
// @Summary Publish a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification"
// @Success 200 {object} dto.NotificationResponse
// @Failure 400 {object} dto.ErrorResponse "Title and message are required"
// @Router /notifications [post]
func (c *PortalController) CreateNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if !bindJSON(ctx, &req, c.logger) {
		return
	}

	notification, err := c.portalService.CreateNotification(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Notification rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("notificationID", notification.ID).Str("type", notification.Type).Msg("Notification published")
	ctx.JSON(http.StatusOK, dto.NotificationResponse{Success: true, Notification: *notification})
}
