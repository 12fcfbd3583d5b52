package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/controllers"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	portalController *controllers.PortalController,
	authController *controllers.AuthController,
	wsHandler *websocket.Handler,
) {
	api := router.Group("/api")

	api.GET("/health", healthController.Health)
	api.GET("/dashboard", portalController.GetDashboard)
	api.GET("/analytics", portalController.GetAnalytics)

	students := api.Group("/students")
	{
		students.GET("", portalController.GetStudents)
		students.POST("", portalController.CreateStudent)
	}

	alumni := api.Group("/alumni")
	{
		alumni.GET("", portalController.GetAlumni)
		alumni.POST("", portalController.CreateAlumni)
	}

	events := api.Group("/events")
	{
		events.GET("", portalController.GetEvents)
		events.POST("", portalController.CreateEvent)
	}

	mentorship := api.Group("/mentorship")
	{
		mentorship.GET("", portalController.GetMentorships)
		mentorship.POST("", portalController.CreateMentorship)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", portalController.GetNotifications)
		notifications.POST("", portalController.CreateNotification)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/demo-login", authController.DemoLogin)
	}

	// Realtime channel
	router.GET("/ws", wsHandler.HandleConnection)
}
