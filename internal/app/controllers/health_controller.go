package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models/dto"
)

// HealthController reports liveness
type HealthController struct {
	startedAt time.Time
	now       func() time.Time
}

// NewHealthController creates a HealthController measuring uptime from startedAt
func NewHealthController(startedAt time.Time) *HealthController {
	return &HealthController{startedAt: startedAt, now: time.Now}
}

// Health reports that the server is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	now := c.now()
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Timestamp: now,
		Uptime:    now.Sub(c.startedAt).Seconds(),
		Message:   "SESWA portal API is running",
	})
}
