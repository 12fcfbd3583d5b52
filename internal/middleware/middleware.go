package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request once the handler has finished
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Str("clientIP", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}

// CORS allows the configured frontend origins, with credentials when enabled.
// A "*" entry allows any origin.
func CORS(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			// A literal "*" cannot be combined with credentials; echo the origin instead
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cors.New(cfg)
		}
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowOriginFunc = func(string) bool { return false }
		return cors.New(cfg)
	}
	cfg.AllowOrigins = allowedOrigins
	return cors.New(cfg)
}
