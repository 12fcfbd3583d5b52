package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error
// or when the parsed value is not positive.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger: this runs while dependencies are still being built
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	if duration <= 0 {
		log.Warn().Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Non-positive duration, using default")
		return defaultDuration
	}
	return duration
}
