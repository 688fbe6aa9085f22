package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses s, falling back to def when s is malformed or not positive.
func ParseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("value", s).Dur("default", def).Msg("Invalid duration, using default")
		return def
	case d <= 0:
		log.Warn().Str("value", s).Dur("default", def).Msg("Non-positive duration, using default")
		return def
	}
	return d
}
