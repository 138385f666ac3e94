package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseClock converts a 24-hour "HH:MM" wall-clock time to minutes since midnight.
// A single-digit hour ("9:05") is accepted; minutes must have two digits.
func ParseClock(hhmm string) (int, error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok || len(hourPart) == 0 || len(hourPart) > 2 || len(minutePart) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}

	hours, err := parseDigits(hourPart)
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("invalid time %q: hour must be 00-23", hhmm)
	}
	minutes, err := parseDigits(minutePart)
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: minute must be 00-59", hhmm)
	}

	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// parseDigits rejects signs and spaces that strconv.Atoi would accept.
func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit %q", r)
		}
	}
	return strconv.Atoi(s)
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2) intersect.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}
