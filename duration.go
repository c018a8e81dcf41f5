package ranks

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses a human-readable grant duration: an integer
// followed by a unit suffix, one of s (seconds), m (minutes), h (hours)
// or d (days). Examples: "30s", "10m", "5h", "7d". Malformed input is a
// validation error; there is no silent default.
func ParseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("duration cannot be empty")
	}

	unit := s[len(s)-1]
	value, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration number %q: expected an integer before the unit", s[:len(s)-1])
	}
	if value < 0 {
		return 0, fmt.Errorf("duration cannot be negative: %q", s)
	}

	switch unit {
	case 's':
		return time.Duration(value) * time.Second, nil
	case 'm':
		return time.Duration(value) * time.Minute, nil
	case 'h':
		return time.Duration(value) * time.Hour, nil
	case 'd':
		return time.Duration(value) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid duration unit %q: expected one of s, m, h, d", string(unit))
	}
}

// FormatRemaining renders the time until expiresAt as a compact
// "1d 2h 3m 4s" string, or "expired" if it has passed.
func FormatRemaining(expiresAt, now time.Time) string {
	left := expiresAt.Sub(now)
	if left <= 0 {
		return "expired"
	}

	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60
	seconds := int(left.Seconds()) % 60

	out := ""
	if days > 0 {
		out += fmt.Sprintf("%dd ", days)
	}
	if hours > 0 || days > 0 {
		out += fmt.Sprintf("%dh ", hours)
	}
	if minutes > 0 || hours > 0 || days > 0 {
		out += fmt.Sprintf("%dm ", minutes)
	}
	return out + fmt.Sprintf("%ds", seconds)
}
