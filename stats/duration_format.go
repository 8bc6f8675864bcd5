package stats

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	microsecondsPerSecond = 1_000_000
	microsecondsPerDay    = 86_400 * microsecondsPerSecond
)

var (
	ErrInvalidDurationFormat = errors.New("invalid duration format")

	durationRegex = regexp.MustCompile(`^(?:(-?\d+) days?, )?(\d{1,2}):(\d{2}):(\d{2})(?:\.(\d{6}))?$`)
)

// FormatDuration renders an amount of seconds as days, hours, minutes and seconds, e.g.
// 90000 -> "1 day, 1:00:00", 900 -> "0:15:00" and 0.5 -> "0:00:00.500000".
// Precision is one microsecond.
func FormatDuration(seconds float64) string {
	total := int64(math.RoundToEven(seconds * microsecondsPerSecond))

	days := total / microsecondsPerDay
	remainder := total % microsecondsPerDay
	if remainder < 0 {
		days -= 1
		remainder += microsecondsPerDay
	}

	microseconds := remainder % microsecondsPerSecond
	remainder /= microsecondsPerSecond
	hours := remainder / 3600
	minutes := remainder % 3600 / 60
	secs := remainder % 60

	formatted := fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	if microseconds != 0 {
		formatted += fmt.Sprintf(".%06d", microseconds)
	}

	if days == 0 {
		return formatted
	}

	unit := "days"
	if days == 1 || days == -1 {
		unit = "day"
	}
	return fmt.Sprintf("%d %s, %s", days, unit, formatted)
}

// ParseDuration is the inverse of FormatDuration, it returns the amount of seconds
func ParseDuration(value string) (float64, error) {
	matches := durationRegex.FindStringSubmatch(value)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDurationFormat, value)
	}

	var days int64
	if matches[1] != "" {
		days, _ = strconv.ParseInt(matches[1], 10, 64)
	}
	hours, _ := strconv.ParseInt(matches[2], 10, 64)
	minutes, _ := strconv.ParseInt(matches[3], 10, 64)
	secs, _ := strconv.ParseInt(matches[4], 10, 64)
	if hours > 23 || minutes > 59 || secs > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDurationFormat, value)
	}

	var microseconds int64
	if matches[5] != "" {
		microseconds, _ = strconv.ParseInt(matches[5], 10, 64)
	}

	total := days*microsecondsPerDay + (hours*3600+minutes*60+secs)*microsecondsPerSecond + microseconds
	return float64(total) / microsecondsPerSecond, nil
}
