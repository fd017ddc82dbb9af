// Package dates resolves the provider's publish-date strings, which arrive
// either as absolute dates or relative natural language ("2 hours ago").
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var relativePattern = regexp.MustCompile(`(?i)(\d+)\s*(minute|hour|day|week|month)s?\s*ago`)

// Resolve parses raw into a UTC instant. Unparseable input falls back to
// now; the result is never an error.
func Resolve(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.UTC()
	}

	if strings.Contains(strings.ToLower(raw), "ago") {
		match := relativePattern.FindStringSubmatch(raw)
		if match == nil {
			return now.UTC()
		}
		value, err := strconv.Atoi(match[1])
		if err != nil {
			return now.UTC()
		}
		var unit time.Duration
		switch strings.ToLower(match[2]) {
		case "minute":
			unit = time.Minute
		case "hour":
			unit = time.Hour
		case "day":
			unit = 24 * time.Hour
		case "week":
			unit = 7 * 24 * time.Hour
		case "month":
			unit = 30 * 24 * time.Hour
		}
		return now.Add(-time.Duration(value) * unit).UTC()
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return now.UTC()
	}
	return parsed.UTC()
}
