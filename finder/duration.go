package finder

import (
	"math"
	"regexp"
	"strconv"

	"vidfinder/internal/models"
)

// Matches the full token or nothing: a malformed prefix or trailing garbage
// parses as zero minutes.
var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDurationMinutes converts an ISO 8601 duration token (e.g. "PT5M30S")
// to fractional minutes. Unparseable input yields 0, so callers cannot tell a
// bad token from a genuinely zero-length video.
func ParseDurationMinutes(token string) float64 {
	matches := durationPattern.FindStringSubmatch(token)
	if matches == nil {
		return 0
	}

	var minutes float64

	if matches[1] != "" {
		if hours, err := strconv.Atoi(matches[1]); err == nil {
			minutes += float64(hours) * 60
		}
	}
	if matches[2] != "" {
		if m, err := strconv.Atoi(matches[2]); err == nil {
			minutes += float64(m)
		}
	}
	if matches[3] != "" {
		if seconds, err := strconv.Atoi(matches[3]); err == nil {
			minutes += float64(seconds) / 60.0
		}
	}

	return minutes
}

// DurationRange is an inclusive window of video lengths in minutes. Max may
// be +Inf for an unbounded window.
type DurationRange struct {
	Min float64
	Max float64
}

// Contains reports whether d minutes falls inside the range, both ends
// inclusive.
func (r DurationRange) Contains(d float64) bool {
	return r.Min <= d && d <= r.Max
}

// RangeForCategory resolves a duration category to its minute window:
// short [0,4], medium [4,20], long [20,+Inf]. Anything else, including
// "any", is unbounded.
func RangeForCategory(category string) DurationRange {
	switch category {
	case "short":
		return DurationRange{Min: 0, Max: 4}
	case "medium":
		return DurationRange{Min: 4, Max: 20}
	case "long":
		return DurationRange{Min: 20, Max: math.Inf(1)}
	default:
		return DurationRange{Min: 0, Max: math.Inf(1)}
	}
}

// FilterByDuration keeps the details whose parsed duration falls within r.
// The result is always a subset of the input; an empty map means nothing
// survived, which the caller reports as "no results".
func FilterByDuration(details map[string]models.VideoDetail, r DurationRange) map[string]models.VideoDetail {
	filtered := make(map[string]models.VideoDetail)
	for id, detail := range details {
		if r.Contains(ParseDurationMinutes(detail.Duration)) {
			filtered[id] = detail
		}
	}
	return filtered
}
