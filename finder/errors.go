package finder

import (
	"errors"
	"fmt"
)

// ErrNoVideos signals that the search stage returned zero candidates.
var ErrNoVideos = errors.New("no videos found")

// ErrNoDurationMatch signals that every candidate fell outside the resolved
// duration range.
var ErrNoDurationMatch = errors.New("no videos match the duration filter")

// UpstreamError is a non-success response from the video platform. The query
// aborts immediately; there is no retry.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("YouTube API error: %d %s", e.StatusCode, e.Body)
}
