package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrFeedUnavailable = errors.New("feed unavailable")
	ErrNoWatchedLines  = errors.New("no watched train lines configured")
)
