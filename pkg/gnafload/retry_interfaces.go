package gnafload

import "time"

// ErrorClassifier determines whether an error is worth retrying.
type ErrorClassifier interface {
	// IsTransient returns true if the error is temporary and the
	// operation may succeed on a subsequent attempt.
	IsTransient(err error) bool
}

// BackoffStrategy computes delays between retry attempts.
type BackoffStrategy interface {
	// NextDelay returns the delay before the given retry attempt (0-based).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retry attempts.
	// Negative means retry indefinitely.
	MaxAttempts() int
}
