package usecase

import (
	"context"
	"errors"
)

// Business-rule failures are values, never panics. Only ErrUpstreamUnavailable
// is safe to retry automatically; every other kind needs caller correction.
var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrJobUnavailable       = errors.New("job unavailable")
	ErrDuplicateApplication = errors.New("duplicate application")
	ErrComplianceViolation  = errors.New("compliance violation")
	ErrInvalidState         = errors.New("invalid application state")
	ErrNotStarted           = errors.New("application not started")
	ErrInvalidDuration      = errors.New("invalid work duration")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrInternal             = errors.New("internal error")
)

// fetchErr classifies a repository failure. Timeouts and caller cancellation
// surface as retryable; everything else is internal.
func fetchErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrUpstreamUnavailable
	}
	return ErrInternal
}
