package jobs

import "errors"

var (
	ErrNotFound = errors.New("job not found")
	// ErrJobNotOpen rejects applications to jobs past their open state.
	ErrJobNotOpen = errors.New("job is not accepting applications")
)
