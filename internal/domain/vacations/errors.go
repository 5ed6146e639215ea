package vacations

import "errors"

var (
	ErrNotFound        = errors.New("vacation request not found")
	ErrBalanceNotFound = errors.New("vacation balance not found")
	// ErrInvalidDateRange rejects requests whose end does not follow the start.
	ErrInvalidDateRange = errors.New("end date must be after start date")
)
