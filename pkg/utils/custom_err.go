package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrTripNotFound         = errors.New("trip not found")
	ErrDatabaseError        = errors.New("database error")
	ErrProvidersUnavailable = errors.New("plan providers unavailable")
	ErrPlanRejected         = errors.New("candidate plan rejected")
)
