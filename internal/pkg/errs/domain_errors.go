package errs

import "errors"

// Error taxonomy shared by the checkout usecase and the HTTP layer.
var (
	// Local, field-level; never reaches a rail
	ErrValidation = errors.New("validation error")

	// Rail errors
	ErrRailUnavailable = errors.New("payment rail unavailable")
	ErrDeclined        = errors.New("payment declined")
	ErrMalformed       = errors.New("malformed rail request")

	// Programmer errors guarded by the session state machine
	ErrSessionMisuse = errors.New("session misuse")
)
